package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message senders and feedback values.
const (
	SenderUser = "user"
	SenderBot  = "bot"

	FeedbackUp   = "up"
	FeedbackDown = "down"
)

// Conversation is one chat-widget session. It embeds a snapshot of the
// visitor at the time the chat started and is append-only: messages are
// added, never edited, except for per-message feedback tagging.
type Conversation struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Username  string    `json:"username"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	StartedAt string    `json:"started_at"`
	Messages  []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.StartedAt == "" {
		c.StartedAt = time.Now().Format(time.RFC3339)
	}
	return
}

// Message is one exchange line inside a conversation. Seq preserves the
// original order of messages within the session.
type Message struct {
	ID             string `gorm:"type:text;primaryKey" json:"id"`
	ConversationID string `gorm:"index" json:"conversation_id"`
	Seq            int    `json:"seq"`
	Sender         string `json:"sender"`
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"`
	Feedback       string `json:"feedback,omitempty"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().Format(time.RFC3339)
	}
	return
}
