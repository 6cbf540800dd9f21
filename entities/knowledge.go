package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KnowledgeEntry is one tag/content pair of the knowledge base used to
// ground chat answers.
type KnowledgeEntry struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Tag       string `json:"tag"`
	Content   string `json:"content"`
	UpdatedBy string `json:"updated_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (k *KnowledgeEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	if k.CreatedAt == "" {
		k.CreatedAt = time.Now().Format(time.RFC3339)
		k.UpdatedAt = k.CreatedAt
	}
	return
}
