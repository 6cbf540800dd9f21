package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"

	"gorm.io/gorm"
)

type conversationGormRepository struct {
	db db.Database
}

func NewConversationGormRepository(database db.Database) ConversationRepository {
	return &conversationGormRepository{db: database}
}

func (r *conversationGormRepository) Create(conv *entities.Conversation) error {
	return r.db.GetDB().Create(conv).Error
}

func (r *conversationGormRepository) GetByID(id string) (*entities.Conversation, error) {
	var conv entities.Conversation
	err := r.db.GetDB().
		Preload("Messages", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationGormRepository) GetAll() ([]entities.Conversation, error) {
	var convs []entities.Conversation
	err := r.db.GetDB().
		Preload("Messages", func(tx *gorm.DB) *gorm.DB { return tx.Order("seq ASC") }).
		Order("started_at DESC").Find(&convs).Error
	return convs, err
}

func (r *conversationGormRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Conversation{}).Count(&count).Error
	return count, err
}

// Delete removes the conversation and its messages.
func (r *conversationGormRepository) Delete(id string) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&entities.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Conversation{}).Error
	})
}

// AppendMessage inserts the message with the next sequence number for
// its conversation. The number is derived inside the insert transaction
// so concurrent appends cannot collide.
func (r *conversationGormRepository) AppendMessage(msg *entities.Message) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&entities.Message{}).
			Where("conversation_id = ?", msg.ConversationID).
			Select("COALESCE(MAX(seq)+1, 0)").
			Scan(&next).Error
		if err != nil {
			return err
		}
		msg.Seq = next
		return tx.Create(msg).Error
	})
}

func (r *conversationGormRepository) SetFeedback(conversationID, messageID, feedback string) error {
	res := r.db.GetDB().Model(&entities.Message{}).
		Where("conversation_id = ? AND id = ?", conversationID, messageID).
		Update("feedback", feedback)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *conversationGormRepository) CountMessages() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Message{}).Count(&count).Error
	return count, err
}

func (r *conversationGormRepository) CountFeedback(feedback string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Message{}).Where("feedback = ?", feedback).Count(&count).Error
	return count, err
}

// MessagesSince returns messages at or after the given RFC3339 timestamp.
// RFC3339 strings in the same zone compare lexicographically.
func (r *conversationGormRepository) MessagesSince(timestamp string) ([]entities.Message, error) {
	var msgs []entities.Message
	err := r.db.GetDB().Where("timestamp >= ?", timestamp).Order("timestamp ASC").Find(&msgs).Error
	return msgs, err
}
