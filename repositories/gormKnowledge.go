package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"
	"time"
)

type knowledgeGormRepository struct {
	db db.Database
}

func NewKnowledgeGormRepository(database db.Database) KnowledgeRepository {
	return &knowledgeGormRepository{db: database}
}

func (r *knowledgeGormRepository) Create(entry *entities.KnowledgeEntry) error {
	return r.db.GetDB().Create(entry).Error
}

func (r *knowledgeGormRepository) GetByID(id string) (*entities.KnowledgeEntry, error) {
	var entry entities.KnowledgeEntry
	err := r.db.GetDB().Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *knowledgeGormRepository) GetAll() ([]entities.KnowledgeEntry, error) {
	var entries []entities.KnowledgeEntry
	err := r.db.GetDB().Order("updated_at DESC").Find(&entries).Error
	return entries, err
}

func (r *knowledgeGormRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.KnowledgeEntry{}).Count(&count).Error
	return count, err
}

func (r *knowledgeGormRepository) Update(entry *entities.KnowledgeEntry) error {
	entry.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(entry).Error
}

func (r *knowledgeGormRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.KnowledgeEntry{}).Error
}
