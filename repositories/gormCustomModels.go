package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"
	"strings"
)

type customModelGormRepository struct {
	db db.Database
}

func NewCustomModelGormRepository(database db.Database) CustomModelRepository {
	return &customModelGormRepository{db: database}
}

func (r *customModelGormRepository) Create(model *entities.CustomModel) error {
	model.ModelIDKey = strings.ToLower(model.ModelID)
	return r.db.GetDB().Create(model).Error
}

func (r *customModelGormRepository) GetByModelID(modelID string) (*entities.CustomModel, error) {
	var model entities.CustomModel
	err := r.db.GetDB().Where("model_id_key = ?", strings.ToLower(modelID)).First(&model).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *customModelGormRepository) GetAll() ([]entities.CustomModel, error) {
	var models []entities.CustomModel
	err := r.db.GetDB().Order("model_id_key ASC").Find(&models).Error
	return models, err
}

func (r *customModelGormRepository) Delete(modelID string) error {
	return r.db.GetDB().Where("model_id_key = ?", strings.ToLower(modelID)).Delete(&entities.CustomModel{}).Error
}
