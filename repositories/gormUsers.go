package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"
	"strings"
	"time"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(user *entities.User) error {
	user.UsernameKey = strings.ToLower(user.Username)
	return r.db.GetDB().Create(user).Error
}

func (r *userGormRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername matches case-insensitively via the lowercased key column.
func (r *userGormRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username_key = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *userGormRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *userGormRepository) Update(user *entities.User) error {
	user.UsernameKey = strings.ToLower(user.Username)
	user.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(user).Error
}

func (r *userGormRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.User{}).Error
}
