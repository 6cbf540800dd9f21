package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"
)

type roleGormRepository struct {
	db db.Database
}

func NewRoleGormRepository(database db.Database) RoleRepository {
	return &roleGormRepository{db: database}
}

func (r *roleGormRepository) GetAll() ([]entities.RolePermissions, error) {
	var rows []entities.RolePermissions
	err := r.db.GetDB().Find(&rows).Error
	return rows, err
}

func (r *roleGormRepository) Get(role string) (*entities.RolePermissions, error) {
	var perms entities.RolePermissions
	err := r.db.GetDB().Where("role = ?", role).First(&perms).Error
	if err != nil {
		return nil, err
	}
	return &perms, nil
}

func (r *roleGormRepository) Save(perms *entities.RolePermissions) error {
	return r.db.GetDB().Save(perms).Error
}
