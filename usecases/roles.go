package usecases

import (
	"errors"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

type RoleUseCase struct {
	RoleRepo repositories.RoleRepository
}

func NewRoleUseCase(roleRepo repositories.RoleRepository) *RoleUseCase {
	return &RoleUseCase{RoleRepo: roleRepo}
}

// GetAll returns the permission row of every role.
func (uc *RoleUseCase) GetAll() ([]entities.RolePermissions, error) {
	return uc.RoleRepo.GetAll()
}

// Get returns the permission row for one role.
func (uc *RoleUseCase) Get(role string) (*entities.RolePermissions, error) {
	if !entities.IsValidRole(role) {
		return nil, errors.New("unknown role: " + role)
	}
	return uc.RoleRepo.Get(role)
}

// Update overwrites the capability flags of a non-fixed role. The actor
// may only edit roles strictly below its own rank.
func (uc *RoleUseCase) Update(actor *entities.User, perms *entities.RolePermissions) error {
	if !entities.IsValidRole(perms.Role) {
		return errors.New("unknown role: " + perms.Role)
	}
	if entities.IsFixedRole(perms.Role) {
		return errors.New("permissions of role " + perms.Role + " are fixed")
	}
	if entities.RoleRank(actor.Role) <= entities.RoleRank(perms.Role) {
		return ErrForbidden
	}
	return uc.RoleRepo.Save(perms)
}
