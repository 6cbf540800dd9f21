package usecases

import (
	"errors"
	"helpdesk-server/auth"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
	"strings"
	"time"
)

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrForbidden         = errors.New("actor is not allowed to manage this user")
	ErrDuplicateUsername = errors.New("username already taken")
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// Login verifies credentials and records the caller's network metadata on
// the account. Returns the authenticated user.
func (uc *UserUseCase) Login(username, password, ip, device string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}
	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, errors.New("invalid username or password")
	}

	user.LastIP = ip
	user.LastDevice = device
	user.LastLoginAt = time.Now().Format(time.RFC3339)
	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// canManage reports whether actor may manage target-role accounts: only
// strictly lower ranks, and never itself.
func canManage(actor *entities.User, targetRole, targetID string) bool {
	if actor.ID == targetID && targetID != "" {
		return false
	}
	return entities.RoleRank(actor.Role) > entities.RoleRank(targetRole)
}

// CreateUser adds a dashboard account. Duplicate usernames are rejected
// case-insensitively before anything is written.
func (uc *UserUseCase) CreateUser(actor *entities.User, user *entities.User, password string) error {
	if user.Username == "" {
		return errors.New("username is required")
	}
	if !entities.IsValidRole(user.Role) {
		return errors.New("unknown role: " + user.Role)
	}
	if !canManage(actor, user.Role, "") {
		return ErrForbidden
	}
	if _, err := uc.UserRepo.GetByUsername(user.Username); err == nil {
		return ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.UserRepo.Create(user)
}

// UserUpdates is the partial-update shape for UpdateUser. Empty string
// fields and a nil Verified are left unchanged.
type UserUpdates struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	Role      string
	Verified  *bool
	Password  string
}

// UpdateUser merges the provided fields into an existing account. The
// actor must outrank both the target's current role and any new role.
func (uc *UserUseCase) UpdateUser(actor *entities.User, id string, updates *UserUpdates) (*entities.User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}
	existing, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if !canManage(actor, existing.Role, existing.ID) {
		return nil, ErrForbidden
	}

	if updates.Username != "" && !strings.EqualFold(updates.Username, existing.Username) {
		if _, err := uc.UserRepo.GetByUsername(updates.Username); err == nil {
			return nil, ErrDuplicateUsername
		}
		existing.Username = updates.Username
	}
	if updates.Role != "" && updates.Role != existing.Role {
		if !entities.IsValidRole(updates.Role) {
			return nil, errors.New("unknown role: " + updates.Role)
		}
		if !canManage(actor, updates.Role, "") {
			return nil, ErrForbidden
		}
		existing.Role = updates.Role
	}
	if updates.FirstName != "" {
		existing.FirstName = updates.FirstName
	}
	if updates.LastName != "" {
		existing.LastName = updates.LastName
	}
	if updates.Email != "" {
		existing.Email = updates.Email
	}
	if updates.Mobile != "" {
		existing.Mobile = updates.Mobile
	}
	if updates.Verified != nil {
		existing.Verified = *updates.Verified
	}

	if updates.Password != "" {
		hash, err := auth.HashPassword(updates.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}

	if err := uc.UserRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteUser removes an account, subject to the same rank rule.
func (uc *UserUseCase) DeleteUser(actor *entities.User, id string) error {
	if id == "" {
		return errors.New("user id is required")
	}
	existing, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return errors.New("user not found")
	}
	if !canManage(actor, existing.Role, existing.ID) {
		return ErrForbidden
	}
	return uc.UserRepo.Delete(id)
}

// ListUsers filters the full collection with a case-insensitive substring
// search (tokens ANDed) and slices the result by page/limit.
func (uc *UserUseCase) ListUsers(query string, page, limit int) ([]entities.User, int, error) {
	users, err := uc.UserRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}

	filtered := users
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) > 0 {
		filtered = make([]entities.User, 0, len(users))
		for _, u := range users {
			haystack := strings.ToLower(strings.Join([]string{
				u.Username, u.FirstName, u.LastName, u.Email, u.Mobile,
			}, " "))
			match := true
			for _, tok := range tokens {
				if !strings.Contains(haystack, tok) {
					match = false
					break
				}
			}
			if match {
				filtered = append(filtered, u)
			}
		}
	}

	total := len(filtered)
	paged := Paginate(filtered, page, limit)
	return paged, total, nil
}

// GetUser returns one account by id.
func (uc *UserUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}
	return uc.UserRepo.GetByID(id)
}

// Bootstrap creates the very first account as a superadmin. It refuses to
// run once any user exists, which keeps /api/setup/init a one-shot.
func (uc *UserUseCase) Bootstrap(username, email, password string) (*entities.User, error) {
	count, err := uc.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("setup already completed")
	}
	if username == "" {
		return nil, errors.New("username is required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleSuperAdmin,
		Verified:     true,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// NeedsSetup reports whether no account exists yet.
func (uc *UserUseCase) NeedsSetup() (bool, error) {
	count, err := uc.UserRepo.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Paginate slices a filtered collection by 1-based page and limit.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
