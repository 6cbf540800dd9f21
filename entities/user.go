package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a dashboard account in the HelpDesk system
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	Username     string `gorm:"not null" json:"username"`
	UsernameKey  string `gorm:"uniqueIndex;not null" json:"-"` // lowercased username, uniqueness key
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Role         string `gorm:"not null" json:"role"`
	Verified     bool   `json:"verified"`
	LastIP       string `json:"last_ip"`
	LastDevice   string `json:"last_device"`
	LastLoginAt  string `json:"last_login_at"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().Format(time.RFC3339)
		u.UpdatedAt = u.CreatedAt
	}
	return
}

// FullName joins the name fields for display and conversation snapshots.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
