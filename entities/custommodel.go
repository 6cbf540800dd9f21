package entities

// CustomModel is a user-defined OpenRouter catalog entry. ModelID is unique
// case-insensitively; the lowercased form is the uniqueness key.
type CustomModel struct {
	ModelID    string `gorm:"not null" json:"model_id"`
	ModelIDKey string `gorm:"primaryKey" json:"-"`
	Label      string `json:"label"`
}
