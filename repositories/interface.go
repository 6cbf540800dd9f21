package repositories

import "helpdesk-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	Count() (int64, error)
	Update(user *entities.User) error
	Delete(id string) error
}

type RoleRepository interface {
	GetAll() ([]entities.RolePermissions, error)
	Get(role string) (*entities.RolePermissions, error)
	Save(perms *entities.RolePermissions) error
}

type KnowledgeRepository interface {
	Create(entry *entities.KnowledgeEntry) error
	GetByID(id string) (*entities.KnowledgeEntry, error)
	GetAll() ([]entities.KnowledgeEntry, error)
	Count() (int64, error)
	Update(entry *entities.KnowledgeEntry) error
	Delete(id string) error
}

type ConversationRepository interface {
	Create(conv *entities.Conversation) error
	GetByID(id string) (*entities.Conversation, error)
	GetAll() ([]entities.Conversation, error)
	Count() (int64, error)
	Delete(id string) error
	// AppendMessage stores the message, assigning the conversation's
	// next sequence number to msg.Seq.
	AppendMessage(msg *entities.Message) error
	SetFeedback(conversationID, messageID, feedback string) error
	CountMessages() (int64, error)
	CountFeedback(feedback string) (int64, error)
	MessagesSince(timestamp string) ([]entities.Message, error)
}

type SettingsRepository interface {
	GetModelConfig() (*entities.ModelConfig, error)
	SaveModelConfig(cfg *entities.ModelConfig) error
	GetCompanyInfo() (*entities.CompanyInfo, error)
	SaveCompanyInfo(info *entities.CompanyInfo) error
	GetPanelConfig() (*entities.PanelConfig, error)
	SavePanelConfig(cfg *entities.PanelConfig) error
	GetSmtpConfig() (*entities.SmtpConfig, error)
	SaveSmtpConfig(cfg *entities.SmtpConfig) error
	GetBackupSchedule() (*entities.BackupSchedule, error)
	SaveBackupSchedule(s *entities.BackupSchedule) error
	GetGoogleDriveConfig() (*entities.GoogleDriveConfig, error)
	SaveGoogleDriveConfig(cfg *entities.GoogleDriveConfig) error
}

type CustomModelRepository interface {
	Create(model *entities.CustomModel) error
	GetByModelID(modelID string) (*entities.CustomModel, error)
	GetAll() ([]entities.CustomModel, error)
	Delete(modelID string) error
}
