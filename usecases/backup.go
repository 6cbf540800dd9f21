package usecases

import (
	"errors"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

// Export parts accepted by the backup API.
const (
	PartUsers  = "users"
	PartKB     = "kb"
	PartLogs   = "logs"
	PartConfig = "config"
	PartFull   = "full"
)

// UserRecord is the backup serialization of a user. Unlike the API shape
// it carries the password hash, so a restored user can still log in.
type UserRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Role         string `json:"role"`
	Verified     bool   `json:"verified"`
	LastIP       string `json:"last_ip"`
	LastDevice   string `json:"last_device"`
	LastLoginAt  string `json:"last_login_at"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// BackupData is the exported aggregate. Absent sections are nil and stay
// untouched on restore: restore is a shallow merge of present sections.
type BackupData struct {
	Users             []UserRecord                `json:"users,omitempty"`
	Roles             []entities.RolePermissions  `json:"roles,omitempty"`
	Knowledge         []entities.KnowledgeEntry   `json:"knowledge,omitempty"`
	Conversations     []entities.Conversation     `json:"conversations,omitempty"`
	ModelConfig       *entities.ModelConfig       `json:"model_config,omitempty"`
	CompanyInfo       *entities.CompanyInfo       `json:"company_info,omitempty"`
	PanelConfig       *entities.PanelConfig       `json:"panel_config,omitempty"`
	SmtpConfig        *entities.SmtpConfig        `json:"smtp_config,omitempty"`
	BackupSchedule    *entities.BackupSchedule    `json:"backup_schedule,omitempty"`
	GoogleDriveConfig *entities.GoogleDriveConfig `json:"google_drive_config,omitempty"`
	CustomModels      []entities.CustomModel      `json:"custom_models,omitempty"`
}

type BackupUseCase struct {
	UserRepo         repositories.UserRepository
	RoleRepo         repositories.RoleRepository
	KnowledgeRepo    repositories.KnowledgeRepository
	ConversationRepo repositories.ConversationRepository
	SettingsRepo     repositories.SettingsRepository
	CustomModelRepo  repositories.CustomModelRepository
}

func NewBackupUseCase(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	knowledgeRepo repositories.KnowledgeRepository,
	conversationRepo repositories.ConversationRepository,
	settingsRepo repositories.SettingsRepository,
	customModelRepo repositories.CustomModelRepository,
) *BackupUseCase {
	return &BackupUseCase{
		UserRepo:         userRepo,
		RoleRepo:         roleRepo,
		KnowledgeRepo:    knowledgeRepo,
		ConversationRepo: conversationRepo,
		SettingsRepo:     settingsRepo,
		CustomModelRepo:  customModelRepo,
	}
}

// Export returns the requested slice of the aggregate.
func (uc *BackupUseCase) Export(part string) (*BackupData, error) {
	data := &BackupData{}
	switch part {
	case PartUsers:
		return data, uc.exportUsers(data)
	case PartKB:
		return data, uc.exportKnowledge(data)
	case PartLogs:
		return data, uc.exportConversations(data)
	case PartConfig:
		return data, uc.exportConfig(data)
	case PartFull:
		if err := uc.exportUsers(data); err != nil {
			return nil, err
		}
		if err := uc.exportKnowledge(data); err != nil {
			return nil, err
		}
		if err := uc.exportConversations(data); err != nil {
			return nil, err
		}
		return data, uc.exportConfig(data)
	default:
		return nil, errors.New("unknown backup part: " + part)
	}
}

func (uc *BackupUseCase) exportUsers(data *BackupData) error {
	users, err := uc.UserRepo.GetAll()
	if err != nil {
		return err
	}
	data.Users = make([]UserRecord, len(users))
	for i, u := range users {
		data.Users[i] = UserRecord{
			ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash,
			FirstName: u.FirstName, LastName: u.LastName,
			Email: u.Email, Mobile: u.Mobile, Role: u.Role, Verified: u.Verified,
			LastIP: u.LastIP, LastDevice: u.LastDevice, LastLoginAt: u.LastLoginAt,
			CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
		}
	}
	roles, err := uc.RoleRepo.GetAll()
	if err != nil {
		return err
	}
	data.Roles = roles
	return nil
}

func (uc *BackupUseCase) exportKnowledge(data *BackupData) error {
	entries, err := uc.KnowledgeRepo.GetAll()
	if err != nil {
		return err
	}
	data.Knowledge = entries
	return nil
}

func (uc *BackupUseCase) exportConversations(data *BackupData) error {
	convs, err := uc.ConversationRepo.GetAll()
	if err != nil {
		return err
	}
	data.Conversations = convs
	return nil
}

func (uc *BackupUseCase) exportConfig(data *BackupData) error {
	var err error
	if data.ModelConfig, err = uc.SettingsRepo.GetModelConfig(); err != nil {
		return err
	}
	if data.CompanyInfo, err = uc.SettingsRepo.GetCompanyInfo(); err != nil {
		return err
	}
	if data.PanelConfig, err = uc.SettingsRepo.GetPanelConfig(); err != nil {
		return err
	}
	if data.SmtpConfig, err = uc.SettingsRepo.GetSmtpConfig(); err != nil {
		return err
	}
	if data.BackupSchedule, err = uc.SettingsRepo.GetBackupSchedule(); err != nil {
		return err
	}
	if data.GoogleDriveConfig, err = uc.SettingsRepo.GetGoogleDriveConfig(); err != nil {
		return err
	}
	models, err := uc.CustomModelRepo.GetAll()
	if err != nil {
		return err
	}
	data.CustomModels = models
	return nil
}

// Restore merges the provided sections into the current aggregate. Each
// present collection replaces its stored counterpart wholesale; absent
// sections are left alone. There is no schema validation and no rollback
// on partial failure, matching the documented backup contract.
func (uc *BackupUseCase) Restore(data *BackupData) error {
	if data == nil {
		return errors.New("no backup payload")
	}
	if data.Users != nil {
		existing, err := uc.UserRepo.GetAll()
		if err != nil {
			return err
		}
		for _, u := range existing {
			if err := uc.UserRepo.Delete(u.ID); err != nil {
				return err
			}
		}
		for _, rec := range data.Users {
			user := &entities.User{
				ID: rec.ID, Username: rec.Username, PasswordHash: rec.PasswordHash,
				FirstName: rec.FirstName, LastName: rec.LastName,
				Email: rec.Email, Mobile: rec.Mobile, Role: rec.Role, Verified: rec.Verified,
				LastIP: rec.LastIP, LastDevice: rec.LastDevice, LastLoginAt: rec.LastLoginAt,
				CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
			}
			if err := uc.UserRepo.Create(user); err != nil {
				return err
			}
		}
	}
	if data.Roles != nil {
		for i := range data.Roles {
			if err := uc.RoleRepo.Save(&data.Roles[i]); err != nil {
				return err
			}
		}
	}
	if data.Knowledge != nil {
		existing, err := uc.KnowledgeRepo.GetAll()
		if err != nil {
			return err
		}
		for _, e := range existing {
			if err := uc.KnowledgeRepo.Delete(e.ID); err != nil {
				return err
			}
		}
		for i := range data.Knowledge {
			entry := data.Knowledge[i]
			if err := uc.KnowledgeRepo.Create(&entry); err != nil {
				return err
			}
		}
	}
	if data.Conversations != nil {
		existing, err := uc.ConversationRepo.GetAll()
		if err != nil {
			return err
		}
		for _, c := range existing {
			if err := uc.ConversationRepo.Delete(c.ID); err != nil {
				return err
			}
		}
		for i := range data.Conversations {
			conv := data.Conversations[i]
			if err := uc.ConversationRepo.Create(&conv); err != nil {
				return err
			}
		}
	}
	if data.ModelConfig != nil {
		if err := uc.SettingsRepo.SaveModelConfig(data.ModelConfig); err != nil {
			return err
		}
	}
	if data.CompanyInfo != nil {
		if err := uc.SettingsRepo.SaveCompanyInfo(data.CompanyInfo); err != nil {
			return err
		}
	}
	if data.PanelConfig != nil {
		if err := uc.SettingsRepo.SavePanelConfig(data.PanelConfig); err != nil {
			return err
		}
	}
	if data.SmtpConfig != nil {
		if err := uc.SettingsRepo.SaveSmtpConfig(data.SmtpConfig); err != nil {
			return err
		}
	}
	if data.BackupSchedule != nil {
		if err := uc.SettingsRepo.SaveBackupSchedule(data.BackupSchedule); err != nil {
			return err
		}
	}
	if data.GoogleDriveConfig != nil {
		if err := uc.SettingsRepo.SaveGoogleDriveConfig(data.GoogleDriveConfig); err != nil {
			return err
		}
	}
	if data.CustomModels != nil {
		existing, err := uc.CustomModelRepo.GetAll()
		if err != nil {
			return err
		}
		for _, m := range existing {
			if err := uc.CustomModelRepo.Delete(m.ModelID); err != nil {
				return err
			}
		}
		for i := range data.CustomModels {
			model := data.CustomModels[i]
			if err := uc.CustomModelRepo.Create(&model); err != nil {
				return err
			}
		}
	}
	return nil
}
