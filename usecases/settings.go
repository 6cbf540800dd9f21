package usecases

import (
	"errors"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

type SettingsUseCase struct {
	SettingsRepo    repositories.SettingsRepository
	CustomModelRepo repositories.CustomModelRepository
}

func NewSettingsUseCase(settingsRepo repositories.SettingsRepository, customModelRepo repositories.CustomModelRepository) *SettingsUseCase {
	return &SettingsUseCase{
		SettingsRepo:    settingsRepo,
		CustomModelRepo: customModelRepo,
	}
}

func (uc *SettingsUseCase) GetModelConfig() (*entities.ModelConfig, error) {
	return uc.SettingsRepo.GetModelConfig()
}

// SaveModelConfig overwrites the model configuration wholesale.
func (uc *SettingsUseCase) SaveModelConfig(cfg *entities.ModelConfig) error {
	switch cfg.Provider {
	case entities.ProviderOpenAI, entities.ProviderOpenRouter, entities.ProviderBuiltin:
	default:
		return errors.New("unknown provider: " + cfg.Provider)
	}
	if cfg.Provider != entities.ProviderBuiltin && cfg.ModelID == "" {
		return errors.New("model id is required")
	}
	return uc.SettingsRepo.SaveModelConfig(cfg)
}

func (uc *SettingsUseCase) GetCompanyInfo() (*entities.CompanyInfo, error) {
	return uc.SettingsRepo.GetCompanyInfo()
}

func (uc *SettingsUseCase) SaveCompanyInfo(info *entities.CompanyInfo) error {
	return uc.SettingsRepo.SaveCompanyInfo(info)
}

func (uc *SettingsUseCase) GetPanelConfig() (*entities.PanelConfig, error) {
	return uc.SettingsRepo.GetPanelConfig()
}

func (uc *SettingsUseCase) SavePanelConfig(cfg *entities.PanelConfig) error {
	return uc.SettingsRepo.SavePanelConfig(cfg)
}

func (uc *SettingsUseCase) GetSmtpConfig() (*entities.SmtpConfig, error) {
	return uc.SettingsRepo.GetSmtpConfig()
}

// SaveSmtpConfig overwrites the SMTP settings. An empty incoming password
// keeps the previously stored secret so the form can omit it.
func (uc *SettingsUseCase) SaveSmtpConfig(cfg *entities.SmtpConfig) error {
	if cfg.Password == "" {
		existing, err := uc.SettingsRepo.GetSmtpConfig()
		if err == nil {
			cfg.Password = existing.Password
		}
	}
	return uc.SettingsRepo.SaveSmtpConfig(cfg)
}

func (uc *SettingsUseCase) GetBackupSchedule() (*entities.BackupSchedule, error) {
	return uc.SettingsRepo.GetBackupSchedule()
}

func (uc *SettingsUseCase) SaveBackupSchedule(s *entities.BackupSchedule) error {
	if s.Enabled && s.IntervalHours < 1 {
		return errors.New("interval must be at least one hour")
	}
	if s.Part == "" {
		s.Part = "full"
	}
	return uc.SettingsRepo.SaveBackupSchedule(s)
}

func (uc *SettingsUseCase) GetGoogleDriveConfig() (*entities.GoogleDriveConfig, error) {
	return uc.SettingsRepo.GetGoogleDriveConfig()
}

func (uc *SettingsUseCase) SaveGoogleDriveConfig(cfg *entities.GoogleDriveConfig) error {
	return uc.SettingsRepo.SaveGoogleDriveConfig(cfg)
}

// ===== Custom OpenRouter model catalog =====

// AddCustomModel registers a catalog entry. Model ids are unique
// case-insensitively.
func (uc *SettingsUseCase) AddCustomModel(model *entities.CustomModel) error {
	if model.ModelID == "" {
		return errors.New("model id is required")
	}
	if _, err := uc.CustomModelRepo.GetByModelID(model.ModelID); err == nil {
		return errors.New("model already exists: " + model.ModelID)
	}
	return uc.CustomModelRepo.Create(model)
}

func (uc *SettingsUseCase) ListCustomModels() ([]entities.CustomModel, error) {
	return uc.CustomModelRepo.GetAll()
}

func (uc *SettingsUseCase) DeleteCustomModel(modelID string) error {
	if modelID == "" {
		return errors.New("model id is required")
	}
	if _, err := uc.CustomModelRepo.GetByModelID(modelID); err != nil {
		return errors.New("model not found: " + modelID)
	}
	return uc.CustomModelRepo.Delete(modelID)
}
