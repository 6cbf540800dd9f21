package repositories

import (
	"helpdesk-server/db"
	"helpdesk-server/entities"
)

// settingsGormRepository reads and writes the singleton configuration rows.
// Every save overwrites the whole record at id 1.
type settingsGormRepository struct {
	db db.Database
}

func NewSettingsGormRepository(database db.Database) SettingsRepository {
	return &settingsGormRepository{db: database}
}

func (r *settingsGormRepository) GetModelConfig() (*entities.ModelConfig, error) {
	var cfg entities.ModelConfig
	err := r.db.GetDB().Where("id = ?", 1).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *settingsGormRepository) SaveModelConfig(cfg *entities.ModelConfig) error {
	cfg.ID = 1
	return r.db.GetDB().Save(cfg).Error
}

func (r *settingsGormRepository) GetCompanyInfo() (*entities.CompanyInfo, error) {
	var info entities.CompanyInfo
	err := r.db.GetDB().Where("id = ?", 1).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *settingsGormRepository) SaveCompanyInfo(info *entities.CompanyInfo) error {
	info.ID = 1
	return r.db.GetDB().Save(info).Error
}

func (r *settingsGormRepository) GetPanelConfig() (*entities.PanelConfig, error) {
	var cfg entities.PanelConfig
	err := r.db.GetDB().Where("id = ?", 1).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *settingsGormRepository) SavePanelConfig(cfg *entities.PanelConfig) error {
	cfg.ID = 1
	return r.db.GetDB().Save(cfg).Error
}

func (r *settingsGormRepository) GetSmtpConfig() (*entities.SmtpConfig, error) {
	var cfg entities.SmtpConfig
	err := r.db.GetDB().Where("id = ?", 1).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *settingsGormRepository) SaveSmtpConfig(cfg *entities.SmtpConfig) error {
	cfg.ID = 1
	return r.db.GetDB().Save(cfg).Error
}

func (r *settingsGormRepository) GetBackupSchedule() (*entities.BackupSchedule, error) {
	var s entities.BackupSchedule
	err := r.db.GetDB().Where("id = ?", 1).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsGormRepository) SaveBackupSchedule(s *entities.BackupSchedule) error {
	s.ID = 1
	return r.db.GetDB().Save(s).Error
}

func (r *settingsGormRepository) GetGoogleDriveConfig() (*entities.GoogleDriveConfig, error) {
	var cfg entities.GoogleDriveConfig
	err := r.db.GetDB().Where("id = ?", 1).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *settingsGormRepository) SaveGoogleDriveConfig(cfg *entities.GoogleDriveConfig) error {
	cfg.ID = 1
	return r.db.GetDB().Save(cfg).Error
}
