package db

import (
	"fmt"
	"helpdesk-server/entities"
	"log"

	"gorm.io/gorm"
)

// Seed inserts the rows the application assumes exist: one permission row
// per role and the singleton configuration records. Existing rows are left
// untouched, so seeding is safe to run on every boot.
func Seed(gdb *gorm.DB) error {
	for _, role := range entities.AllRoles() {
		var count int64
		if err := gdb.Model(&entities.RolePermissions{}).Where("role = ?", role).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check role permissions: %w", err)
		}
		if count == 0 {
			perms := entities.DefaultPermissions(role)
			if err := gdb.Create(&perms).Error; err != nil {
				return fmt.Errorf("failed to seed permissions for %s: %w", role, err)
			}
			log.Printf("seeded default permissions for role %s", role)
		}
	}

	singletons := []interface{}{
		&entities.ModelConfig{ID: 1, Provider: entities.ProviderBuiltin, Temperature: 0.7, TopP: 1, MaxTokens: 1024},
		&entities.CompanyInfo{ID: 1, Name: "HelpDesk", WelcomeMessage: "Hi! How can we help you today?"},
		&entities.PanelConfig{ID: 1, Title: "HelpDesk Admin", Language: "en"},
		&entities.SmtpConfig{ID: 1, Port: 587, UseTLS: true},
		&entities.BackupSchedule{ID: 1, IntervalHours: 24, Part: "full"},
		&entities.GoogleDriveConfig{ID: 1},
	}
	for _, s := range singletons {
		if err := gdb.Where("id = ?", 1).FirstOrCreate(s).Error; err != nil {
			return fmt.Errorf("failed to seed default config: %w", err)
		}
	}
	return nil
}
