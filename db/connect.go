package db

import (
	"fmt"
	"helpdesk-server/entities"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by DATABASE_URL and runs migrations
// and default seeding. Supported DSN forms:
//
//	sqlite://<path>        local file (default when DATABASE_URL is unset)
//	postgres://...         hosted deployments
func Connect() (Database, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "sqlite://helpdesk.db"
		log.Println("DATABASE_URL not set, falling back to local sqlite file")
	}

	var gdb *gorm.DB
	var err error

	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		gdb, err = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		// Hosted providers expect SSL; add sslmode when the URL lacks it.
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:      logger.Default.LogMode(logger.Warn),
			PrepareStmt: true,
		})
		if err == nil {
			sqlDB, derr := gdb.DB()
			if derr != nil {
				return nil, fmt.Errorf("failed to get database instance: %w", derr)
			}
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetMaxOpenConns(100)
			sqlDB.SetConnMaxLifetime(0)
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL scheme: %s", dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established, running migrations...")
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	if err := Seed(gdb); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: gdb}, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&entities.User{},
		&entities.RolePermissions{},
		&entities.KnowledgeEntry{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.ModelConfig{},
		&entities.CompanyInfo{},
		&entities.PanelConfig{},
		&entities.SmtpConfig{},
		&entities.BackupSchedule{},
		&entities.GoogleDriveConfig{},
		&entities.CustomModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
