package usecases

import (
	"path/filepath"
	"testing"

	"helpdesk-server/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema and
// default seed rows.
func newTestDB(t *testing.T) db.Database {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return &db.GormDatabase{DB: gdb}
}
