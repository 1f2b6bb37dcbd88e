package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T, name string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func newTestUser(email string) models.User {
	return models.User{
		DisplayName:  "Test User",
		Email:        email,
		Age:          30,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}
