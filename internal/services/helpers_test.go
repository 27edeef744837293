package services

import (
	"io"
	"log/slog"
	"testing"

	"templatedesk/internal/config"
	"templatedesk/internal/database"

	"github.com/spf13/afero"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.NewWithFs(afero.NewMemMapFs(), "/app", testLogger())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRegistry(t *testing.T) (*config.Config, *RegistryService) {
	t.Helper()
	cfg := setupTestConfig(t)
	store := NewJSONListStore(cfg.Fs, cfg.RegistryPath)
	return cfg, NewRegistryService(cfg.Fs, cfg.TemplatesDir, store, cfg.Logger)
}

func writeTemplate(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
