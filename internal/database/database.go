package database

import (
	"fmt"

	"templatedesk/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens the sqlite database at dbPath and migrates the schema
func Initialize(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate auto-migrates every model owned by the application
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ImportRecord{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
