package services

import (
	"fmt"

	importsDomain "templatedesk/internal/domain/imports"
	"templatedesk/internal/models"

	"gorm.io/gorm"
)

// HistoryService records successful imports in the database
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new history service
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record stores one import
func (s *HistoryService) Record(rec importsDomain.Record) error {
	row := models.ImportRecord{
		ID:         rec.ID,
		Filename:   rec.Filename,
		SourcePath: rec.SourcePath,
		Size:       rec.Size,
		ImportedAt: rec.ImportedAt,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("record import of %s: %w", rec.Filename, err)
	}
	return nil
}

// Count returns the number of imports ever recorded
func (s *HistoryService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.ImportRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count imports: %w", err)
	}
	return count, nil
}

// Recent returns up to limit imports, newest first
func (s *HistoryService) Recent(limit int) ([]importsDomain.Record, error) {
	var rows []models.ImportRecord
	if err := s.db.Order("imported_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}

	records := make([]importsDomain.Record, len(rows))
	for i, row := range rows {
		records[i] = importsDomain.Record{
			ID:         row.ID,
			Filename:   row.Filename,
			SourcePath: row.SourcePath,
			Size:       row.Size,
			ImportedAt: row.ImportedAt,
		}
	}
	return records, nil
}
