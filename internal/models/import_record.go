package models

import (
	"time"

	"templatedesk/internal/common"

	"gorm.io/gorm"
)

// ImportRecord represents one successful template import in the database
type ImportRecord struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Filename   string    `gorm:"index;not null" json:"filename"`
	SourcePath string    `gorm:"type:text" json:"source_path"`
	Size       int64     `json:"size"`
	ImportedAt time.Time `gorm:"index" json:"imported_at"`
}

// BeforeCreate fills in the ID and timestamp when the caller left them empty
func (r *ImportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = common.GenerateUUID()
	}
	if r.ImportedAt.IsZero() {
		r.ImportedAt = time.Now().UTC()
	}
	return nil
}
