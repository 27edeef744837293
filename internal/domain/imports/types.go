package imports

import (
	"context"
	"time"
)

// Result describes a template copied into the managed directory
type Result struct {
	Filename   string `json:"filename"`
	SourcePath string `json:"source_path"`
	Size       int64  `json:"size"`
	Registered bool   `json:"registered"`
}

// Record is one entry of the import history
type Record struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SourcePath string    `json:"source_path"`
	Size       int64     `json:"size"`
	ImportedAt time.Time `json:"imported_at"`
}

type Service interface {
	Import(ctx context.Context, sourcePath string) (*Result, error)
}

type History interface {
	Record(rec Record) error
	Count() (int64, error)
	Recent(limit int) ([]Record, error)
}
