package common

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Callers match with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrCancelled   = errors.New("cancelled by user")
	ErrCorrupt     = errors.New("stored data is corrupt")
	ErrInvalidName = errors.New("invalid template name")
	ErrProtected   = errors.New("default document is protected")
)

// StorageError represents a failed read, write or copy against the filesystem
type StorageError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new storage error
func NewStorageError(operation, path string, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}
