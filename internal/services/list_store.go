package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"templatedesk/internal/common"

	"github.com/spf13/afero"
)

// JSONListStore persists the registry as a JSON array of filenames
type JSONListStore struct {
	fs   afero.Fs
	path string
}

// NewJSONListStore creates a list store backed by the file at path
func NewJSONListStore(fs afero.Fs, path string) *JSONListStore {
	return &JSONListStore{fs: fs, path: path}
}

// Load reads the whole list. A missing file is an empty list; an
// unreadable or malformed file returns common.ErrCorrupt.
func (s *JSONListStore) Load() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrCorrupt, s.path, err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", common.ErrCorrupt, s.path, err)
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

// Save rewrites the whole list through a temp file and rename
func (s *JSONListStore) Save(names []string) error {
	if names == nil {
		names = []string{}
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return common.NewStorageError("encode registry", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, common.DefaultDirPermissions); err != nil {
		return common.NewStorageError("create registry directory", dir, err)
	}

	temp, err := afero.TempFile(s.fs, dir, ".templates.json.tmp.*")
	if err != nil {
		return common.NewStorageError("create temp file", dir, err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = s.fs.Remove(tempPath)
		return common.NewStorageError("write registry", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		_ = s.fs.Remove(tempPath)
		return common.NewStorageError("close registry", tempPath, err)
	}

	if err := s.fs.Rename(tempPath, s.path); err != nil {
		_ = s.fs.Remove(tempPath)
		return common.NewStorageError("replace registry", s.path, err)
	}

	return nil
}
