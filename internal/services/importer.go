package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"templatedesk/internal/common"
	importsDomain "templatedesk/internal/domain/imports"
	registryDomain "templatedesk/internal/domain/registry"

	"github.com/spf13/afero"
)

// ImportService copies picked files into the managed directory and
// registers them under a name that never overwrites an existing file.
type ImportService struct {
	fs       afero.Fs
	dir      string
	registry registryDomain.Service
	history  importsDomain.History
	logger   *slog.Logger
}

// NewImportService creates a new import service. history may be nil.
func NewImportService(fs afero.Fs, dir string, registry registryDomain.Service, history importsDomain.History, logger *slog.Logger) *ImportService {
	return &ImportService{
		fs:       fs,
		dir:      dir,
		registry: registry,
		history:  history,
		logger:   logger,
	}
}

// Import copies sourcePath into the managed directory and registers it.
// An empty sourcePath means the picker was cancelled. ctx is checked once,
// before anything is touched, so an import requested while the window is
// shutting down leaves the directory and the list unchanged.
func (s *ImportService) Import(ctx context.Context, sourcePath string) (*importsDomain.Result, error) {
	if sourcePath == "" {
		return nil, common.ErrCancelled
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := s.fs.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, sourcePath)
		}
		return nil, common.NewStorageError("inspect source", sourcePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", common.ErrNotFound, sourcePath)
	}

	name, err := s.resolveName(destinationName(sourcePath))
	if err != nil {
		return nil, err
	}
	destPath := filepath.Join(s.dir, name)

	if err := common.CopyFile(s.fs, sourcePath, destPath); err != nil {
		s.logger.Error("Failed to copy template", "source", sourcePath, "destination", destPath, "error", err)
		return nil, common.NewStorageError("copy template", destPath, err)
	}

	added, err := s.registry.Register(name)
	if err != nil {
		_ = s.fs.Remove(destPath)
		return nil, err
	}
	if !added {
		s.logger.Debug("Template already registered", "name", name)
	}

	result := &importsDomain.Result{
		Filename:   name,
		SourcePath: sourcePath,
		Size:       info.Size(),
		Registered: added,
	}
	s.recordHistory(result)

	s.logger.Info("Imported template", "source", sourcePath, "name", name, "size", info.Size())
	return result, nil
}

var separatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// destinationName is the source's base name with any separator character
// left in it (legal on Unix) replaced by an underscore
func destinationName(sourcePath string) string {
	return separatorReplacer.Replace(filepath.Base(sourcePath))
}

// resolveName returns base, or the first name_N.ext that is free on disk
func (s *ImportService) resolveName(base string) (string, error) {
	if err := common.ValidateName(base); err != nil {
		return "", err
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := base
	for i := 1; ; i++ {
		taken, err := s.isTaken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

func (s *ImportService) isTaken(name string) (bool, error) {
	if name == common.DefaultDocument {
		return true, nil
	}

	path := filepath.Join(s.dir, name)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, common.NewStorageError("check destination", path, err)
	}
	return exists, nil
}

func (s *ImportService) recordHistory(result *importsDomain.Result) {
	if s.history == nil {
		return
	}

	err := s.history.Record(importsDomain.Record{
		ID:         common.GenerateUUID(),
		Filename:   result.Filename,
		SourcePath: result.SourcePath,
		Size:       result.Size,
		ImportedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("Failed to record import history", "name", result.Filename, "error", err)
	}
}
