package services

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"templatedesk/internal/common"
	registryDomain "templatedesk/internal/domain/registry"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// RegistryService keeps the list of known templates in step with the
// managed directory. Unregistering never touches the files themselves.
type RegistryService struct {
	fs          afero.Fs
	dir         string
	store       registryDomain.Store
	logger      *slog.Logger
	defaultName string
}

// NewRegistryService creates a registry over the templates in dir
func NewRegistryService(fs afero.Fs, dir string, store registryDomain.Store, logger *slog.Logger) *RegistryService {
	return &RegistryService{
		fs:          fs,
		dir:         dir,
		store:       store,
		logger:      logger,
		defaultName: common.DefaultDocument,
	}
}

// List returns the registered templates sorted case-insensitively. Entries
// whose file has disappeared are pruned and the pruned list is saved
// before returning.
func (s *RegistryService) List() ([]string, error) {
	names, corrupt, err := s.load()
	if err != nil {
		return nil, err
	}

	kept := lo.Filter(lo.Uniq(names), func(name string, _ int) bool {
		if name == s.defaultName || common.ValidateName(name) != nil {
			return false
		}
		exists, err := afero.Exists(s.fs, filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warn("Failed to check template", "name", name, "error", err)
			return false
		}
		return exists
	})

	if corrupt || len(kept) != len(names) {
		if err := s.store.Save(kept); err != nil {
			return nil, err
		}
		if dropped := len(names) - len(kept); dropped > 0 {
			s.logger.Info("Pruned registry", "dropped", dropped, "remaining", len(kept))
		}
	}

	sorted := slices.Clone(kept)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	return sorted, nil
}

// Register adds name to the registry. It reports false without error when
// name is already registered. The file itself is not checked.
func (s *RegistryService) Register(name string) (bool, error) {
	if err := common.ValidateName(name); err != nil {
		return false, err
	}
	if name == s.defaultName {
		return false, fmt.Errorf("%w: %s", common.ErrProtected, name)
	}

	names, _, err := s.load()
	if err != nil {
		return false, err
	}
	if lo.Contains(names, name) {
		return false, nil
	}

	if err := s.store.Save(append(names, name)); err != nil {
		return false, err
	}

	s.logger.Info("Registered template", "name", name)
	return true, nil
}

// Unregister removes name from the registry and leaves the file on disk
func (s *RegistryService) Unregister(name string) error {
	if err := common.ValidateName(name); err != nil {
		return err
	}
	if name == s.defaultName {
		return fmt.Errorf("%w: %s cannot be removed", common.ErrNotFound, name)
	}

	names, _, err := s.load()
	if err != nil {
		return err
	}
	if !lo.Contains(names, name) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, name)
	}

	if err := s.store.Save(lo.Without(names, name)); err != nil {
		return err
	}

	s.logger.Info("Unregistered template", "name", name)
	return nil
}

// Contains reports whether name is registered, without reconciling
func (s *RegistryService) Contains(name string) (bool, error) {
	names, _, err := s.load()
	if err != nil {
		return false, err
	}
	return lo.Contains(names, name), nil
}

// load collapses a corrupt list into an empty one. Only storage errors
// other than corruption are returned.
func (s *RegistryService) load() ([]string, bool, error) {
	names, err := s.store.Load()
	if err != nil {
		if errors.Is(err, common.ErrCorrupt) {
			s.logger.Warn("Registry corrupt, starting empty", "error", err)
			return []string{}, true, nil
		}
		return nil, false, err
	}
	return names, false, nil
}
