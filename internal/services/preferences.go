package services

import (
	"errors"
	"io/fs"

	"templatedesk/internal/common"
	"templatedesk/internal/config"
	preferencesDomain "templatedesk/internal/domain/preferences"
)

const (
	keyTheme    = "preferences.theme"
	keyZoom     = "preferences.zoom"
	keyFontSize = "preferences.font_size"
)

// PreferencesService handles user preferences stored in the settings file
type PreferencesService struct {
	config *config.Config
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(cfg *config.Config) *PreferencesService {
	return &PreferencesService{config: cfg}
}

// DefaultPreferences returns default preference values
func DefaultPreferences() preferencesDomain.Preferences {
	return preferencesDomain.Preferences{
		Theme: common.DefaultTheme,
		Zoom:  common.DefaultZoom,
	}
}

// Get returns the stored preferences. Missing, unreadable or corrupt
// settings fall back to the defaults key by key.
func (s *PreferencesService) Get() preferencesDomain.Preferences {
	prefs, err := s.read()
	if err != nil {
		s.config.Logger.Warn("Preferences unreadable, using defaults", "error", err)
	}
	return prefs
}

// Set overwrites theme and zoom, keeping every other key in the file
func (s *PreferencesService) Set(theme, zoom string) error {
	v, err := s.config.ReadSettings()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.config.Logger.Warn("Settings corrupt, rewriting from empty", "error", err)
	}

	v.Set(keyTheme, theme)
	v.Set(keyZoom, zoom)

	if err := v.WriteConfigAs(s.config.SettingsPath); err != nil {
		return common.NewStorageError("write preferences", s.config.SettingsPath, err)
	}

	s.config.Logger.Info("Preferences updated", "theme", theme, "zoom", zoom)
	return nil
}

// SetTheme changes only the theme
func (s *PreferencesService) SetTheme(theme string) error {
	return s.Set(theme, s.Get().Zoom)
}

// read returns defaults merged with whatever the file holds. The error is
// non-nil only when the file exists but cannot be used.
func (s *PreferencesService) read() (preferencesDomain.Preferences, error) {
	prefs := DefaultPreferences()

	v, err := s.config.ReadSettings()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return prefs, nil
		}
		return prefs, err
	}

	if theme := v.GetString(keyTheme); theme != "" {
		prefs.Theme = theme
	}
	if zoom := v.GetString(keyZoom); zoom != "" {
		prefs.Zoom = zoom
	} else if fontSize := v.GetString(keyFontSize); fontSize != "" {
		prefs.Zoom = fontSize
	}

	return prefs, nil
}
