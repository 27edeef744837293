package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"templatedesk/internal/common"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

//go:embed assets/index.html
var defaultDocument []byte

// Config holds application configuration
type Config struct {
	BaseDir      string
	TemplatesDir string
	ConfigDir    string
	SettingsPath string
	RegistryPath string
	DatabasePath string
	Fs           afero.Fs
	Logger       *slog.Logger
}

// WindowConfig is the [window] section, read once at startup
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	StartPage string
}

// New creates a configuration rooted at the application data directory
// on the real filesystem.
func New() *Config {
	return NewWithFs(afero.NewOsFs(), getAppDataDir(), slog.Default())
}

// NewWithFs creates a configuration over an arbitrary filesystem. The
// managed directory, default document and settings file are created
// when missing.
func NewWithFs(fsys afero.Fs, baseDir string, logger *slog.Logger) *Config {
	cfg := &Config{
		BaseDir: baseDir,
		Fs:      fsys,
		Logger:  logger,
	}

	cfg.setupDirectories()
	cfg.ensureDefaultDocument()
	cfg.ensureSettings()

	return cfg
}

func (c *Config) setupDirectories() {
	c.TemplatesDir = filepath.Join(c.BaseDir, common.TemplatesDirName)
	c.ConfigDir = filepath.Join(c.BaseDir, common.ConfigDirName)

	for _, dir := range []string{c.TemplatesDir, c.ConfigDir} {
		if err := c.Fs.MkdirAll(dir, common.DefaultDirPermissions); err != nil {
			c.Logger.Error("Failed to create directory", "path", dir, "error", err)
		}
	}

	c.SettingsPath = filepath.Join(c.ConfigDir, common.SettingsFileName)
	c.RegistryPath = filepath.Join(c.ConfigDir, common.RegistryFileName)
	c.DatabasePath = filepath.Join(c.ConfigDir, common.DatabaseFileName)
}

// ensureDefaultDocument writes the bundled start page when the managed
// directory does not have one yet.
func (c *Config) ensureDefaultDocument() {
	path := c.DefaultDocumentPath()
	if exists, _ := afero.Exists(c.Fs, path); exists {
		return
	}

	if err := afero.WriteFile(c.Fs, path, defaultDocument, common.DefaultFilePermissions); err != nil {
		c.Logger.Error("Failed to write default document", "path", path, "error", err)
		return
	}
	c.Logger.Info("Created default document", "path", path)
}

// ensureSettings creates the settings file with every default on first run
func (c *Config) ensureSettings() {
	if exists, _ := afero.Exists(c.Fs, c.SettingsPath); exists {
		return
	}

	v := c.newSettings()
	v.Set("window.title", common.DefaultTitle)
	v.Set("window.width", common.DefaultWidth)
	v.Set("window.height", common.DefaultHeight)
	v.Set("window.start_page", common.DefaultStartPage)
	v.Set("preferences.theme", common.DefaultTheme)
	v.Set("preferences.zoom", common.DefaultZoom)

	if err := v.WriteConfigAs(c.SettingsPath); err != nil {
		c.Logger.Error("Failed to write default settings", "path", c.SettingsPath, "error", err)
		return
	}
	c.Logger.Info("Created default settings", "path", c.SettingsPath)
}

func (c *Config) newSettings() *viper.Viper {
	v := viper.New()
	v.SetFs(c.Fs)
	v.SetConfigFile(c.SettingsPath)
	v.SetConfigType("toml")
	return v
}

// ReadSettings loads the settings file. A missing file yields an empty
// store and fs.ErrNotExist; an unreadable or malformed file yields an
// empty store and an error wrapping common.ErrCorrupt.
func (c *Config) ReadSettings() (*viper.Viper, error) {
	v := c.newSettings()

	exists, err := afero.Exists(c.Fs, c.SettingsPath)
	if err != nil {
		return c.newSettings(), fmt.Errorf("%w: %v", common.ErrCorrupt, err)
	}
	if !exists {
		return v, fs.ErrNotExist
	}

	if err := v.ReadInConfig(); err != nil {
		return c.newSettings(), fmt.Errorf("%w: %s: %v", common.ErrCorrupt, c.SettingsPath, err)
	}
	return v, nil
}

// LoadWindow reads the [window] section, filling each missing or invalid
// key with its default. A relative start page resolves against BaseDir.
func (c *Config) LoadWindow() WindowConfig {
	window := WindowConfig{
		Title:     common.DefaultTitle,
		Width:     common.DefaultWidth,
		Height:    common.DefaultHeight,
		StartPage: c.DefaultDocumentPath(),
	}

	v, err := c.ReadSettings()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.Logger.Warn("Settings unreadable, using default window", "error", err)
		}
		return window
	}

	if title := v.GetString("window.title"); title != "" {
		window.Title = title
	}
	if width := v.GetInt("window.width"); width > 0 {
		window.Width = width
	}
	if height := v.GetInt("window.height"); height > 0 {
		window.Height = height
	}
	if startPage := v.GetString("window.start_page"); startPage != "" {
		if !filepath.IsAbs(startPage) {
			startPage = filepath.Join(c.BaseDir, startPage)
		}
		window.StartPage = startPage
	}

	return window
}

// DefaultDocumentPath returns the protected start document inside the managed directory
func (c *Config) DefaultDocumentPath() string {
	return filepath.Join(c.TemplatesDir, common.DefaultDocument)
}

func getAppDataDir() string {
	if dir := os.Getenv("TEMPLATEDESK_HOME"); dir != "" {
		return dir
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "."+common.AppName)
	}
	return filepath.Join(configDir, common.AppName)
}
