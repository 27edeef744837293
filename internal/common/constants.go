package common

const (
	// Application constants
	AppName          = "TemplateDesk"
	DefaultDocument  = "index.html"
	TemplatePattern  = "*.html"
	DefaultTheme     = "light"
	DefaultZoom      = "1.0"
	DefaultTitle     = "Sistema de Gestión"
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultStartPage = "templates/index.html"

	// Directory and file names below the base directory
	TemplatesDirName = "templates"
	ConfigDirName    = "config"
	SettingsFileName = "config.toml"
	RegistryFileName = "templates.json"
	DatabaseFileName = "history.sqlite3"

	// File operation constants
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644

	// Event names
	EventTemplatesChanged = "templates:changed"
	EventStatsUpdate      = "stats:update"
)
