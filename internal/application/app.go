package application

import (
	"context"

	"templatedesk/internal/config"
	"templatedesk/internal/container"
	"templatedesk/internal/database"
	statisticsDomain "templatedesk/internal/domain/statistics"
	"templatedesk/internal/transport"

	"gorm.io/gorm"
)

// App is the struct bound to the frontend
type App struct {
	ctx       context.Context
	config    *config.Config
	db        *gorm.DB
	container *container.Container
	wailsApp  *transport.WailsApp
}

func NewApp(cfg *config.Config) *App {
	return &App{config: cfg}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx
	cfg := a.config

	// The history is optional; the registry works without it
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Error("Failed to initialize database, import history disabled", "error", err)
	}
	a.db = db

	host := transport.NewHost(ctx, cfg.TemplatesDir, cfg.LoadWindow().StartPage)

	// Initialize dependency container
	a.container = container.New(cfg, db, host.Emitter)

	// Initialize transport layer
	a.wailsApp = transport.NewWailsApp(ctx, a.container, host)

	cfg.Logger.Info("Wails app initialized successfully")
	cfg.Logger.Info("Application configuration",
		"templates_directory", cfg.TemplatesDir,
		"settings_path", cfg.SettingsPath,
		"registry_path", cfg.RegistryPath,
		"database_path", cfg.DatabasePath)
}

func (a *App) OnShutdown(ctx context.Context) {
	if a.db == nil {
		return
	}

	sqlDB, err := a.db.DB()
	if err != nil {
		a.config.Logger.Error("Failed to get database handle", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.config.Logger.Error("Failed to close database", "error", err)
	}
}

func (a *App) ListFiles() transport.Result {
	return a.wailsApp.ListFiles()
}

func (a *App) OpenFile(name string) transport.Result {
	return a.wailsApp.OpenFile(name)
}

func (a *App) UploadFile() transport.Result {
	return a.wailsApp.UploadFile()
}

func (a *App) DeleteFile(name string) transport.Result {
	return a.wailsApp.DeleteFile(name)
}

func (a *App) Refresh() transport.Result {
	return a.wailsApp.Refresh()
}

func (a *App) GetPrefs() transport.Result {
	return a.wailsApp.GetPrefs()
}

func (a *App) SetPrefs(theme, zoom string) transport.Result {
	return a.wailsApp.SetPrefs(theme, zoom)
}

func (a *App) SaveTheme(theme string) transport.Result {
	return a.wailsApp.SaveTheme(theme)
}

func (a *App) GetRecentImports() transport.Result {
	return a.wailsApp.GetRecentImports()
}

func (a *App) GetAppStatus() map[string]interface{} {
	return a.wailsApp.GetAppStatus()
}

func (a *App) GetStats() *statisticsDomain.AppStats {
	return a.wailsApp.GetStats()
}
