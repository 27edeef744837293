package transport

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"templatedesk/internal/common"
	"templatedesk/internal/config"
	"templatedesk/internal/container"
	importsDomain "templatedesk/internal/domain/imports"
	preferencesDomain "templatedesk/internal/domain/preferences"
	registryDomain "templatedesk/internal/domain/registry"
	statisticsDomain "templatedesk/internal/domain/statistics"

	"github.com/spf13/afero"
)

const recentImportsLimit = 20

// WailsApp is the command surface exposed to the frontend. Every command
// returns a Result; none of them lets an error escape to the host.
type WailsApp struct {
	ctx               context.Context
	config            *config.Config
	logger            *slog.Logger
	registry          registryDomain.Service
	importService     importsDomain.Service
	history           importsDomain.History
	preferencesRepo   preferencesDomain.Repository
	statisticsService statisticsDomain.Service
	host              Host
	startPage         string
}

func NewWailsApp(ctx context.Context, c *container.Container, host Host) *WailsApp {
	cfg := c.GetConfig()
	return &WailsApp{
		ctx:               ctx,
		config:            cfg,
		logger:            cfg.Logger,
		registry:          c.GetRegistryService(),
		importService:     c.GetImportService(),
		history:           c.GetHistory(),
		preferencesRepo:   c.GetPreferencesRepository(),
		statisticsService: c.GetStatisticsService(),
		host:              host,
		startPage:         cfg.LoadWindow().StartPage,
	}
}

// ListFiles returns the registered templates, pruning any whose file is gone
func (a *WailsApp) ListFiles() Result {
	names, err := a.registry.List()
	if err != nil {
		a.logger.Error("Failed to list templates", "error", err)
		return errorResult(err)
	}
	return okResult(names)
}

// OpenFile navigates the window to a registered template, or to the
// default document
func (a *WailsApp) OpenFile(name string) Result {
	if err := common.ValidateName(name); err != nil {
		return errorResult(err)
	}

	if name != common.DefaultDocument {
		registered, err := a.registry.Contains(name)
		if err != nil {
			a.logger.Error("Failed to read template list", "error", err)
			return errorResult(err)
		}
		if !registered {
			return errorResult(fmt.Errorf("%w: %s is not registered", common.ErrNotFound, name))
		}
	}

	path := filepath.Join(a.config.TemplatesDir, name)
	exists, err := afero.Exists(a.config.Fs, path)
	if err != nil {
		return errorResult(common.NewStorageError("check template", path, err))
	}
	if !exists {
		return errorResult(fmt.Errorf("%w: %s", common.ErrNotFound, name))
	}

	return a.navigate(path)
}

// UploadFile asks the user for a file and imports it
func (a *WailsApp) UploadFile() Result {
	sourcePath, err := a.host.Dialogs.PickTemplate()
	if err != nil {
		a.logger.Error("File dialog failed", "error", err)
		return errorResult(err)
	}

	result, err := a.importService.Import(a.ctx, sourcePath)
	if err != nil {
		out := errorResult(err)
		if out.Status == StatusError {
			a.logger.Error("Import failed", "source", sourcePath, "error", err)
		}
		return out
	}

	a.statisticsService.RecordImport(result.Size)
	a.host.Emitter.Emit(common.EventTemplatesChanged, result.Filename)

	return okResult(result.Filename)
}

// DeleteFile removes a template from the list. The file stays on disk.
func (a *WailsApp) DeleteFile(name string) Result {
	if err := a.registry.Unregister(name); err != nil {
		return errorResult(err)
	}

	a.host.Emitter.Emit(common.EventTemplatesChanged, name)
	return okResult(name)
}

// Refresh navigates back to the start page
func (a *WailsApp) Refresh() Result {
	return a.navigate(a.startPage)
}

func (a *WailsApp) GetPrefs() Result {
	return okResult(a.preferencesRepo.Get())
}

func (a *WailsApp) SetPrefs(theme, zoom string) Result {
	if err := a.preferencesRepo.Set(theme, zoom); err != nil {
		a.logger.Error("Failed to save preferences", "error", err)
		return errorResult(err)
	}
	return okResult(nil)
}

// SaveTheme changes the theme and keeps the current zoom
func (a *WailsApp) SaveTheme(theme string) Result {
	if err := a.preferencesRepo.SetTheme(theme); err != nil {
		a.logger.Error("Failed to save theme", "error", err)
		return errorResult(err)
	}
	return okResult(nil)
}

func (a *WailsApp) GetRecentImports() Result {
	if a.history == nil {
		return okResult([]importsDomain.Record{})
	}

	records, err := a.history.Recent(recentImportsLimit)
	if err != nil {
		a.logger.Error("Failed to read import history", "error", err)
		return errorResult(err)
	}
	return okResult(records)
}

func (a *WailsApp) GetAppStatus() map[string]interface{} {
	return a.statisticsService.GetAppStatus()
}

func (a *WailsApp) GetStats() *statisticsDomain.AppStats {
	return a.statisticsService.GetStats()
}

func (a *WailsApp) navigate(path string) Result {
	uri := common.FileURI(path)
	if err := a.host.Navigator.LoadURL(uri); err != nil {
		a.logger.Error("Navigation failed", "url", uri, "error", err)
		return errorResult(err)
	}
	return okResult(uri)
}
