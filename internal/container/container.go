package container

import (
	"log/slog"

	"templatedesk/internal/config"
	importsDomain "templatedesk/internal/domain/imports"
	preferencesDomain "templatedesk/internal/domain/preferences"
	registryDomain "templatedesk/internal/domain/registry"
	statisticsDomain "templatedesk/internal/domain/statistics"
	"templatedesk/internal/services"

	"gorm.io/gorm"
)

// Container holds all dependencies for the application
type Container struct {
	config   *config.Config
	db       *gorm.DB
	logger   *slog.Logger
	notifier statisticsDomain.Notifier

	// Services
	registryService   registryDomain.Service
	preferencesRepo   preferencesDomain.Repository
	history           importsDomain.History
	importService     importsDomain.Service
	statisticsService statisticsDomain.Service
}

// New creates a new dependency injection container. db may be nil, in
// which case imports are not recorded in the history.
func New(cfg *config.Config, db *gorm.DB, notifier statisticsDomain.Notifier) *Container {
	c := &Container{
		config:   cfg,
		db:       db,
		logger:   cfg.Logger,
		notifier: notifier,
	}

	c.initServices()
	return c
}

// initServices initializes all services with their dependencies
func (c *Container) initServices() {
	// Create infrastructure services
	store := services.NewJSONListStore(c.config.Fs, c.config.RegistryPath)
	c.registryService = services.NewRegistryService(c.config.Fs, c.config.TemplatesDir, store, c.logger)
	c.preferencesRepo = services.NewPreferencesService(c.config)
	if c.db != nil {
		c.history = services.NewHistoryService(c.db)
	}

	// Create domain services
	c.importService = services.NewImportService(c.config.Fs, c.config.TemplatesDir, c.registryService, c.history, c.logger)

	c.statisticsService = &StatisticsServiceImpl{
		config:   c.config,
		registry: c.registryService,
		history:  c.history,
		notifier: c.notifier,
	}
}

// GetRegistryService returns the template registry
func (c *Container) GetRegistryService() registryDomain.Service {
	return c.registryService
}

// GetImportService returns the import pipeline
func (c *Container) GetImportService() importsDomain.Service {
	return c.importService
}

// GetStatisticsService returns the statistics service
func (c *Container) GetStatisticsService() statisticsDomain.Service {
	return c.statisticsService
}

// GetPreferencesRepository returns the preferences repository
func (c *Container) GetPreferencesRepository() preferencesDomain.Repository {
	return c.preferencesRepo
}

// GetHistory returns the import history, or nil when no database is open
func (c *Container) GetHistory() importsDomain.History {
	return c.history
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}
