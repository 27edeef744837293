package container

import (
	"templatedesk/internal/common"
	"templatedesk/internal/config"
	importsDomain "templatedesk/internal/domain/imports"
	registryDomain "templatedesk/internal/domain/registry"
	statisticsDomain "templatedesk/internal/domain/statistics"
)

// StatisticsServiceImpl implements the statistics domain service
type StatisticsServiceImpl struct {
	config   *config.Config
	registry registryDomain.Service
	history  importsDomain.History
	notifier statisticsDomain.Notifier
	stats    statisticsDomain.AppStats
}

func (s *StatisticsServiceImpl) RecordImport(size int64) {
	s.stats.SessionImports++
	s.stats.SessionBytes += size

	// Emit stats update
	if s.notifier != nil {
		s.notifier.Emit(common.EventStatsUpdate, s.GetStats())
	}
}

func (s *StatisticsServiceImpl) GetStats() *statisticsDomain.AppStats {
	stats := s.stats

	if s.history != nil {
		total, err := s.history.Count()
		if err != nil {
			s.config.Logger.Warn("Failed to count imports", "error", err)
		}
		stats.TotalImports = total
	}

	names, err := s.registry.List()
	if err != nil {
		s.config.Logger.Warn("Failed to list templates for stats", "error", err)
	}
	stats.RegisteredTemplates = len(names)

	return &stats
}

func (s *StatisticsServiceImpl) GetAppStatus() map[string]interface{} {
	return map[string]interface{}{
		"status":            "running",
		"framework":         "Wails",
		"app_name":          common.AppName,
		"templates_dir":     s.config.TemplatesDir,
		"settings_path":     s.config.SettingsPath,
		"registry_path":     s.config.RegistryPath,
		"database_path":     s.config.DatabasePath,
		"history_available": s.history != nil,
	}
}
