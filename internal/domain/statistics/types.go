package statistics

// AppStats represents template library statistics
type AppStats struct {
	TotalImports        int64 `json:"total_imports"`
	SessionImports      int   `json:"session_imports"`
	SessionBytes        int64 `json:"session_bytes"`
	RegisteredTemplates int   `json:"registered_templates"`
}

// Service defines the interface for statistics operations
type Service interface {
	RecordImport(size int64)
	GetStats() *AppStats
	GetAppStatus() map[string]interface{}
}

// Notifier pushes events to the frontend
type Notifier interface {
	Emit(event string, data ...interface{})
}
