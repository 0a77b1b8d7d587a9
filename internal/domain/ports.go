package domain

import (
	"context"
	"time"
)

// Storage slot keys. The suffix carries the schema version so that an
// incompatible future format is stored under a different key.
const (
	ChecklistStorageKey = "monitoringToiletData_v1"
	MetadataStorageKey  = "monitoringToiletMeta_v1"
)

// StorageProvider is a durable string-keyed slot store.
type StorageProvider interface {
	// Get returns the value stored under key. ok is false if the slot is empty.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, key string) error
}

// ExportFile is a generated file handed to a FileDownloader.
type ExportFile struct {
	Name     string // File name, e.g. monitoring-toilet-2025-01-31.csv
	MIMEType string // e.g. text/csv
	Content  []byte
}

// FileDownloader delivers generated files to the user.
type FileDownloader interface {
	// Download stores the file and returns where it was written.
	Download(ctx context.Context, file ExportFile) (location string, err error)
}

// PrintJob is a print-ready rendering of the report.
type PrintJob struct {
	Title    string // Document title
	Text     string // Plain-text rendering
	Markdown string // Markdown rendering
}

// PrintInvoker hands a report to the host print facility.
type PrintInvoker interface {
	Print(ctx context.Context, job PrintJob) error
}

// ShareRequest is the payload for the host share facility.
type ShareRequest struct {
	Title string
	Text  string
}

// ShareInvoker hands a summary to the host share facility.
// Implementations return ErrShareUnsupported when no facility exists.
type ShareInvoker interface {
	Share(ctx context.Context, req ShareRequest) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Logger writes categorized diagnostic messages.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)

	// LoadTemplate returns the checklist template selected by cfg.
	LoadTemplate(cfg *Config) (Template, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetConfigInfo returns information about the config file.
	GetConfigInfo() ConfigInfo

	// InitConfig writes the default config template. Fails with ErrConfigExists.
	InitConfig(cfg *Config) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
