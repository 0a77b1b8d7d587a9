package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// File and directory names under the application home.
const (
	AppName        = "toilet-monitor"
	ConfigFileName = "config.toml"
	HomeEnvVar     = "TOILET_MONITOR_HOME"
	logsDirName    = "logs"
	logFileName    = "toilet-monitor.log"
	fileStoreName  = "checklist.json"
	sqliteName     = "checklist.db"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Storage   StorageConfig   `toml:"storage"`
	Checklist ChecklistConfig `toml:"checklist"`
	Export    ExportConfig    `toml:"export"`
	Print     PrintConfig     `toml:"print"`
	Log       LogConfig       `toml:"log"`
	Reset     ResetConfig     `toml:"reset"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend         string `toml:"backend"`          // file (default), sqlite or memory
	Path            string `toml:"path,omitempty"`   // Store location (default: under home)
	PersistMetadata bool   `toml:"persist_metadata"` // Keep date/location/coordinator across sessions
}

// ChecklistConfig holds settings from the [checklist] section.
type ChecklistConfig struct {
	Template string `toml:"template,omitempty"` // YAML template file (empty = built-in 14 tasks)
}

// ResetConfig holds settings from the [reset] section.
type ResetConfig struct {
	ClearDateLabel bool `toml:"clear_date_label"` // Also clear the date label on reset
}

// Scope returns the metadata reset scope.
func (r ResetConfig) Scope() ResetScope {
	return ResetScope{ClearDateLabel: r.ClearDateLabel}
}

// ExportConfig holds settings from the [export] section.
type ExportConfig struct {
	Dir               string     `toml:"dir"`                 // Output directory for CSV files
	StatusLabels      LabelStyle `toml:"status_labels"`       // localized or canonical
	IncludeDateColumn bool       `toml:"include_date_column"` // Emit the date label column
}

// PrintConfig holds settings from the [print] section.
type PrintConfig struct {
	Command string `toml:"command,omitempty"` // Pipe plain text to this command (e.g. lp)
	Style   string `toml:"style"`             // glamour style for terminal output
	Width   int    `toml:"width"`             // Word wrap width
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Default config values.
const (
	DefaultLogLevel   = "info"
	DefaultPrintStyle = "auto"
	DefaultPrintWidth = 80
)

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:         BackendFile,
			PersistMetadata: true,
		},
		Reset: ResetConfig{
			ClearDateLabel: true,
		},
		Export: ExportConfig{
			Dir:               ".",
			StatusLabels:      LabelStyleLocalized,
			IncludeDateColumn: true,
		},
		Print: PrintConfig{
			Style: DefaultPrintStyle,
			Width: DefaultPrintWidth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// StoragePath returns the configured store location, defaulting under home.
func (c *Config) StoragePath(home string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(home, sqliteName)
	}
	return filepath.Join(home, fileStoreName)
}

// DefaultHomeDir resolves the application home directory.
// Order: $TOILET_MONITOR_HOME, $XDG_CONFIG_HOME/toilet-monitor, ~/.config/toilet-monitor.
func DefaultHomeDir() string {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName)
}

// ConfigPath returns the config file path under home.
func ConfigPath(home string) string {
	return filepath.Join(home, ConfigFileName)
}

// LogPath returns the log file path under home.
func LogPath(home string) string {
	return filepath.Join(home, logsDirName, logFileName)
}

// LogsDir returns the log directory under home.
func LogsDir(home string) string {
	return filepath.Join(home, logsDirName)
}

// RenderConfigTemplate renders the commented config file template with cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
