// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the TOML file in the home directory.
type Loader struct {
	homeDir string // Application home (config, store, logs)
}

// NewLoader creates a new Loader for the default home directory.
func NewLoader() *Loader {
	return &Loader{homeDir: domain.DefaultHomeDir()}
}

// NewLoaderWithHomeDir creates a new Loader with a custom home directory.
// This is useful for testing.
func NewLoaderWithHomeDir(homeDir string) *Loader {
	return &Loader{homeDir: homeDir}
}

// Load returns the file configuration merged over defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.homeDir == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(domain.ConfigPath(l.homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", domain.ConfigPath(l.homeDir), err)
	}

	cfg.Warnings = applyRaw(cfg, raw)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyRaw overlays the keys present in raw onto cfg and returns warnings
// for unknown sections and keys. Keys absent from raw keep their defaults,
// so a false boolean in the file overrides a true default.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "storage":
			for k, v := range m {
				switch k {
				case "backend":
					setString(&cfg.Storage.Backend, v)
				case "path":
					setString(&cfg.Storage.Path, v)
				case "persist_metadata":
					setBool(&cfg.Storage.PersistMetadata, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
				}
			}
		case "checklist":
			for k, v := range m {
				switch k {
				case "template":
					setString(&cfg.Checklist.Template, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [checklist]: %s", k))
				}
			}
		case "reset":
			for k, v := range m {
				switch k {
				case "clear_date_label":
					setBool(&cfg.Reset.ClearDateLabel, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [reset]: %s", k))
				}
			}
		case "export":
			for k, v := range m {
				switch k {
				case "dir":
					setString(&cfg.Export.Dir, v)
				case "status_labels":
					if s, ok := v.(string); ok {
						cfg.Export.StatusLabels = domain.LabelStyle(s)
					}
				case "include_date_column":
					setBool(&cfg.Export.IncludeDateColumn, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [export]: %s", k))
				}
			}
		case "print":
			for k, v := range m {
				switch k {
				case "command":
					setString(&cfg.Print.Command, v)
				case "style":
					setString(&cfg.Print.Style, v)
				case "width":
					if n, ok := v.(int64); ok && n > 0 {
						cfg.Print.Width = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [print]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					setString(&cfg.Log.Level, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func setString(dst *string, v any) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

func setBool(dst *bool, v any) {
	if b, ok := v.(bool); ok {
		*dst = b
	}
}

// validate rejects values that no component can act on.
func validate(cfg *domain.Config) error {
	switch cfg.Storage.Backend {
	case domain.BackendFile, domain.BackendSQLite, domain.BackendMemory:
	default:
		return fmt.Errorf("%q: %w", cfg.Storage.Backend, domain.ErrUnknownBackend)
	}
	if !cfg.Export.StatusLabels.IsValid() {
		return fmt.Errorf("%q: %w", cfg.Export.StatusLabels, domain.ErrInvalidLabelStyle)
	}
	return nil
}

// resolvePath makes a relative path relative to the home directory.
func (l *Loader) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || l.homeDir == "" {
		return path
	}
	return filepath.Join(l.homeDir, path)
}
