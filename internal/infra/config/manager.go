package config

import (
	"errors"
	"os"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	homeDir string
}

// NewManager creates a new Manager for the default home directory.
func NewManager() *Manager {
	return &Manager{homeDir: domain.DefaultHomeDir()}
}

// NewManagerWithHomeDir creates a new Manager with a custom home directory.
// This is useful for testing.
func NewManagerWithHomeDir(homeDir string) *Manager {
	return &Manager{homeDir: homeDir}
}

// GetConfigInfo returns information about the config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	if m.homeDir == "" {
		return domain.ConfigInfo{}
	}
	path := domain.ConfigPath(m.homeDir)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file from the rendered template.
func (m *Manager) InitConfig(cfg *domain.Config) error {
	if m.homeDir == "" {
		return errors.New("config directory not available")
	}
	path := domain.ConfigPath(m.homeDir)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(m.homeDir, 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(path, []byte(content), 0o600)
}
