package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(domain.ConfigPath(home), []byte(content), 0o644))
}

func TestLoader_Load_NoFile(t *testing.T) {
	cfg, err := NewLoaderWithHomeDir(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_OverridesDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[storage]
backend = "sqlite"
persist_metadata = false

[checklist]
template = "tasks.yaml"

[reset]
clear_date_label = false

[export]
dir = "/tmp/exports"
status_labels = "canonical"
include_date_column = false

[print]
command = "lp"
style = "notty"
width = 60

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithHomeDir(home).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.BackendSQLite, cfg.Storage.Backend)
	assert.False(t, cfg.Storage.PersistMetadata)
	assert.Equal(t, "tasks.yaml", cfg.Checklist.Template)
	assert.False(t, cfg.Reset.ClearDateLabel)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, domain.LabelStyleCanonical, cfg.Export.StatusLabels)
	assert.False(t, cfg.Export.IncludeDateColumn)
	assert.Equal(t, "lp", cfg.Print.Command)
	assert.Equal(t, "notty", cfg.Print.Style)
	assert.Equal(t, 60, cfg.Print.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[log]\nlevel = \"warn\"\n")

	cfg, err := NewLoaderWithHomeDir(home).Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.PersistMetadata)
	assert.True(t, cfg.Export.IncludeDateColumn)
}

func TestLoader_Load_Warnings(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[storage]
colour = "blue"

[extras]
x = 1
`)

	cfg, err := NewLoaderWithHomeDir(home).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [storage]: colour",
		"unknown section: extras",
	}, cfg.Warnings)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		want    error
		name    string
		content string
	}{
		{name: "unknown backend", content: "[storage]\nbackend = \"redis\"\n", want: domain.ErrUnknownBackend},
		{name: "bad label style", content: "[export]\nstatus_labels = \"english\"\n", want: domain.ErrInvalidLabelStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.content)

			_, err := NewLoaderWithHomeDir(home).Load()
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("invalid toml", func(t *testing.T) {
		home := t.TempDir()
		writeConfig(t, home, "[storage\n")

		_, err := NewLoaderWithHomeDir(home).Load()
		assert.Error(t, err)
	})
}

func TestLoader_Load_RenderedTemplateRoundTrips(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, domain.RenderConfigTemplate(domain.NewDefaultConfig()))

	cfg, err := NewLoaderWithHomeDir(home).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_LoadTemplate(t *testing.T) {
	home := t.TempDir()
	loader := NewLoaderWithHomeDir(home)

	t.Run("built-in when unset", func(t *testing.T) {
		tmpl, err := loader.LoadTemplate(domain.NewDefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTemplate(), tmpl)
	})

	t.Run("relative path resolves under home", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "tasks.yaml"), []byte("items:\n  - Cek sabun\n  - \"  \"\n  - Cek tisu\n"), 0o644))
		cfg := domain.NewDefaultConfig()
		cfg.Checklist.Template = "tasks.yaml"

		tmpl, err := loader.LoadTemplate(cfg)
		require.NoError(t, err)
		assert.Equal(t, domain.Template{"Cek sabun", "Cek tisu"}, tmpl)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Checklist.Template = "nope.yaml"

		_, err := loader.LoadTemplate(cfg)
		assert.Error(t, err)
	})
}

func TestParseTemplate(t *testing.T) {
	_, err := ParseTemplate([]byte("items: []\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyTemplate)

	_, err = ParseTemplate([]byte("items: {a: b}\n"))
	assert.Error(t, err)
}
