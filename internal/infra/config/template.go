package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// templateFile is the YAML layout of a custom checklist template:
//
//	items:
//	  - Menyikat lantai
//	  - Membersihkan dinding
type templateFile struct {
	Items []string `yaml:"items"`
}

// LoadTemplate returns the checklist template selected by cfg.
// An empty [checklist] template setting selects the built-in tasks.
func (l *Loader) LoadTemplate(cfg *domain.Config) (domain.Template, error) {
	if cfg == nil || cfg.Checklist.Template == "" {
		return domain.DefaultTemplate(), nil
	}

	path := l.resolvePath(cfg.Checklist.Template)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checklist template: %w", err)
	}
	return ParseTemplate(data)
}

// ParseTemplate parses a YAML checklist template.
func ParseTemplate(data []byte) (domain.Template, error) {
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse checklist template: %w", err)
	}
	return domain.NewTemplate(f.Items)
}
