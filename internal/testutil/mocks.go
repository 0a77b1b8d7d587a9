// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStorage is a test double for domain.StorageProvider.
// Fields are ordered to minimize memory padding.
type MockStorage struct {
	Slots     map[string]string
	GetErr    error
	SetErr    error
	DeleteErr error
	SetCalls  int
}

// NewMockStorage creates a new MockStorage with an initialized slot map.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		Slots: make(map[string]string),
	}
}

// Get returns the slot value.
func (m *MockStorage) Get(_ context.Context, key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Slots[key]
	return v, ok, nil
}

// Set stores the slot value unless SetErr is configured.
func (m *MockStorage) Set(_ context.Context, key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Slots[key] = value
	return nil
}

// Delete removes the slot.
func (m *MockStorage) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Slots, key)
	return nil
}

// MockDownloader is a test double for domain.FileDownloader.
type MockDownloader struct {
	Err      error
	Files    []domain.ExportFile
	Location string
}

// Download records the file.
func (m *MockDownloader) Download(_ context.Context, file domain.ExportFile) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Files = append(m.Files, file)
	if m.Location != "" {
		return m.Location, nil
	}
	return file.Name, nil
}

// MockPrinter is a test double for domain.PrintInvoker.
type MockPrinter struct {
	Err  error
	Jobs []domain.PrintJob
}

// Print records the job.
func (m *MockPrinter) Print(_ context.Context, job domain.PrintJob) error {
	if m.Err != nil {
		return m.Err
	}
	m.Jobs = append(m.Jobs, job)
	return nil
}

// MockSharer is a test double for domain.ShareInvoker.
type MockSharer struct {
	Err      error
	Requests []domain.ShareRequest
}

// Share records the request.
func (m *MockSharer) Share(_ context.Context, req domain.ShareRequest) error {
	if m.Err != nil {
		return m.Err
	}
	m.Requests = append(m.Requests, req)
	return nil
}

// MockConfirmer is a test double for domain.Confirmer.
type MockConfirmer struct {
	Err     error
	Prompts []string
	Answer  bool
}

// Confirm records the prompt and returns the configured answer.
func (m *MockConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Answer, nil
}

// LogEntry is a message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config      *domain.Config
	Template    domain.Template
	LoadErr     error
	TemplateErr error
}

// Load returns the configured config, or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadTemplate returns the configured template, or the built-in one.
func (m *MockConfigLoader) LoadTemplate(_ *domain.Config) (domain.Template, error) {
	if m.TemplateErr != nil {
		return nil, m.TemplateErr
	}
	if m.Template == nil {
		return domain.DefaultTemplate(), nil
	}
	return m.Template, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	Written    *domain.Config
	Info       domain.ConfigInfo
	InitCalled bool
}

// GetConfigInfo returns the configured info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call and returns InitErr.
func (m *MockConfigManager) InitConfig(cfg *domain.Config) error {
	m.InitCalled = true
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Written = cfg
	return nil
}

// Compile-time interface checks.
var (
	_ domain.Clock           = (*MockClock)(nil)
	_ domain.StorageProvider = (*MockStorage)(nil)
	_ domain.FileDownloader  = (*MockDownloader)(nil)
	_ domain.PrintInvoker    = (*MockPrinter)(nil)
	_ domain.ShareInvoker    = (*MockSharer)(nil)
	_ domain.Confirmer       = (*MockConfirmer)(nil)
	_ domain.Logger          = (*MockLogger)(nil)
	_ domain.ConfigLoader    = (*MockConfigLoader)(nil)
	_ domain.ConfigManager   = (*MockConfigManager)(nil)
)
