// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/infra/config"
	"github.com/runoshun/toilet-monitor/internal/infra/confirm"
	"github.com/runoshun/toilet-monitor/internal/infra/download"
	"github.com/runoshun/toilet-monitor/internal/infra/executor"
	"github.com/runoshun/toilet-monitor/internal/infra/logging"
	"github.com/runoshun/toilet-monitor/internal/infra/printer"
	"github.com/runoshun/toilet-monitor/internal/infra/share"
	"github.com/runoshun/toilet-monitor/internal/infra/storage/jsonstore"
	"github.com/runoshun/toilet-monitor/internal/infra/storage/memstore"
	"github.com/runoshun/toilet-monitor/internal/infra/storage/sqlitestore"
	"github.com/runoshun/toilet-monitor/internal/report"
	"github.com/runoshun/toilet-monitor/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	HomeDir    string // Application home directory
	ConfigPath string // Path to config.toml
	StorePath  string // Path to the storage backend file
	LogPath    string // Path to the log file
}

// newConfig derives the application paths from the home directory.
func newConfig(homeDir string, appConfig *domain.Config) Config {
	return Config{
		HomeDir:    homeDir,
		ConfigPath: domain.ConfigPath(homeDir),
		StorePath:  appConfig.StoragePath(homeDir),
		LogPath:    domain.LogPath(homeDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Storage       domain.StorageProvider
	Downloader    domain.FileDownloader
	Printer       domain.PrintInvoker
	Sharer        domain.ShareInvoker
	Clock         domain.Clock
	FileLogger    domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Prompt        domain.Confirmer // Interactive reset confirmation

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	// Checklist seeding template
	Template domain.Template
	closers  []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given home directory.
// Reports printed to the terminal go to stdout; diagnostics go to stderr.
func New(ctx context.Context, homeDir string, stdout, stderr io.Writer) (*Container, error) {
	configLoader := config.NewLoaderWithHomeDir(homeDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	template, err := configLoader.LoadTemplate(appConfig)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(homeDir, appConfig)

	c := &Container{
		Downloader:    download.NewDirDownloader(appConfig.Export.Dir),
		Printer:       printer.New(appConfig.Print, executor.NewClient(), stdout, stderr),
		Sharer:        share.NewClipboardSharer(),
		Prompt:        confirm.NewPrompt(),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithHomeDir(homeDir),
		AppConfig:     appConfig,
		Template:      template,
		Config:        cfg,
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	fileLogger := logging.New(homeDir, level)
	c.FileLogger = fileLogger
	c.closers = append(c.closers, fileLogger)

	// Create logger
	c.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	storage, err := c.openStorage(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Storage = storage

	return c, nil
}

// openStorage creates the storage backend selected in the config.
func (c *Container) openStorage(ctx context.Context) (domain.StorageProvider, error) {
	switch c.AppConfig.Storage.Backend {
	case domain.BackendFile:
		return jsonstore.New(c.Config.StorePath), nil
	case domain.BackendSQLite:
		store, err := sqlitestore.Open(ctx, c.Config.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		c.closers = append(c.closers, store)
		return store, nil
	case domain.BackendMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("%q: %w", c.AppConfig.Storage.Backend, domain.ErrUnknownBackend)
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, deps usecase.ControllerDeps, configLoader domain.ConfigLoader, configManager domain.ConfigManager, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Storage:       deps.Storage,
		Downloader:    deps.Downloader,
		Printer:       deps.Printer,
		Sharer:        deps.Sharer,
		Clock:         deps.Clock,
		FileLogger:    deps.Logger,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Logger:        logger,
		AppConfig:     appConfig,
		Template:      domain.DefaultTemplate(),
		Config:        cfg,
	}
}

// Close releases open files and database connections.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Controller returns a new checklist Controller wired to the container's ports.
// The caller must Start it.
func (c *Container) Controller() *usecase.Controller {
	return usecase.NewController(usecase.ControllerDeps{
		Storage:    c.Storage,
		Downloader: c.Downloader,
		Printer:    c.Printer,
		Sharer:     c.Sharer,
		Clock:      c.Clock,
		Logger:     c.FileLogger,
	}, usecase.ControllerOptions{
		Template:        c.Template,
		Export:          report.OptionsFromConfig(c.AppConfig.Export),
		ResetScope:      c.AppConfig.Reset.Scope(),
		PersistMetadata: c.AppConfig.Storage.PersistMetadata,
	})
}

// Confirmer returns the reset confirmation prompt, or nil when the user
// has already confirmed (e.g. with --yes).
func (c *Container) Confirmer(confirmed bool) domain.Confirmer {
	if confirmed {
		return nil
	}
	if c.Prompt != nil {
		return c.Prompt
	}
	return confirm.NewPrompt()
}

// UseCase factory methods

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.HomeDir)
}
