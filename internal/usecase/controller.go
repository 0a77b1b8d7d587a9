// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/persistence"
	"github.com/runoshun/toilet-monitor/internal/report"
)

const (
	logCategory = "checklist"

	// fallbackDateLayout formats the current date shown on reports without a date label.
	fallbackDateLayout = "02/01/2006"

	// ResetPrompt is the confirmation question asked before a full reset.
	ResetPrompt = "Reset semua checklist ke BELUM dan hapus catatan?"
)

// ControllerDeps contains the ports used by a Controller.
// Fields are ordered to minimize memory padding.
type ControllerDeps struct {
	Storage    domain.StorageProvider
	Downloader domain.FileDownloader
	Printer    domain.PrintInvoker
	Sharer     domain.ShareInvoker
	Clock      domain.Clock
	Logger     domain.Logger
}

// ControllerOptions contains the behaviour switches of a Controller.
// Fields are ordered to minimize memory padding.
type ControllerOptions struct {
	Template        domain.Template   // Seeding template (empty = built-in tasks)
	Export          report.CSVOptions // CSV column set and labels
	ResetScope      domain.ResetScope // Metadata cleared by ResetAll
	PersistMetadata bool              // Keep metadata in its own storage slot
}

// Controller owns the checklist and session metadata for one session.
// Every mutation updates the in-memory state first and then saves it.
// A Controller is not safe for concurrent use.
type Controller struct {
	store      *persistence.Adapter
	downloader domain.FileDownloader
	printer    domain.PrintInvoker
	sharer     domain.ShareInvoker
	clock      domain.Clock
	logger     domain.Logger
	opts       ControllerOptions
	checklist  domain.Checklist
	meta       domain.SessionMetadata
	started    bool
}

// NewController creates a new Controller. Call Start before any other operation.
func NewController(deps ControllerDeps, opts ControllerOptions) *Controller {
	if deps.Logger == nil {
		deps.Logger = domain.NopLogger{}
	}
	if deps.Clock == nil {
		deps.Clock = domain.RealClock{}
	}
	if len(opts.Template) == 0 {
		opts.Template = domain.DefaultTemplate()
	}
	return &Controller{
		store:      persistence.New(deps.Storage, deps.Logger),
		downloader: deps.Downloader,
		printer:    deps.Printer,
		sharer:     deps.Sharer,
		clock:      deps.Clock,
		logger:     deps.Logger,
		opts:       opts,
	}
}

// Checklist returns the current checklist.
func (c *Controller) Checklist() domain.Checklist {
	return c.checklist
}

// Metadata returns the current session metadata.
func (c *Controller) Metadata() domain.SessionMetadata {
	return c.meta
}

// PersistsMetadata reports whether metadata has its own storage slot.
func (c *Controller) PersistsMetadata() bool {
	return c.opts.PersistMetadata
}

// Started reports whether Start has completed.
func (c *Controller) Started() bool {
	return c.started
}

// StartOutput contains the result of starting a session.
type StartOutput struct {
	Checklist domain.Checklist
	Metadata  domain.SessionMetadata
	Restored  bool // Prior state was loaded from storage
	Saved     bool // A freshly seeded checklist was written
}

// Start loads the prior checklist or seeds a fresh one from the template.
// A seeded checklist is saved immediately so the slot is populated.
func (c *Controller) Start(ctx context.Context) (*StartOutput, error) {
	out := &StartOutput{}

	if loaded, ok := c.store.Load(ctx); ok {
		c.checklist = loaded
		out.Restored = true
		c.logger.Info(logCategory, fmt.Sprintf("restored checklist with %d items", loaded.Len()))
	} else {
		c.checklist = domain.NewChecklist(c.opts.Template)
		c.logger.Info(logCategory, fmt.Sprintf("seeded checklist with %d items", c.checklist.Len()))
	}

	if c.opts.PersistMetadata {
		if meta, ok := c.store.LoadMetadata(ctx); ok {
			c.meta = meta
		}
	}

	c.started = true
	if !out.Restored {
		out.Saved = c.persist(ctx)
	}

	out.Checklist = c.checklist
	out.Metadata = c.meta
	return out, nil
}

// persist saves the checklist and advances LastSavedAt on success.
// Failures are logged; the in-memory state stays authoritative.
func (c *Controller) persist(ctx context.Context) bool {
	if c.checklist.IsEmpty() {
		return false
	}
	if err := c.store.Save(ctx, c.checklist); err != nil {
		c.logger.Error(logCategory, fmt.Sprintf("save failed: %v", err))
		return false
	}
	c.meta = c.meta.WithSavedAt(c.clock.Now())
	return true
}

// persistMetadata saves the descriptive metadata when enabled.
func (c *Controller) persistMetadata(ctx context.Context) bool {
	if !c.opts.PersistMetadata {
		return false
	}
	if err := c.store.SaveMetadata(ctx, c.meta); err != nil {
		c.logger.Error(logCategory, fmt.Sprintf("save metadata failed: %v", err))
		return false
	}
	return true
}

func (c *Controller) requireStarted() error {
	if !c.started {
		return domain.ErrNotStarted
	}
	return nil
}

func (c *Controller) requireItem(id int) error {
	if _, ok := c.checklist.Find(id); !ok {
		return fmt.Errorf("item %d: %w", id, domain.ErrItemNotFound)
	}
	return nil
}

// printView builds the report projection of the current state.
func (c *Controller) printView() report.PrintView {
	return report.BuildPrintView(c.checklist, c.meta, report.PrintOptions{
		FallbackDate: c.clock.Now().Format(fallbackDateLayout),
		StatusLabels: c.opts.Export.StatusLabels,
	})
}
