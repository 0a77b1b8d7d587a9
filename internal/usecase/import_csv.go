package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/report"
)

// ImportCSVInput contains the parameters for importing a CSV export.
type ImportCSVInput struct {
	Content      string // CSV text as written by ExportCSV
	WithMetadata bool   // Also take date, location and coordinator from the first row
}

// ImportCSVOutput contains the result of an import.
type ImportCSVOutput struct {
	Checklist domain.Checklist
	Applied   int // Rows matched to an item
	Skipped   int // Rows whose id is not in the checklist
	Saved     bool
}

// ImportCSV applies status and note from each row to the item with the same id.
// Labels are never changed and rows with unknown ids are skipped.
func (c *Controller) ImportCSV(ctx context.Context, in ImportCSVInput) (*ImportCSVOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	rows, err := report.DecodeCSV(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportCSVOutput{}
	next := c.checklist
	for _, row := range rows {
		if _, ok := next.Find(row.ID); !ok {
			out.Skipped++
			continue
		}
		next = next.SetStatus(row.ID, row.Status).SetNote(row.ID, row.Note)
		out.Applied++
	}
	c.checklist = next

	if in.WithMetadata && len(rows) > 0 {
		first := rows[0]
		if first.DateLabel != "" {
			c.meta = c.meta.WithDateLabel(first.DateLabel)
		}
		c.meta = c.meta.WithLocation(first.Location).WithCoordinator(first.Coordinator)
		c.persistMetadata(ctx)
	}

	c.logger.Info(logCategory, fmt.Sprintf("imported csv: %d applied, %d skipped", out.Applied, out.Skipped))
	if out.Applied > 0 {
		out.Saved = c.persist(ctx)
	}
	out.Checklist = c.checklist
	return out, nil
}
