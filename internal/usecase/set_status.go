package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// SetStatusInput contains the parameters for changing an item's status.
type SetStatusInput struct {
	Status domain.Status // New status (legacy labels accepted)
	ID     int           // Item ID
}

// SetStatusOutput contains the result of changing an item's status.
type SetStatusOutput struct {
	Checklist domain.Checklist
	Saved     bool // False when the write failed; the change is kept in memory
}

// SetStatus replaces the status of one item and saves the checklist.
func (c *Controller) SetStatus(ctx context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}
	status := in.Status.Normalize()
	if !status.IsValid() {
		return nil, fmt.Errorf("%q: %w", in.Status, domain.ErrInvalidStatus)
	}
	if err := c.requireItem(in.ID); err != nil {
		return nil, err
	}

	c.checklist = c.checklist.SetStatus(in.ID, status)
	c.logger.Debug(logCategory, fmt.Sprintf("item %d status %s", in.ID, status))

	return &SetStatusOutput{
		Checklist: c.checklist,
		Saved:     c.persist(ctx),
	}, nil
}
