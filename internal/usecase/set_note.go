package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// SetNoteInput contains the parameters for editing an item's note.
type SetNoteInput struct {
	Note string // Replacement note ("" clears it)
	ID   int    // Item ID
}

// SetNoteOutput contains the result of editing an item's note.
type SetNoteOutput struct {
	Checklist domain.Checklist
	Saved     bool
}

// SetNote replaces the note of one item and saves the checklist.
func (c *Controller) SetNote(ctx context.Context, in SetNoteInput) (*SetNoteOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}
	if err := c.requireItem(in.ID); err != nil {
		return nil, err
	}

	c.checklist = c.checklist.SetNote(in.ID, in.Note)
	c.logger.Debug(logCategory, fmt.Sprintf("item %d note updated (%d bytes)", in.ID, len(in.Note)))

	return &SetNoteOutput{
		Checklist: c.checklist,
		Saved:     c.persist(ctx),
	}, nil
}
