package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// ResetAllInput contains the parameters for a full reset.
type ResetAllInput struct {
	// Confirmer is asked before anything changes.
	// Nil means the caller has already confirmed (e.g. --yes).
	Confirmer domain.Confirmer
}

// ResetAllOutput contains the result of a full reset.
type ResetAllOutput struct {
	Checklist domain.Checklist
	Metadata  domain.SessionMetadata
	Reset     bool // False when the confirmation was declined
	Saved     bool
}

// ResetAll restores every item to PENDING with an empty note and clears the
// metadata covered by the reset scope. A declined confirmation changes nothing.
func (c *Controller) ResetAll(ctx context.Context, in ResetAllInput) (*ResetAllOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	if in.Confirmer != nil {
		ok, err := in.Confirmer.Confirm(ctx, ResetPrompt)
		if err != nil {
			return nil, fmt.Errorf("confirm reset: %w", err)
		}
		if !ok {
			c.logger.Debug(logCategory, "reset declined")
			return &ResetAllOutput{Checklist: c.checklist, Metadata: c.meta}, nil
		}
	}

	c.checklist = c.checklist.ResetAll(c.opts.Template)
	c.meta = c.meta.Reset(c.opts.ResetScope)
	c.logger.Info(logCategory, "checklist reset")

	saved := c.persist(ctx)
	c.persistMetadata(ctx)

	return &ResetAllOutput{
		Checklist: c.checklist,
		Metadata:  c.meta,
		Reset:     true,
		Saved:     saved,
	}, nil
}
