package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// ShareOutput contains the result of sharing the report summary.
type ShareOutput struct {
	Request domain.ShareRequest
	Notice  string // Set when sharing is unavailable
	Shared  bool
}

// Share hands a title and summary to the host share facility. A missing
// facility is reported through Notice rather than as an error.
func (c *Controller) Share(ctx context.Context) (*ShareOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	view := c.printView()
	req := domain.ShareRequest{
		Title: view.Title,
		Text:  view.Summary(),
	}

	if err := c.sharer.Share(ctx, req); err != nil {
		if errors.Is(err, domain.ErrShareUnsupported) {
			c.logger.Info(logCategory, "share unavailable")
			return &ShareOutput{Request: req, Notice: err.Error()}, nil
		}
		return nil, fmt.Errorf("share report: %w", err)
	}

	return &ShareOutput{Request: req, Shared: true}, nil
}
