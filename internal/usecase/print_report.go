package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// PrintOutput contains the job handed to the printer.
type PrintOutput struct {
	Job domain.PrintJob
}

// Preview renders the static report view without sending it anywhere.
func (c *Controller) Preview(_ context.Context) (*PrintOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}
	return &PrintOutput{Job: c.printJob()}, nil
}

// Print renders the static report view and hands it to the printer.
// State is neither changed nor saved.
func (c *Controller) Print(ctx context.Context) (*PrintOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	job := c.printJob()
	if err := c.printer.Print(ctx, job); err != nil {
		return nil, fmt.Errorf("print report: %w", err)
	}

	return &PrintOutput{Job: job}, nil
}

func (c *Controller) printJob() domain.PrintJob {
	view := c.printView()
	return domain.PrintJob{
		Title:    view.Title,
		Text:     view.Text(),
		Markdown: view.Markdown(),
	}
}
