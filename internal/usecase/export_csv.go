package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/report"
)

// ExportCSVOutput contains the result of a CSV export.
type ExportCSVOutput struct {
	Name     string // File name
	Location string // Where the downloader stored the file
	Content  string // CSV text
}

// ExportCSV renders the checklist as CSV and hands it to the downloader.
func (c *Controller) ExportCSV(ctx context.Context) (*ExportCSVOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	content := report.EncodeCSV(c.checklist, c.meta, c.opts.Export)
	file := domain.ExportFile{
		Name:     report.FileName(c.clock.Now()),
		MIMEType: report.CSVMIMEType,
		Content:  []byte(content),
	}

	location, err := c.downloader.Download(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", file.Name, err)
	}
	c.logger.Info(logCategory, fmt.Sprintf("exported csv to %s", location))

	return &ExportCSVOutput{
		Name:     file.Name,
		Location: location,
		Content:  content,
	}, nil
}
