package usecase

import (
	"context"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// SetMetadataInput contains the metadata fields to overwrite.
// Nil fields are left unchanged.
type SetMetadataInput struct {
	DateLabel   *string
	Location    *string
	Coordinator *string
}

// SetMetadataOutput contains the result of updating metadata.
type SetMetadataOutput struct {
	Metadata domain.SessionMetadata
	Saved    bool // Metadata slot written (always false when persistence is off)
}

// SetMetadata overwrites the given metadata fields.
func (c *Controller) SetMetadata(ctx context.Context, in SetMetadataInput) (*SetMetadataOutput, error) {
	if err := c.requireStarted(); err != nil {
		return nil, err
	}

	if in.DateLabel != nil {
		c.meta = c.meta.WithDateLabel(*in.DateLabel)
	}
	if in.Location != nil {
		c.meta = c.meta.WithLocation(*in.Location)
	}
	if in.Coordinator != nil {
		c.meta = c.meta.WithCoordinator(*in.Coordinator)
	}

	return &SetMetadataOutput{
		Saved:    c.persistMetadata(ctx),
		Metadata: c.meta,
	}, nil
}
