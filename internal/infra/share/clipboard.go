// Package share implements domain.ShareInvoker on the system clipboard.
package share

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// ClipboardSharer copies the shared summary to the system clipboard.
type ClipboardSharer struct {
	write       func(string) error
	unsupported func() bool
}

// NewClipboardSharer creates a ClipboardSharer backed by the system clipboard.
func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Share copies title and text to the clipboard.
func (s *ClipboardSharer) Share(_ context.Context, req domain.ShareRequest) error {
	if s.unsupported() {
		return domain.ErrShareUnsupported
	}
	if err := s.write(Format(req)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrShareUnsupported, err)
	}
	return nil
}

// Format joins the title and text of a share request.
func Format(req domain.ShareRequest) string {
	if req.Title == "" {
		return req.Text
	}
	return req.Title + "\n\n" + req.Text
}

var _ domain.ShareInvoker = (*ClipboardSharer)(nil)
