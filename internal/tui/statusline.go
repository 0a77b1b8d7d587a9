package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	savedAtLayout = "02/01/2006 15:04:05"
	notSavedText  = "not saved"
	ellipsis      = "..."
)

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLineInfo contains information for rendering the status line.
type StatusLineInfo struct {
	SavedAt  string // Formatted last save time, empty if none
	KeyHints []KeyHint
	Unsaved  bool // The last write failed
}

// StatusLine renders a unified status line at the bottom of the screen.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders key hints on the left and the save state on the right.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := s.styles.Footer

	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	var right string
	switch {
	case info.Unsaved:
		right = s.styles.Unsaved.Render(notSavedText)
	case info.SavedAt != "":
		right = mutedStyle.Render("Terakhir disimpan: " + info.SavedAt)
	default:
		right = mutedStyle.Render("Terakhir disimpan: -")
	}

	rightLen := lipgloss.Width(right)
	if rightLen+len(ellipsis)+1 > s.width {
		return truncate.String(right, uint(max(s.width, 0)))
	}

	maxContentWidth := s.width - rightLen - 2
	if lipgloss.Width(content) > maxContentWidth {
		if maxContentWidth <= len(ellipsis) {
			content = ellipsis
		} else {
			content = truncate.StringWithTail(content, uint(maxContentWidth), ellipsis)
		}
	}

	spacing := s.width - lipgloss.Width(content) - rightLen
	if spacing < 1 {
		spacing = 1
	}
	return content + strings.Repeat(" ", spacing) + right
}
