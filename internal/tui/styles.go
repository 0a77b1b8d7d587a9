package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Colors is the palette used by DefaultStyles.
var Colors = struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Focus   lipgloss.Color
	Error   lipgloss.Color
	Notice  lipgloss.Color

	Pending lipgloss.Color
	Done    lipgloss.Color
}{
	Primary: lipgloss.Color("#0E7490"), // Teal
	Accent:  lipgloss.Color("#67E8F9"),
	Muted:   lipgloss.Color("#6B7280"),
	Text:    lipgloss.Color("#E5E7EB"),
	Focus:   lipgloss.Color("#FDE68A"),
	Error:   lipgloss.Color("#DC2626"),
	Notice:  lipgloss.Color("#10B981"),

	Pending: lipgloss.Color("#F59E0B"),
	Done:    lipgloss.Color("#10B981"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Progress   lipgloss.Style

	// Checklist rows
	ItemNormal     lipgloss.Style
	ItemSelected   lipgloss.Style
	ItemNumber     lipgloss.Style
	ItemNote       lipgloss.Style
	CursorNormal   lipgloss.Style
	CursorSelected lipgloss.Style
	StatusPending  lipgloss.Style
	StatusDone     lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Feedback
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style
	Unsaved   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		MetaLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		MetaValue: lipgloss.NewStyle().
			Foreground(Colors.Text),

		Progress: lipgloss.NewStyle().
			Foreground(Colors.Accent),

		ItemNormal: lipgloss.NewStyle().
			Foreground(Colors.Text),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Focus),

		ItemNumber: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(4),

		ItemNote: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.Focus).
			Bold(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending).
			Width(7),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done).
			Bold(true).
			Width(7),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Notice),

		Unsaved: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusStyle returns the badge style for a status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status.IsDone() {
		return s.StatusDone
	}
	return s.StatusPending
}
