// Package tui provides the interactive checklist screen for toilet-monitor.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal   Mode = iota // Checklist navigation
	ModeEditNote             // Note input for the selected item
	ModeEditMeta             // Date, location and coordinator inputs
	ModeConfirm              // Confirmation dialog
	ModePreview              // Print preview
	ModeHelp                 // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditNote:
		return "edit_note"
	case ModeEditMeta:
		return "edit_meta"
	case ModeConfirm:
		return "confirm"
	case ModePreview:
		return "preview"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeEditNote, ModeEditMeta:
		return true
	case ModeNormal, ModeConfirm, ModePreview, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone  ConfirmAction = iota
	ConfirmReset               // Reset every item and clear metadata
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmReset:
		return "reset"
	}
	return ""
}

// metaField indexes the metadata inputs.
type metaField int

const (
	metaDate metaField = iota
	metaLocation
	metaCoordinator
	metaFieldCount
)
