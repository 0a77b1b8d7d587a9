package domain

import "strings"

// Status represents the inspection state of a checklist item.
type Status string

const (
	StatusPending Status = "PENDING" // Not inspected yet
	StatusDone    Status = "DONE"    // Inspected and cleaned

	// Localized labels written by earlier releases of the page
	statusPendingLegacy Status = "BELUM"
	statusDoneLegacy    Status = "SUDAH"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusDone,
	}
}

// ParseStatus parses user input into a Status.
// Accepts canonical and localized tokens in any case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StatusPending), string(statusPendingLegacy):
		return StatusPending, nil
	case string(StatusDone), string(statusDoneLegacy):
		return StatusDone, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Normalize maps legacy localized values to their canonical status.
// Unknown values are returned unchanged.
func (s Status) Normalize() Status {
	switch s {
	case statusPendingLegacy:
		return StatusPending
	case statusDoneLegacy:
		return StatusDone
	default:
		return s
	}
}

// IsValid returns true if the status is a known canonical value.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

// IsDone returns true if the item has been inspected.
func (s Status) IsDone() bool {
	return s.Normalize() == StatusDone
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s.IsDone() {
		return StatusPending
	}
	return StatusDone
}

// Localized returns the label used on the printed form and in CSV exports.
func (s Status) Localized() string {
	switch s.Normalize() {
	case StatusPending:
		return string(statusPendingLegacy)
	case StatusDone:
		return string(statusDoneLegacy)
	default:
		return string(s)
	}
}

// Label returns the status token for the given label style.
func (s Status) Label(style LabelStyle) string {
	if style == LabelStyleCanonical {
		return string(s.Normalize())
	}
	return s.Localized()
}

// LabelStyle selects between canonical and localized report labels.
type LabelStyle string

const (
	LabelStyleLocalized LabelStyle = "localized" // BELUM / SUDAH, Indonesian headers
	LabelStyleCanonical LabelStyle = "canonical" // PENDING / DONE, English headers
)

// IsValid returns true if the label style is known.
func (l LabelStyle) IsValid() bool {
	return l == LabelStyleLocalized || l == LabelStyleCanonical
}
