package domain

import "time"

// SessionMetadata holds the context fields that accompany a checklist.
// Fields are ordered to minimize memory padding.
type SessionMetadata struct {
	LastSavedAt *time.Time `json:"-"`           // Last confirmed checklist write (nil = none this session)
	DateLabel   string     `json:"dateLabel"`   // Free-form "day & date" label
	Location    string     `json:"location"`    // Inspected facility
	Coordinator string     `json:"coordinator"` // Responsible coordinator
}

// ResetScope selects which metadata fields a full reset clears.
// Location and coordinator are always cleared.
type ResetScope struct {
	ClearDateLabel bool
}

// WithDateLabel returns a copy with DateLabel replaced.
func (m SessionMetadata) WithDateLabel(v string) SessionMetadata {
	m.DateLabel = v
	return m
}

// WithLocation returns a copy with Location replaced.
func (m SessionMetadata) WithLocation(v string) SessionMetadata {
	m.Location = v
	return m
}

// WithCoordinator returns a copy with Coordinator replaced.
func (m SessionMetadata) WithCoordinator(v string) SessionMetadata {
	m.Coordinator = v
	return m
}

// WithSavedAt returns a copy recording a successful write at t.
func (m SessionMetadata) WithSavedAt(t time.Time) SessionMetadata {
	m.LastSavedAt = &t
	return m
}

// Reset clears the fields covered by scope. LastSavedAt is kept.
func (m SessionMetadata) Reset(scope ResetScope) SessionMetadata {
	m.Location = ""
	m.Coordinator = ""
	if scope.ClearDateLabel {
		m.DateLabel = ""
	}
	return m
}

// IsZero returns true if no descriptive field is set.
func (m SessionMetadata) IsZero() bool {
	return m.DateLabel == "" && m.Location == "" && m.Coordinator == ""
}
