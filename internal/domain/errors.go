package domain

import "errors"

// Domain errors.
var (
	ErrInvalidStatus     = errors.New("invalid status (use done or pending)")
	ErrItemNotFound      = errors.New("checklist item not found")
	ErrInvalidItemID     = errors.New("checklist item id must be positive")
	ErrDuplicateItemID   = errors.New("duplicate checklist item id")
	ErrEmptyTemplate     = errors.New("checklist template has no items")
	ErrInvalidCSV        = errors.New("invalid checklist csv")
	ErrShareUnsupported  = errors.New("sharing is not supported on this device")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNotStarted        = errors.New("checklist session not started")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrInvalidLabelStyle = errors.New("invalid status label style (use localized or canonical)")
	ErrNoLogFile         = errors.New("no log file found")
)
