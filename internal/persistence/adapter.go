// Package persistence bridges checklist state and a durable storage slot.
//
// Storage is best-effort: Load never fails (absent or unreadable data is
// reported as absent so the caller can seed defaults) and Save errors are
// returned for the caller to log without interrupting the session.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

const logCategory = "storage"

// Adapter loads and saves checklist state through a StorageProvider.
type Adapter struct {
	storage domain.StorageProvider
	logger  domain.Logger
}

// New creates a new Adapter.
func New(storage domain.StorageProvider, logger domain.Logger) *Adapter {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Adapter{
		storage: storage,
		logger:  logger,
	}
}

// itemRecord is the stored shape of one checklist item.
// Pointers distinguish missing keys from zero values.
type itemRecord struct {
	ID     *int    `json:"id"`
	Label  *string `json:"label"`
	Status *string `json:"status"`
	Note   *string `json:"note"`
}

// Load reads the checklist slot. ok is false when the slot is empty or its
// content is not a non-empty, well-formed item array.
func (a *Adapter) Load(ctx context.Context) (domain.Checklist, bool) {
	raw, ok, err := a.storage.Get(ctx, domain.ChecklistStorageKey)
	if err != nil {
		a.logger.Warn(logCategory, fmt.Sprintf("read checklist slot: %v", err))
		return domain.Checklist{}, false
	}
	if !ok {
		a.logger.Debug(logCategory, "checklist slot is empty")
		return domain.Checklist{}, false
	}

	c, err := DecodeChecklist([]byte(raw))
	if err != nil {
		a.logger.Warn(logCategory, fmt.Sprintf("discarding stored checklist: %v", err))
		return domain.Checklist{}, false
	}
	return c, true
}

// Save writes the checklist to its slot.
func (a *Adapter) Save(ctx context.Context, c domain.Checklist) error {
	data, err := EncodeChecklist(c)
	if err != nil {
		return err
	}
	if err := a.storage.Set(ctx, domain.ChecklistStorageKey, string(data)); err != nil {
		return fmt.Errorf("write checklist slot: %w", err)
	}
	return nil
}

// LoadMetadata reads the metadata slot. ok is false when it is empty or unreadable.
func (a *Adapter) LoadMetadata(ctx context.Context) (domain.SessionMetadata, bool) {
	raw, ok, err := a.storage.Get(ctx, domain.MetadataStorageKey)
	if err != nil {
		a.logger.Warn(logCategory, fmt.Sprintf("read metadata slot: %v", err))
		return domain.SessionMetadata{}, false
	}
	if !ok {
		return domain.SessionMetadata{}, false
	}

	var meta domain.SessionMetadata
	if err := decodeStrict([]byte(raw), &meta); err != nil {
		a.logger.Warn(logCategory, fmt.Sprintf("discarding stored metadata: %v", err))
		return domain.SessionMetadata{}, false
	}
	return meta, true
}

// SaveMetadata writes the descriptive metadata fields to their slot.
// LastSavedAt is session-only and never stored.
func (a *Adapter) SaveMetadata(ctx context.Context, meta domain.SessionMetadata) error {
	for _, v := range []string{meta.DateLabel, meta.Location, meta.Coordinator} {
		if !utf8.ValidString(v) {
			return errors.New("metadata text is not valid UTF-8")
		}
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := a.storage.Set(ctx, domain.MetadataStorageKey, string(data)); err != nil {
		return fmt.Errorf("write metadata slot: %w", err)
	}
	return nil
}

// storedItem fixes the key order of written records: id, label, status, note.
type storedItem struct {
	ID     int           `json:"id"`
	Label  string        `json:"label"`
	Status domain.Status `json:"status"`
	Note   string        `json:"note"`
}

// EncodeChecklist serializes the checklist as a JSON item array.
// Labels and notes must be valid UTF-8; JSON cannot carry other bytes
// without rewriting them, so such a checklist is rejected.
func EncodeChecklist(c domain.Checklist) ([]byte, error) {
	items := c.Items()
	records := make([]storedItem, len(items))
	for i, it := range items {
		if !utf8.ValidString(it.Label) || !utf8.ValidString(it.Note) {
			return nil, fmt.Errorf("item %d: text is not valid UTF-8", it.ID)
		}
		records[i] = storedItem{ID: it.ID, Label: it.Label, Status: it.Status, Note: it.Note}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal checklist: %w", err)
	}
	return data, nil
}

// DecodeChecklist parses a JSON item array produced by EncodeChecklist
// (or by the original page, which stored localized statuses).
// id, label and status are required; a missing note is treated as empty.
func DecodeChecklist(data []byte) (domain.Checklist, error) {
	var records []itemRecord
	if err := decodeStrict(data, &records); err != nil {
		return domain.Checklist{}, fmt.Errorf("parse checklist: %w", err)
	}
	if len(records) == 0 {
		return domain.Checklist{}, errors.New("stored checklist has no items")
	}

	items := make([]domain.Item, 0, len(records))
	for i, r := range records {
		if r.ID == nil || r.Label == nil || r.Status == nil {
			return domain.Checklist{}, fmt.Errorf("record %d: missing required field", i)
		}
		it := domain.Item{
			ID:     *r.ID,
			Label:  *r.Label,
			Status: domain.Status(*r.Status),
		}
		if r.Note != nil {
			it.Note = *r.Note
		}
		items = append(items, it)
	}

	return domain.NewChecklistFromItems(items)
}

// decodeStrict decodes exactly one JSON value, rejecting trailing content.
func decodeStrict(content []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected trailing content")
	}
	return nil
}
