// Package domain contains core business entities and interfaces.
package domain

import "fmt"

// Item is a single inspection task on the checklist.
// Fields are ordered to minimize memory padding.
type Item struct {
	Label  string `json:"label"`  // Task description (fixed at seeding time)
	Status Status `json:"status"` // PENDING or DONE
	Note   string `json:"note"`   // Free-form inspector note
	ID     int    `json:"id"`     // Stable identity, 1-based template position
}

// HasNote returns true if the item carries a non-empty note.
func (i Item) HasNote() bool {
	return i.Note != ""
}

// Checklist is the ordered collection of inspection items.
// A Checklist is a value: mutations return a new Checklist and never
// touch the receiver's items.
type Checklist struct {
	items []Item
}

// NewChecklist seeds a fresh checklist from the template.
// Every item starts PENDING with an empty note; ids are 1..len(template).
func NewChecklist(template Template) Checklist {
	items := make([]Item, len(template))
	for i, label := range template {
		items[i] = Item{
			ID:     i + 1,
			Label:  label,
			Status: StatusPending,
		}
	}
	return Checklist{items: items}
}

// NewChecklistFromItems builds a checklist from rehydrated items.
// Ids must be positive and unique; contiguity is not required.
// Legacy localized statuses are normalized.
func NewChecklistFromItems(items []Item) (Checklist, error) {
	seen := make(map[int]struct{}, len(items))
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID <= 0 {
			return Checklist{}, fmt.Errorf("item %d: %w", it.ID, ErrInvalidItemID)
		}
		if _, ok := seen[it.ID]; ok {
			return Checklist{}, fmt.Errorf("item %d: %w", it.ID, ErrDuplicateItemID)
		}
		seen[it.ID] = struct{}{}

		it.Status = it.Status.Normalize()
		if !it.Status.IsValid() {
			return Checklist{}, fmt.Errorf("item %d: %w", it.ID, ErrInvalidStatus)
		}
		out[i] = it
	}
	return Checklist{items: out}, nil
}

// Items returns a copy of the items in checklist order.
func (c Checklist) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c Checklist) Len() int {
	return len(c.items)
}

// IsEmpty returns true if the checklist has no items.
func (c Checklist) IsEmpty() bool {
	return len(c.items) == 0
}

// Find returns the item with the given id.
func (c Checklist) Find(id int) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// SetStatus returns a checklist where the item with id has the given status.
// Unknown ids leave the checklist unchanged.
func (c Checklist) SetStatus(id int, status Status) Checklist {
	return c.update(id, func(it *Item) {
		it.Status = status
	})
}

// SetNote returns a checklist where the item with id has the given note.
// Unknown ids leave the checklist unchanged.
func (c Checklist) SetNote(id int, note string) Checklist {
	return c.update(id, func(it *Item) {
		it.Note = note
	})
}

// ResetAll discards the current items and reseeds from the template.
func (c Checklist) ResetAll(template Template) Checklist {
	return NewChecklist(template)
}

// Progress returns the number of done items and the total.
func (c Checklist) Progress() (done, total int) {
	for _, it := range c.items {
		if it.Status.IsDone() {
			done++
		}
	}
	return done, len(c.items)
}

// Equal reports whether both checklists hold identical items in the same order.
func (c Checklist) Equal(other Checklist) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if c.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

func (c Checklist) update(id int, fn func(*Item)) Checklist {
	idx := -1
	for i := range c.items {
		if c.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}

	items := c.Items()
	fn(&items[idx])
	return Checklist{items: items}
}
