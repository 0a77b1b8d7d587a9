// Package memstore provides an in-memory StorageProvider for ephemeral sessions.
package memstore

import (
	"context"
	"sync"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Store keeps slots in a map guarded by a RWMutex.
type Store struct {
	slots map[string]string
	mu    sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{slots: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

// Set writes value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

// Delete empties the slot.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

var _ domain.StorageProvider = (*Store)(nil)
