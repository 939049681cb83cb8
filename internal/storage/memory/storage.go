package memory

import (
	"context"
	"sync"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	entries []model.Entry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// ListEntries returns a copy of the collection in insertion order
func (s *Storage) ListEntries(ctx context.Context) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// AppendEntry adds one entry to the end of the collection
func (s *Storage) AppendEntry(ctx context.Context, entry model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}
