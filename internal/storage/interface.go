package storage

import (
	"context"

	"github.com/pulsedash/pulsedash-go/internal/model"
)

// Storage defines the interface for the analytics entry store.
//
// The collection is an ordered, append-only sequence: entries are never
// updated or removed once appended. ListEntries after a returned AppendEntry
// observes the appended entry. Concurrent appends against the same backing
// resource are last-writer-wins; the store makes no attempt to merge them.
type Storage interface {
	// ListEntries returns every entry currently held, in insertion order.
	// A missing or unreadable backing resource yields an empty collection,
	// not an error.
	ListEntries(ctx context.Context) ([]model.Entry, error)

	// AppendEntry adds one entry to the end of the collection and persists
	// the full updated collection
	AppendEntry(ctx context.Context, entry model.Entry) error
}
