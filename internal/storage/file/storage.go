package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/storage"
)

// Storage is a JSON-file-backed implementation of the storage interface.
//
// The whole collection lives in one JSON array on disk and is rewritten
// wholesale on every append, matching the persisted-state layout the
// dashboard and seed tooling expect.
type Storage struct {
	path   string
	logger *slog.Logger

	// Serializes read-modify-write appends within this process. Writers in
	// other processes are not coordinated with.
	mu sync.Mutex
}

// New creates a file storage instance writing to the given path.
// The parent directory is created if it does not exist.
func New(path string, logger *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Storage{
		path:   path,
		logger: logger.With(slog.String("component", "file-storage")),
	}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// ListEntries reads the full collection from disk.
// A missing or unparseable file is treated as an empty collection: the read
// path trades correctness signaling for availability, and the file is
// recreated on the next append.
func (s *Storage) ListEntries(ctx context.Context) ([]model.Entry, error) {
	return s.readAll(), nil
}

// AppendEntry appends one entry and rewrites the whole file
func (s *Storage) AppendEntry(ctx context.Context, entry model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.readAll(), entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWrite, err)
	}
	return nil
}

func (s *Storage) readAll() []model.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("analytics file unreadable, treating as empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return []model.Entry{}
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("analytics file corrupt, treating as empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return []model.Entry{}
	}
	if entries == nil {
		return []model.Entry{}
	}
	return entries
}
