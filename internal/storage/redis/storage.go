package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The collection is stored as a single JSON document and replaced wholesale
// on append, mirroring the file backend's layout.
type Storage struct {
	client *redis.Client
	logger *slog.Logger

	// Serializes read-modify-write appends within this process
	mu sync.Mutex
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, logger), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		logger: logger.With(slog.String("component", "redis-storage")),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// ListEntries returns the full collection.
// A missing key or corrupt document is treated as an empty collection;
// connection failures also degrade to empty so readers never fail, but are
// logged since they hide real data.
func (s *Storage) ListEntries(ctx context.Context) ([]model.Entry, error) {
	return s.readAll(ctx), nil
}

// AppendEntry appends one entry and replaces the stored document
func (s *Storage) AppendEntry(ctx context.Context, entry model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.readAll(ctx), entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWrite, err)
	}
	if err := s.client.Set(ctx, entriesKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWrite, err)
	}
	return nil
}

func (s *Storage) readAll(ctx context.Context) []model.Entry {
	data, err := s.client.Get(ctx, entriesKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("analytics document unreadable, treating as empty",
				slog.String("error", err.Error()))
		}
		return []model.Entry{}
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("analytics document corrupt, treating as empty",
			slog.String("error", err.Error()))
		return []model.Entry{}
	}
	if entries == nil {
		return []model.Entry{}
	}
	return entries
}
