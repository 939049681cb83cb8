package factory

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pulsedash/pulsedash-go/internal/dependencies/clock"
	"github.com/pulsedash/pulsedash-go/internal/dependencies/random"
	"github.com/pulsedash/pulsedash-go/internal/services/analytics"
	"github.com/pulsedash/pulsedash-go/internal/sse"
	"github.com/pulsedash/pulsedash-go/internal/storage"
	filestorage "github.com/pulsedash/pulsedash-go/internal/storage/file"
	"github.com/pulsedash/pulsedash-go/internal/storage/memory"
	redisstorage "github.com/pulsedash/pulsedash-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// DefaultDataDir is where the file backend keeps its collection
const DefaultDataDir = "data"

const analyticsFileName = "analytics.json"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Change notification
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster

	// Domain
	AnalyticsController *analytics.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// DataDir is the directory for the file backend (optional)
	DataDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = DefaultDataDir
		}
		fileStore, err := filestorage.New(filepath.Join(dataDir, analyticsFileName), logger)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	hub := sse.NewHub(logger)
	go hub.Run()

	broadcaster := sse.NewBroadcaster(hub, logger)
	controller := analytics.NewController(store, clk, rnd, broadcaster, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		Hub:                 hub,
		Broadcaster:         broadcaster,
		AnalyticsController: controller,
	}
}
