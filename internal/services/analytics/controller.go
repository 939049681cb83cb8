// Package analytics orchestrates the snapshot log: reads run the query
// pipeline and summary aggregation over one store snapshot, writes construct
// an entry, append it, and notify observers.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulsedash/pulsedash-go/internal/dependencies/clock"
	"github.com/pulsedash/pulsedash-go/internal/dependencies/random"
	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/services/query"
	"github.com/pulsedash/pulsedash-go/internal/services/summary"
	"github.com/pulsedash/pulsedash-go/internal/storage"
)

const (
	idSuffixLength = 7

	// ISO-8601 with millisecond precision, as the dashboard stores it
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Notifier broadcasts a zero-payload refresh signal after a successful write
type Notifier interface {
	BroadcastRefresh()
}

// Controller coordinates the entry store, the read pipeline, and the
// change notifier
type Controller struct {
	store    storage.Storage
	clock    clock.Clock
	random   random.Random
	notifier Notifier
	logger   *slog.Logger
}

// NewController creates a new analytics controller
func NewController(store storage.Storage, clk clock.Clock, rnd random.Random, notifier Notifier, logger *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		clock:    clk,
		random:   rnd,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "analytics")),
	}
}

// List returns one filtered/sorted/paginated page of entries together with
// the population-wide summary. Both are computed from the same store
// snapshot; the summary always covers the full collection regardless of the
// query parameters.
func (c *Controller) List(ctx context.Context, raw model.ListQuery) (*model.ListResult, error) {
	entries, err := c.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	page := query.Run(entries, raw)

	return &model.ListResult{
		Items:      page.Items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		Limit:      page.Limit,
		Summary:    summary.Compute(entries),
	}, nil
}

// Summary returns the population-wide summary alone
func (c *Controller) Summary(ctx context.Context) (model.Summary, error) {
	entries, err := c.store.ListEntries(ctx)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read entries: %w", err)
	}
	return summary.Compute(entries), nil
}

// Create constructs one immutable entry from validated input, appends it to
// the collection, and broadcasts a refresh. No broadcast happens if the
// append fails.
func (c *Controller) Create(ctx context.Context, input model.CreateEntryInput) (*model.Entry, error) {
	now := c.clock.Now()
	createdAt := now.Format(timestampLayout)

	entry := model.Entry{
		ID:                 fmt.Sprintf("a-%d-%s", now.UnixMilli(), c.random.Suffix(idSuffixLength)),
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		TotalPlayers:       input.TotalPlayers,
		ActivePlayers:      input.ActivePlayers,
		AvgPlaytimeMinutes: input.AvgPlaytimeMinutes,
		AvgScore:           input.AvgScore,
		ByStatus:           effectiveByStatus(input.ByStatus),
		RegistrationsByDay: input.RegistrationsByDay,
	}
	if entry.RegistrationsByDay == nil {
		entry.RegistrationsByDay = []model.RegistrationDay{}
	}

	if err := c.store.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	c.logger.Info("analytics entry created",
		slog.String("id", entry.ID),
		slog.Float64("total_players", entry.TotalPlayers))

	c.notifier.BroadcastRefresh()

	return &entry, nil
}

// effectiveByStatus applies the creation-time default rule: a missing or
// all-zero breakdown becomes {active: 1}, anything else is kept verbatim
func effectiveByStatus(supplied *model.ByStatus) model.ByStatus {
	if supplied == nil || supplied.IsZero() {
		return model.DefaultByStatus()
	}
	return *supplied
}
