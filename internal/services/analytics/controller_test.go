package analytics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash-go/internal/dependencies/mocks"
	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/services/analytics"
	"github.com/pulsedash/pulsedash-go/internal/storage/memory"
	"github.com/pulsedash/pulsedash-go/internal/testutil"
)

// countingNotifier records refresh broadcasts
type countingNotifier struct {
	refreshes int
}

func (n *countingNotifier) BroadcastRefresh() {
	n.refreshes++
}

// failingStore fails every operation
type failingStore struct{}

func (failingStore) ListEntries(ctx context.Context) ([]model.Entry, error) {
	return nil, errors.New("backend unavailable")
}

func (failingStore) AppendEntry(ctx context.Context, entry model.Entry) error {
	return fmt.Errorf("%w: backend unavailable", model.ErrStoreWrite)
}

func newTestController(t *testing.T) (*analytics.Controller, *memory.Storage, *mocks.MockClock, *mocks.MockRandom, *countingNotifier) {
	t.Helper()
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 3, 15, 12, 30, 45, 123_000_000, time.UTC))
	rnd := mocks.NewMockRandom()
	notifier := &countingNotifier{}
	controller := analytics.NewController(store, clk, rnd, notifier, testutil.NopLogger())
	return controller, store, clk, rnd, notifier
}

func TestCreate_AssignsIdentityAndTimestamps(t *testing.T) {
	controller, _, clk, rnd, _ := newTestController(t)
	rnd.QueueSuffix("abc1234")

	entry, err := controller.Create(context.Background(), model.CreateEntryInput{
		TotalPlayers:  100,
		ActivePlayers: 40,
	})
	require.NoError(t, err)

	expectedID := fmt.Sprintf("a-%d-abc1234", clk.CurrentTime.UnixMilli())
	assert.Equal(t, expectedID, entry.ID)
	assert.Equal(t, "2025-03-15T12:30:45.123Z", entry.CreatedAt)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
	assert.Equal(t, float64(100), entry.TotalPlayers)
	assert.NotNil(t, entry.RegistrationsByDay)
	assert.Empty(t, entry.RegistrationsByDay)
}

func TestCreate_ByStatusDefaultRule(t *testing.T) {
	tests := []struct {
		name     string
		supplied *model.ByStatus
		expected model.ByStatus
	}{
		{"missing breakdown defaults to one active", nil, model.ByStatus{Active: 1}},
		{"all-zero breakdown defaults to one active", &model.ByStatus{}, model.ByStatus{Active: 1}},
		{"non-zero breakdown kept verbatim", &model.ByStatus{Banned: 7}, model.ByStatus{Banned: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, _, _, rnd, _ := newTestController(t)
			rnd.QueueSuffix("zzzzzzz")

			entry, err := controller.Create(context.Background(), model.CreateEntryInput{
				TotalPlayers:  10,
				ActivePlayers: 5,
				ByStatus:      tt.supplied,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entry.ByStatus)
		})
	}
}

func TestCreate_AppendsAndBroadcasts(t *testing.T) {
	controller, store, _, rnd, notifier := newTestController(t)
	rnd.QueueSuffix("aaaaaaa", "bbbbbbb")

	_, err := controller.Create(context.Background(), model.CreateEntryInput{TotalPlayers: 1, ActivePlayers: 1})
	require.NoError(t, err)
	_, err = controller.Create(context.Background(), model.CreateEntryInput{TotalPlayers: 2, ActivePlayers: 1})
	require.NoError(t, err)

	entries, err := store.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 2, notifier.refreshes)
}

func TestCreate_NoBroadcastOnStoreFailure(t *testing.T) {
	notifier := &countingNotifier{}
	clk := mocks.NewMockClock(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	controller := analytics.NewController(failingStore{}, clk, rnd, notifier, testutil.NopLogger())

	_, err := controller.Create(context.Background(), model.CreateEntryInput{TotalPlayers: 1, ActivePlayers: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStoreWrite)
	assert.Equal(t, 0, notifier.refreshes)
}

func TestList_PageAndSummaryFromSameSnapshot(t *testing.T) {
	controller, _, clk, rnd, _ := newTestController(t)
	for i := 0; i < 15; i++ {
		rnd.QueueSuffix(fmt.Sprintf("s%06d", i))
		_, err := controller.Create(context.Background(), model.CreateEntryInput{
			TotalPlayers:  10,
			ActivePlayers: 5,
		})
		require.NoError(t, err)
		clk.Advance(time.Minute)
	}

	result, err := controller.List(context.Background(), model.ListQuery{Limit: "10"})
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
	assert.Equal(t, 15, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	// Summary covers the whole population, not the page
	assert.Equal(t, float64(150), result.Summary.TotalPlayers)
}

func TestList_SummaryUnaffectedByFilters(t *testing.T) {
	controller, _, _, rnd, _ := newTestController(t)
	rnd.QueueSuffix("aaaaaaa", "bbbbbbb")

	_, err := controller.Create(context.Background(), model.CreateEntryInput{
		TotalPlayers: 100, ActivePlayers: 50,
		ByStatus: &model.ByStatus{Active: 1},
	})
	require.NoError(t, err)
	_, err = controller.Create(context.Background(), model.CreateEntryInput{
		TotalPlayers: 200, ActivePlayers: 60,
		ByStatus: &model.ByStatus{Banned: 1},
	})
	require.NoError(t, err)

	result, err := controller.List(context.Background(), model.ListQuery{Status: "banned"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, float64(300), result.Summary.TotalPlayers)
}

func TestList_StoreReadFailure(t *testing.T) {
	controller := analytics.NewController(failingStore{}, mocks.NewMockClock(time.Now()), mocks.NewMockRandom(), &countingNotifier{}, testutil.NopLogger())

	_, err := controller.List(context.Background(), model.ListQuery{})
	require.Error(t, err)
}

func TestSummary_EmptyCollection(t *testing.T) {
	controller, _, _, _, _ := newTestController(t)

	s, err := controller.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(0), s.TotalPlayers)
	assert.NotNil(t, s.RegistrationsByDay)
	assert.Empty(t, s.RegistrationsByDay)
}
