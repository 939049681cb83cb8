package file_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/storage/file"
	"github.com/pulsedash/pulsedash-go/internal/testutil"
)

func newTestStorage(t *testing.T) (*file.Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.json")
	store, err := file.New(path, testutil.NopLogger())
	require.NoError(t, err)
	return store, path
}

func TestNew_CreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "analytics.json")

	_, err := file.New(path, testutil.NopLogger())
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListEntries_MissingFileIsEmpty(t *testing.T) {
	store, _ := newTestStorage(t)

	entries, err := store.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestListEntries_CorruptFileIsEmpty(t *testing.T) {
	store, path := newTestStorage(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	entries, err := store.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendEntry_RoundTrip(t *testing.T) {
	store, _ := newTestStorage(t)
	ctx := context.Background()

	entry := model.Entry{
		ID:                 "a-1741953045123-abc1234",
		CreatedAt:          "2025-03-14T12:30:45.123Z",
		UpdatedAt:          "2025-03-14T12:30:45.123Z",
		TotalPlayers:       100,
		ActivePlayers:      40,
		AvgPlaytimeMinutes: 55.5,
		AvgScore:           1234,
		ByStatus:           model.ByStatus{Active: 2, Banned: 1},
		RegistrationsByDay: []model.RegistrationDay{{Date: "2025-03-14", Count: 1}},
	}
	require.NoError(t, store.AppendEntry(ctx, entry))

	entries, err := store.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestAppendEntry_AccumulatesAcrossInstances(t *testing.T) {
	store, path := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "first"}))

	// A fresh instance on the same path sees the persisted collection
	reopened, err := file.New(path, testutil.NopLogger())
	require.NoError(t, err)
	require.NoError(t, reopened.AppendEntry(ctx, model.Entry{ID: "second"}))

	entries, err := reopened.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
}

func TestAppendEntry_RecoversCorruptFile(t *testing.T) {
	store, path := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "fresh"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted []model.Entry
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "fresh", persisted[0].ID)
}
