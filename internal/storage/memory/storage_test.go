package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsedash/pulsedash-go/internal/model"
	"github.com/pulsedash/pulsedash-go/internal/storage/memory"
)

func TestListEntries_EmptyByDefault(t *testing.T) {
	store := memory.New()

	entries, err := store.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendEntry_PreservesInsertionOrder(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "first"}))
	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "second"}))
	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "third"}))

	entries, err := store.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
	assert.Equal(t, "third", entries[2].ID)
}

func TestListEntries_ReturnsCopy(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.AppendEntry(ctx, model.Entry{ID: "original"}))

	entries, err := store.ListEntries(ctx)
	require.NoError(t, err)
	entries[0].ID = "mutated"

	again, err := store.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].ID)
}
