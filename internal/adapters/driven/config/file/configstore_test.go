package file

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("data_dir", "/tmp/corpus"))
	require.NoError(t, store.Set(driven.ConfigKeyCreateOnBookmark, false))

	assert.Equal(t, "/tmp/corpus", store.GetString("data_dir"))

	val, ok := store.Get(driven.ConfigKeyCreateOnBookmark)
	require.True(t, ok)
	assert.Equal(t, false, val)
	assert.False(t, store.GetBool(driven.ConfigKeyCreateOnBookmark))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("data_dir", "/var/rfcdex"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/rfcdex", reopened.GetString("data_dir"))
}

func TestSyncState_RoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	state := NewSyncState(store)
	ctx := context.Background()

	last, err := state.LastUpdated(ctx)
	require.NoError(t, err)
	assert.True(t, last.IsZero(), "absent state means never updated")

	now := time.Date(2025, 8, 24, 9, 30, 0, 0, time.UTC)
	require.NoError(t, state.SetLastUpdated(ctx, now))

	last, err = state.LastUpdated(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(last))
}

func TestSyncState_CorruptTimestampForcesRefresh(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(driven.ConfigKeyLastUpdate, "not-a-time"))

	state := NewSyncState(store)
	last, err := state.LastUpdated(context.Background())
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}
