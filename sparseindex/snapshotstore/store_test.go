package snapshotstore

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workiva/spaced-list/position"
	"github.com/Workiva/spaced-list/spacedlist"
)

func TestPutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	sl := spacedlist.New[position.Int64]()
	sl.AppendNode(5)
	sl.AppendNode(3)
	snap := spacedlist.SnapshotOf(sl)

	id := uuid.New()
	require.NoError(t, store.Put(id, snap))

	got, found, err := store.Get(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap, got)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, found, err := store.Get(uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	sl := spacedlist.New[position.Int64]()
	sl.AppendNode(1)
	snap := spacedlist.SnapshotOf(sl)

	id := uuid.New()
	require.NoError(t, store.Put(id, snap))
	require.NoError(t, store.Delete(id))

	_, found, err := store.Get(id)
	require.NoError(t, err)
	assert.False(t, found)
}
