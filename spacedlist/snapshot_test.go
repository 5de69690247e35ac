package spacedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workiva/spaced-list/position"
)

func TestSnapshotRoundTrip(t *testing.T) {
	sl := New[position.Int64]()
	sl.AppendNode(3)
	sl.AppendNode(7)
	sl.AppendNode(2)

	snap := SnapshotOf(sl)
	assert.Equal(t, sl.Size(), snap.Size)
	assert.Equal(t, int64(sl.Length()), snap.Length)

	restored := Restore(snap)
	assert.Equal(t, sl.Size(), restored.Size())
	assert.Equal(t, sl.Length(), restored.Length())
	assert.Equal(t, sl.LinkLengths(), restored.LinkLengths())
}

func TestSnapshotMsgpRoundTrip(t *testing.T) {
	sl := New[position.Int64]()
	sl.AppendNode(5)
	sl.AppendNode(1)

	snap := SnapshotOf(sl)

	encoded, err := snap.MarshalMsg(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)

	var decoded Int64Snapshot
	leftover, err := decoded.UnmarshalMsg(encoded)
	require.NoError(t, err)
	assert.Empty(t, leftover)
	assert.Equal(t, snap, decoded)
}
