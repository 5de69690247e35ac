package spacedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workiva/spaced-list/position"
)

// threeNodes builds a list with nodes at positions 0, 3, 10.
func threeNodes(t *testing.T) *SpacedList[position.Int] {
	t.Helper()
	sl := New[position.Int]()
	sl.AppendNode(3)
	sl.AppendNode(7)
	require.Equal(t, position.Int(10), sl.Length())
	return sl
}

func TestBefore(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.Before(8)
	require.True(t, ok)
	assert.Equal(t, position.Int(3), res.Position)
	assert.Equal(t, 1, res.Index)

	_, ok = sl.Before(0)
	assert.False(t, ok, "no node exists strictly before the anchor")
}

func TestAtOrBefore(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.AtOrBefore(3)
	require.True(t, ok)
	assert.Equal(t, position.Int(3), res.Position)
	assert.Equal(t, 1, res.Index)

	res, ok = sl.AtOrBefore(0)
	require.True(t, ok)
	assert.Equal(t, position.Int(0), res.Position)
	assert.Equal(t, 0, res.Index)
}

func TestAt(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.At(3)
	require.True(t, ok)
	assert.Equal(t, 1, res.Index)

	_, ok = sl.At(4)
	assert.False(t, ok)
}

func TestAtOrAfter(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.AtOrAfter(5)
	require.True(t, ok)
	assert.Equal(t, position.Int(10), res.Position)
	assert.Equal(t, 2, res.Index)

	res, ok = sl.AtOrAfter(3)
	require.True(t, ok)
	assert.Equal(t, position.Int(3), res.Position)
	assert.Equal(t, 1, res.Index)
}

func TestAfter(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.After(3)
	require.True(t, ok)
	assert.Equal(t, position.Int(10), res.Position)
	assert.Equal(t, 2, res.Index)

	_, ok = sl.After(10)
	assert.False(t, ok, "no node exists after the last node")
}

func TestNegativeTargetsAreSatisfiedByTheAnchor(t *testing.T) {
	sl := threeNodes(t)

	res, ok := sl.AtOrAfter(-5)
	require.True(t, ok)
	assert.Equal(t, 0, res.Index)

	res, ok = sl.After(-5)
	require.True(t, ok)
	assert.Equal(t, 0, res.Index)
}
