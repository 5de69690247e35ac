package spacedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workiva/spaced-list/position"
)

func TestNewIsSingleAnchor(t *testing.T) {
	sl := New[position.Int]()
	assert.Equal(t, 1, sl.Size())
	assert.True(t, sl.IsEmpty())
	assert.Equal(t, position.Int(0), sl.Length())
}

func TestAppendNodeGrowsLengthAndSize(t *testing.T) {
	sl := New[position.Int]()

	sl.AppendNode(5)
	assert.Equal(t, 2, sl.Size())
	assert.Equal(t, position.Int(5), sl.Length())

	sl.AppendNode(3)
	assert.Equal(t, 3, sl.Size())
	assert.Equal(t, position.Int(8), sl.Length())

	sl.AppendNode(1)
	sl.AppendNode(7)
	sl.AppendNode(2)
	assert.Equal(t, 6, sl.Size())
	assert.Equal(t, position.Int(18), sl.Length())
	assert.False(t, sl.IsEmpty())
}

// TestAppendDistancesProducesExactLinkLengthArray is the §4.3 table vector:
// appending 1,2,3,2,2,3,1 to a fresh list must reproduce the documented
// packed array exactly, not just its size and length. A regression in
// makeSpace's growth step or the cover iterator's degree walk would still
// leave size and length correct while silently corrupting individual link
// slots, so the packed array itself is the thing worth pinning down.
func TestAppendDistancesProducesExactLinkLengthArray(t *testing.T) {
	sl := New[position.Int]()
	for _, d := range []position.Int{1, 2, 3, 2, 2, 3, 1} {
		sl.AppendNode(d)
	}

	assert.Equal(t, 8, sl.Size())
	assert.Equal(t, position.Int(14), sl.Length())
	assert.Equal(t, []position.Int{1, 3, 2, 8, 3, 5, 2, 14, 2, 5, 3, 6, 1, 1, 0}, sl.LinkLengths())
}

func TestAppendNodeRejectsNonPositiveDistance(t *testing.T) {
	sl := New[position.Int]()
	assert.PanicsWithError(t, "spacedlist: distance must be positive: got 0", func() {
		sl.AppendNode(0)
	})
	assert.PanicsWithError(t, "spacedlist: distance must be positive: got -4", func() {
		sl.AppendNode(-4)
	})
}

func TestLinkLengthsIsACopy(t *testing.T) {
	sl := New[position.Int]()
	sl.AppendNode(5)
	sl.AppendNode(3)

	got := sl.LinkLengths()
	got[0] = 999
	assert.NotEqual(t, got[0], sl.LinkLengths()[0])
}

func TestInsertAppendsPastLength(t *testing.T) {
	sl := New[position.Int]()
	sl.AppendNode(5)

	sl.Insert(8)
	assert.Equal(t, 3, sl.Size())
	assert.Equal(t, position.Int(8), sl.Length())
}

func TestInsertRejectsNegativeTarget(t *testing.T) {
	sl := New[position.Int]()
	assert.PanicsWithError(t, "spacedlist: target position must be non-negative: got -1", func() {
		sl.Insert(-1)
	})
}

func TestInsertRejectsExistingTopPosition(t *testing.T) {
	sl := New[position.Int]()
	sl.AppendNode(5)
	assert.PanicsWithError(t, "spacedlist: position already exists at the top of the list: got 5", func() {
		sl.Insert(5)
	})
}

func TestInsertBelowLengthCreatesSublist(t *testing.T) {
	sl := New[position.Int]()
	sl.AppendNode(10)

	sl.Insert(4)

	child, ok := sl.Sublist(0)
	require.True(t, ok)
	assert.Equal(t, 2, child.Size())
	assert.Equal(t, position.Int(4), child.Length())
}

func TestSublistAbsentAndEmptyAreEquivalent(t *testing.T) {
	sl := New[position.Int]()
	sl.AppendNode(10)

	_, ok := sl.Sublist(0)
	assert.False(t, ok)

	sl.sublistFor(0) // materializes an empty sublist in gap 0
	_, ok = sl.Sublist(0)
	assert.False(t, ok)
}

func TestResetEmptyPreservesAllocator(t *testing.T) {
	var built int
	alloc := Allocator[position.Int](func() *SpacedList[position.Int] {
		built++
		return NewWithAllocator[position.Int](nil)
	})

	sl := NewWithAllocator(alloc)
	sl.AppendNode(10)
	sl.Insert(4)
	require.Equal(t, 1, built)

	ResetEmpty(sl)
	assert.Equal(t, 1, sl.Size())
	assert.True(t, sl.IsEmpty())

	sl.AppendNode(10)
	sl.Insert(4)
	assert.Equal(t, 2, built)
}
