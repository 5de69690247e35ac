package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y int }

func TestAllocReturnsDistinctPointers(t *testing.T) {
	a := New[point](2)

	p1 := a.Alloc()
	p2 := a.Alloc()
	p3 := a.Alloc() // forces a new chunk

	assert.NotSame(t, p1, p2)
	assert.NotSame(t, p2, p3)
	assert.Equal(t, 3, a.Len())

	p1.x = 7
	assert.Equal(t, 7, p1.x)
	assert.Equal(t, 0, p2.x)
}

func TestNewPanicsOnNonPositiveChunkSize(t *testing.T) {
	assert.Panics(t, func() {
		New[point](0)
	})
}
