package spacedlist

import (
	"fmt"

	"github.com/Workiva/spaced-list/position"
	"github.com/Workiva/spaced-list/spacedlist/internal/linkindex"
)

// Allocator constructs a fresh, empty *SpacedList[S]. It is the extension
// point sublistFor uses to materialize a gap's sublist on first insertion;
// the default (nil) allocator is simply New. An embedder that inserts into
// deeply nested gaps at a high rate can supply a pooled allocator (see
// internal/arena) to cut down on per-sublist heap churn.
type Allocator[S position.Spacing[S]] func() *SpacedList[S]

// SpacedList is the in-memory node block: size, accumulated length, the
// packed link-length array, and one optional sublist per gap. It stores no
// values, only the existence and relative spacing of nodes.
type SpacedList[S position.Spacing[S]] struct {
	size        int
	length      S
	linkLengths []S
	sublists    []*SpacedList[S]
	alloc       Allocator[S]
}

// New returns an empty spaced list: a single node (the anchor) at
// position zero.
func New[S position.Spacing[S]]() *SpacedList[S] {
	return &SpacedList[S]{size: 1}
}

// NewWithAllocator returns an empty spaced list that uses alloc to
// construct every sublist it lazily creates, and propagates alloc to those
// sublists in turn.
func NewWithAllocator[S position.Spacing[S]](alloc Allocator[S]) *SpacedList[S] {
	return &SpacedList[S]{size: 1, alloc: alloc}
}

// ResetEmpty reinitializes sl in place to a freshly constructed empty list,
// preserving its allocator. It exists so a pooled Allocator can recycle a
// *SpacedList[S] it owns without a fresh heap allocation.
func ResetEmpty[S position.Spacing[S]](sl *SpacedList[S]) *SpacedList[S] {
	alloc := sl.alloc
	*sl = SpacedList[S]{size: 1, alloc: alloc}
	return sl
}

// Size returns the number of nodes in this list, including the anchor.
// A freshly constructed list has size 1.
func (sl *SpacedList[S]) Size() int {
	return sl.size
}

// Length returns the position of the last node (zero for a single-node
// list).
func (sl *SpacedList[S]) Length() S {
	return sl.length
}

// IsEmpty reports whether this list holds only its anchor.
func (sl *SpacedList[S]) IsEmpty() bool {
	return sl.size == 1
}

// LinkLengths returns a copy of the packed link-length array, for
// debugging and rendering. Callers must not rely on its internal layout
// beyond what §4.1 of the design documents.
func (sl *SpacedList[S]) LinkLengths() []S {
	out := make([]S, len(sl.linkLengths))
	copy(out, sl.linkLengths)
	return out
}

// Depth returns the number of link degrees currently in use.
func (sl *SpacedList[S]) Depth() int {
	return sl.depth()
}

func (sl *SpacedList[S]) depth() int {
	return linkindex.Depth(len(sl.linkLengths))
}

// makeSpace grows the packed link-length array when size has crossed a
// capacity boundary. The previous top link (sl.length, not yet updated
// with the pending append's distance) is promoted to the new centre slot;
// the rest of the newly added space is zeroed.
func (sl *SpacedList[S]) makeSpace() {
	necessary := linkindex.NecessaryCapacity(sl.size)
	if len(sl.linkLengths) >= necessary {
		return
	}
	var zero S
	sl.linkLengths = append(sl.linkLengths, sl.length)
	pad := len(sl.linkLengths) - 1
	for i := 0; i < pad; i++ {
		sl.linkLengths = append(sl.linkLengths, zero)
	}
}

// AppendNode adds a new node at the end of the list, distance past the
// current last node. distance must be strictly positive; violating that is
// a caller bug and panics rather than returning an error.
func (sl *SpacedList[S]) AppendNode(distance S) {
	if !position.IsPositive(distance) {
		panic(fmt.Errorf("%w: got %v", ErrNegativeDistance, distance))
	}

	sl.size++
	sl.makeSpace()
	sl.length = sl.length.Add(distance)

	it := linkindex.NewCoverIterator(sl.size - 2)
	for i, depth := 0, sl.depth(); i < depth; i++ {
		idx := it.Next()
		sl.linkLengths[idx] = sl.linkLengths[idx].Add(distance)
	}

	sl.sublists = append(sl.sublists, nil)
}

// Insert places a new node at target, either by appending (when target is
// past the current length) or by recursing into the sublist of the gap
// that encloses it. target must be non-negative, and must not equal the
// list's current length (that position already exists as the anchor of
// whatever gap would host it); both are caller bugs and panic.
func (sl *SpacedList[S]) Insert(target S) {
	if position.IsNegative(target) {
		panic(fmt.Errorf("%w: got %v", ErrNegativeTarget, target))
	}

	switch target.Compare(sl.length) {
	case 0:
		panic(fmt.Errorf("%w: got %v", ErrPositionExists, target))
	case 1:
		sl.AppendNode(target.Sub(sl.length))
	default:
		floor, _ := sl.AtOrBefore(target) // always ok: 0 <= target < length
		child := sl.sublistFor(floor.Index)
		child.Insert(target.Sub(floor.Position))
	}
}

// Sublist returns the sublist hosted in gap gapIndex, if one exists and is
// non-empty. Both an absent slot and a present-but-empty sublist report
// (nil, false), per §4.7/I5; they are semantically equivalent.
func (sl *SpacedList[S]) Sublist(gapIndex int) (*SpacedList[S], bool) {
	if gapIndex < 0 || gapIndex >= len(sl.sublists) {
		return nil, false
	}
	child := sl.sublists[gapIndex]
	if child == nil || child.IsEmpty() {
		return nil, false
	}
	return child, true
}

// sublistFor returns the sublist hosted in gap gapIndex, lazily
// constructing one (via sl.alloc, or New if unset) if the slot is absent.
func (sl *SpacedList[S]) sublistFor(gapIndex int) *SpacedList[S] {
	child := sl.sublists[gapIndex]
	if child == nil {
		if sl.alloc != nil {
			child = sl.alloc()
		} else {
			child = New[S]()
		}
		child.alloc = sl.alloc
		sl.sublists[gapIndex] = child
	}
	return child
}
