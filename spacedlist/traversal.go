package spacedlist

import (
	"github.com/Workiva/spaced-list/position"
	"github.com/Workiva/spaced-list/spacedlist/internal/linkindex"
)

// TraversalResult identifies a single node reached by a query: the list it
// belongs to (itself, for a shallow query; the innermost sublist reached,
// for a deep one), its position local to that list, and its node index
// within that list.
type TraversalResult[S position.Spacing[S]] struct {
	List     *SpacedList[S]
	Position S
	Index    int
}

// descend walks from the highest in-use link degree down to zero, greedily
// taking any link whose endpoint still satisfies accept(candidatePosition,
// target). It returns the furthest node index reached this way and its
// position. A candidate degree is only taken when the node it would land
// on actually exists (index < sl.size); unwritten, not-yet-reachable link
// slots are otherwise indistinguishable from real zero-length spans.
func descend[S position.Spacing[S]](sl *SpacedList[S], target S, accept func(candidate, target S) bool) (index int, pos S) {
	depth := sl.depth()
	for d := depth - 1; d >= 0; d-- {
		candidateIndex := index | (1 << uint(d))
		if candidateIndex >= sl.size {
			continue
		}
		link := sl.linkLengths[linkindex.Index(index, d)]
		candidate := pos.Add(link)
		if accept(candidate, target) {
			index = candidateIndex
			pos = candidate
		}
	}
	return index, pos
}

// stepNext advances from node index (at position pos) to the next real
// node, if one exists.
func (sl *SpacedList[S]) stepNext(index int, pos S) (TraversalResult[S], bool) {
	if index+1 >= sl.size {
		return TraversalResult[S]{}, false
	}
	next := pos.Add(sl.linkLengths[linkindex.Index(index, 0)])
	return TraversalResult[S]{List: sl, Position: next, Index: index + 1}, true
}

// Before finds the nearest node with a position strictly before target.
func (sl *SpacedList[S]) Before(target S) (TraversalResult[S], bool) {
	index, pos := descend(sl, target, func(c, t S) bool { return c.Compare(t) < 0 })
	if pos.Compare(target) >= 0 {
		return TraversalResult[S]{}, false
	}
	return TraversalResult[S]{List: sl, Position: pos, Index: index}, true
}

// AtOrBefore finds the nearest node with a position at or before target:
// the floor of target in this list.
func (sl *SpacedList[S]) AtOrBefore(target S) (TraversalResult[S], bool) {
	index, pos := descend(sl, target, func(c, t S) bool { return c.Compare(t) <= 0 })
	if pos.Compare(target) > 0 {
		return TraversalResult[S]{}, false
	}
	return TraversalResult[S]{List: sl, Position: pos, Index: index}, true
}

// At finds the node at exactly target, if one exists.
func (sl *SpacedList[S]) At(target S) (TraversalResult[S], bool) {
	floor, ok := sl.AtOrBefore(target)
	if !ok || floor.Position.Compare(target) != 0 {
		return TraversalResult[S]{}, false
	}
	return floor, true
}

// AtOrAfter finds the nearest node with a position at or after target: the
// ceiling of target in this list. A negative target is satisfied by the
// anchor itself.
func (sl *SpacedList[S]) AtOrAfter(target S) (TraversalResult[S], bool) {
	floor, ok := sl.AtOrBefore(target)
	if !ok {
		var zero S
		return TraversalResult[S]{List: sl, Position: zero, Index: 0}, true
	}
	if floor.Position.Compare(target) == 0 {
		return floor, true
	}
	return sl.stepNext(floor.Index, floor.Position)
}

// After finds the nearest node with a position strictly after target. A
// negative target is satisfied by the anchor itself.
func (sl *SpacedList[S]) After(target S) (TraversalResult[S], bool) {
	floor, ok := sl.AtOrBefore(target)
	if !ok {
		var zero S
		return TraversalResult[S]{List: sl, Position: zero, Index: 0}, true
	}
	return sl.stepNext(floor.Index, floor.Position)
}
