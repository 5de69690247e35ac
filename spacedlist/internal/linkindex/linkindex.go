/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package linkindex is the pure arithmetic underneath a spaced list's packed
// link-length array: the slot mapping, the capacity planner, and the
// cover-iterator that enumerates the slots touched when a gap grows.
//
// None of this package touches position values or list state; it is kept
// separate, the way slice/skip keeps node layout (node.go) apart from the
// list's mutation logic (skip.go), so the index arithmetic can be tested in
// isolation from Spacing.
package linkindex

import "math/bits"

// Index maps a (nodeIndex, degree) pair to its slot in the packed
// link-length array. A degree-d link starting at nodeIndex spans 2^d gaps;
// only indices aligned to a multiple of 2^d have a stored link at that
// degree, so callers are expected to pass an already-aligned nodeIndex
// (see CoverIterator, which maintains that alignment automatically).
func Index(nodeIndex, degree int) int {
	return (((nodeIndex>>uint(degree))<<1)+1)<<uint(degree) - 1
}

// NecessaryCapacity returns the minimum link-length array length required
// to hold every link for a list of the given size. Capacity grows in
// doubles-plus-one steps as the gap count crosses a power-of-two boundary.
func NecessaryCapacity(size int) int {
	switch {
	case size <= 1:
		return 0
	case size == 2:
		return 1
	default:
		return (1<<bits.Len(uint(size-2)))*2 - 1
	}
}

// Depth returns the number of link degrees in use by a packed array of the
// given length: trailing_zeros(len+1).
func Depth(linkLengthsLen int) int {
	return bits.TrailingZeros(uint(linkLengthsLen + 1))
}

// CoverIterator lazily enumerates the link slots that cover a given node,
// from degree 0 upward, without end. Callers take the first depth() items;
// degree d's slot always starts at nodeIndex with its low d bits cleared,
// so each successive degree widens the covered span by clearing one more
// bit.
type CoverIterator struct {
	nodeIndex int
	degree    int
}

// NewCoverIterator returns an iterator over the link slots covering
// nodeIndex, starting at degree 0.
func NewCoverIterator(nodeIndex int) *CoverIterator {
	return &CoverIterator{nodeIndex: nodeIndex}
}

// Next returns the next covering slot and advances the iterator to the
// next degree. It never terminates on its own.
func (it *CoverIterator) Next() int {
	result := Index(it.nodeIndex, it.degree)
	it.nodeIndex &^= 1 << uint(it.degree)
	it.degree++
	return result
}
