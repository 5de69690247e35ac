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

// Package render draws an ASCII debug view of a spacedlist.SpacedList: one
// row per link degree, a row of node positions, and a row marking which
// gaps host a sublist, recursing into those sublists, each one drawn below
// a line naming its letter and indented one level further. It exists purely for debugging and test failure output;
// nothing in spacedlist depends on it.
package render

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Workiva/spaced-list/position"
	"github.com/Workiva/spaced-list/spacedlist"
)

const (
	gapWidth  = 3 // columns of '-' between two adjacent node markers
	cacheSize = 32
)

// cache memoizes rendered output keyed by the list pointer, so repeatedly
// rendering an unchanged structure (common across an interactive debug
// session) avoids re-walking it. The key is the pointer alone, so a list
// mutated after its render was cached keeps returning the old string from
// RenderCached until Invalidate is called for it.
var cache, _ = lru.New(cacheSize)

// Invalidate drops any cached render of sl, forcing the next Render call to
// redraw it from scratch.
func Invalidate(key any) {
	cache.Remove(key)
}

// Render draws sl and, recursively, every sublist it hosts.
func Render[S position.Spacing[S]](sl *spacedlist.SpacedList[S]) string {
	return render(sl, 0, 'a')
}

// RenderCached behaves like Render but memoizes by the list's pointer
// identity. Pass the same *SpacedList[S] again, unmodified, to get the
// cached string without re-walking the tree.
func RenderCached[S position.Spacing[S]](sl *spacedlist.SpacedList[S]) string {
	if v, ok := cache.Get(sl); ok {
		return v.(string)
	}
	out := Render(sl)
	cache.Add(sl, out)
	return out
}

func render[S position.Spacing[S]](sl *spacedlist.SpacedList[S], indent int, startLetter rune) string {
	pad := strings.Repeat("  ", indent)
	var b strings.Builder

	depth := sl.Depth()
	for d := depth - 1; d >= 0; d-- {
		b.WriteString(pad)
		b.WriteString(renderDegreeRow(sl, d))
		b.WriteByte('\n')
	}

	b.WriteString(pad)
	b.WriteString(renderPositionRow(sl))
	b.WriteByte('\n')

	letters := make(map[int]rune)
	letter := startLetter
	b.WriteString(pad)
	b.WriteString(renderSublistRow(sl, &letter, letters))
	b.WriteByte('\n')

	for i := 0; i < sl.Size()-1; i++ {
		if child, ok := sl.Sublist(i); ok {
			b.WriteString(pad)
			b.WriteString(fmt.Sprintf("  [%c]\n", letters[i]))
			b.WriteString(render(child, indent+1, 'a'))
		}
	}

	return b.String()
}

// linkArrayIndex mirrors spacedlist/internal/linkindex.Index: it is small
// and pure enough to keep render decoupled from an internal package solely
// to draw a picture of one.
func linkArrayIndex(nodeIndex, degree int) int {
	return (((nodeIndex>>uint(degree))<<1)+1)<<uint(degree) - 1
}

// renderDegreeRow draws one overline per node that hosts a link at degree
// d, each gapWidth*span-1 dashes wide and terminated with a backslash, the
// way a Fenwick-style skip link visually "arches" over the nodes it
// shortcuts past. A link whose node is beyond the list's current size
// doesn't exist yet and is skipped; panicking is reserved for a link that
// does exist but was somehow stored as a non-positive span, which would
// mean a node was appended with a non-positive distance, a spacedlist
// invariant violation and not a renderer bug.
func renderDegreeRow[S position.Spacing[S]](sl *spacedlist.SpacedList[S], degree int) string {
	var b strings.Builder
	span := 1 << uint(degree)
	linkLengths := sl.LinkLengths()
	first := true
	for nodeIndex := 0; nodeIndex+span < sl.Size(); nodeIndex += span {
		idx := linkArrayIndex(nodeIndex, degree)
		if idx >= len(linkLengths) {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if !position.IsPositive(linkLengths[idx]) {
			panic(fmt.Sprintf("render: degree %d link at node %d has non-positive length %v", degree, nodeIndex, linkLengths[idx]))
		}
		width := span*gapWidth - 1
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte('\\')
	}
	return b.String()
}

func renderPositionRow[S position.Spacing[S]](sl *spacedlist.SpacedList[S]) string {
	var parts []string
	// Node 0 is always the anchor at the zero value of S.
	linkLengths := sl.LinkLengths()
	var zero S
	running := zero
	parts = append(parts, fmt.Sprint(running))
	for i := 0; i < sl.Size()-1; i++ {
		running = running.Add(stepLength(linkLengths, i))
		parts = append(parts, fmt.Sprint(running))
	}
	return strings.Join(parts, strings.Repeat(" ", gapWidth-1))
}

// stepLength recovers the distance from node i to node i+1 out of the
// packed link-length array: the degree-0 link rooted at i.
func stepLength[S position.Spacing[S]](linkLengths []S, nodeIndex int) S {
	// Degree-0 index is always 2*nodeIndex.
	idx := 2 * nodeIndex
	if idx >= len(linkLengths) {
		var zero S
		return zero
	}
	return linkLengths[idx]
}

func renderSublistRow[S position.Spacing[S]](sl *spacedlist.SpacedList[S], letter *rune, letters map[int]rune) string {
	var parts []string
	for i := 0; i < sl.Size()-1; i++ {
		if _, ok := sl.Sublist(i); ok {
			letters[i] = *letter
			parts = append(parts, string(*letter))
			*letter++
			if *letter > 'z' {
				*letter = 'a'
			}
		} else {
			parts = append(parts, ".")
		}
	}
	return strings.Join(parts, strings.Repeat(" ", gapWidth-1))
}
