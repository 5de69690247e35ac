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

/*
Package sparseindex wraps a spacedlist.SpacedList with the service-facing
concerns a bare data structure doesn't carry on its own: a stable ID for
log correlation, structured logging of mutations, and a functional-options
configuration surface.

Example usage:

	idx := sparseindex.New[position.Int64](
		sparseindex.WithLogger[position.Int64](slog.Default()),
	)
	idx.Append(5)
	idx.Insert(2)
	path, ok := idx.DeepAt(2)
*/
package sparseindex

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/Workiva/spaced-list/internal/arena"
	"github.com/Workiva/spaced-list/position"
	"github.com/Workiva/spaced-list/spacedlist"
)

// Option configures an Index at construction time.
type Option[S position.Spacing[S]] func(*Index[S])

// WithLogger sets the logger used for Debug-level mutation tracing.
// Default is slog.Default(), which is also used when logger is nil.
func WithLogger[S position.Spacing[S]](logger *slog.Logger) Option[S] {
	return func(idx *Index[S]) {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
	}
}

// WithAllocator sets the Allocator used to materialize sublists, letting
// an embedder plug in a pooled allocator (see internal/arena) instead of
// the default one-sublist-per-heap-allocation behavior.
func WithAllocator[S position.Spacing[S]](alloc spacedlist.Allocator[S]) Option[S] {
	return func(idx *Index[S]) {
		idx.alloc = alloc
	}
}

// WithArena sets up a pooled Allocator backed by internal/arena, bump-
// allocating sublists chunkSize at a time instead of handing each one its
// own heap allocation. Use this for workloads that insert into many
// distinct gaps, each materializing a small sublist.
func WithArena[S position.Spacing[S]](chunkSize int) Option[S] {
	a := arena.New[spacedlist.SpacedList[S]](chunkSize)
	return WithAllocator(spacedlist.Allocator[S](func() *spacedlist.SpacedList[S] {
		return spacedlist.ResetEmpty(a.Alloc())
	}))
}

// Index wraps a spacedlist.SpacedList with an identity and structured
// logging, the way a production service would before exposing the data
// structure to the rest of the system.
type Index[S position.Spacing[S]] struct {
	ID     uuid.UUID
	list   *spacedlist.SpacedList[S]
	logger *slog.Logger
	alloc  spacedlist.Allocator[S]
}

// New constructs an empty Index.
func New[S position.Spacing[S]](opts ...Option[S]) *Index[S] {
	idx := &Index[S]{
		ID:     uuid.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.alloc != nil {
		idx.list = spacedlist.NewWithAllocator(idx.alloc)
	} else {
		idx.list = spacedlist.New[S]()
	}
	idx.logger.Debug("sparseindex: created", "id", idx.ID)
	return idx
}

// Size returns the number of nodes in the top-level list.
func (idx *Index[S]) Size() int {
	return idx.list.Size()
}

// Length returns the position of the last node in the top-level list.
func (idx *Index[S]) Length() S {
	return idx.list.Length()
}

// Append adds a new node distance past the current end.
func (idx *Index[S]) Append(distance S) {
	idx.list.AppendNode(distance)
	idx.logger.Debug("sparseindex: appended", "id", idx.ID, "distance", distance, "length", idx.list.Length())
}

// Insert places a new node at target, recursing into sublists as needed.
func (idx *Index[S]) Insert(target S) {
	idx.list.Insert(target)
	idx.logger.Debug("sparseindex: inserted", "id", idx.ID, "target", target)
}

// At finds the node at exactly target.
func (idx *Index[S]) At(target S) (spacedlist.TraversalResult[S], bool) {
	return idx.list.At(target)
}

// Before finds the nearest node strictly before target.
func (idx *Index[S]) Before(target S) (spacedlist.TraversalResult[S], bool) {
	return idx.list.Before(target)
}

// AtOrBefore finds the nearest node at or before target.
func (idx *Index[S]) AtOrBefore(target S) (spacedlist.TraversalResult[S], bool) {
	return idx.list.AtOrBefore(target)
}

// AtOrAfter finds the nearest node at or after target.
func (idx *Index[S]) AtOrAfter(target S) (spacedlist.TraversalResult[S], bool) {
	return idx.list.AtOrAfter(target)
}

// After finds the nearest node strictly after target.
func (idx *Index[S]) After(target S) (spacedlist.TraversalResult[S], bool) {
	return idx.list.After(target)
}

// DeepAt recurses through sublists to find a node at exactly target.
func (idx *Index[S]) DeepAt(target S) (spacedlist.Path[S], bool) {
	return idx.list.DeepAt(target)
}

// DeepBefore recurses through sublists to find the deepest node strictly
// before target.
func (idx *Index[S]) DeepBefore(target S) (spacedlist.Path[S], bool) {
	return idx.list.DeepBefore(target)
}

// DeepAtOrBefore recurses through sublists to find the deepest node at or
// before target.
func (idx *Index[S]) DeepAtOrBefore(target S) (spacedlist.Path[S], bool) {
	return idx.list.DeepAtOrBefore(target)
}

// DeepAtOrAfter recurses through sublists to find the deepest node at or
// after target.
func (idx *Index[S]) DeepAtOrAfter(target S) (spacedlist.Path[S], bool) {
	return idx.list.DeepAtOrAfter(target)
}

// DeepAfter recurses through sublists to find the deepest node strictly
// after target.
func (idx *Index[S]) DeepAfter(target S) (spacedlist.Path[S], bool) {
	return idx.list.DeepAfter(target)
}

// List exposes the underlying SpacedList for callers that need the
// render or snapshot packages, which operate on *spacedlist.SpacedList[S]
// directly.
func (idx *Index[S]) List() *spacedlist.SpacedList[S] {
	return idx.list
}
