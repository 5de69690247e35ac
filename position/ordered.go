package position

import "golang.org/x/exp/constraints"

// Ordered wraps any built-in ordered numeric type as a Spacing, so callers
// don't need to hand-write Add/Sub/Compare for every numeric type they
// want to index by (uint32 byte offsets, float32 timestamps, and so on);
// only the three concrete types in this package (Int, Int64, Float64) get
// that treatment, everything else can use Ordered[T] instead.
type Ordered[T constraints.Integer | constraints.Float] struct {
	Value T
}

// Of constructs an Ordered[T] from a plain value.
func Of[T constraints.Integer | constraints.Float](v T) Ordered[T] {
	return Ordered[T]{Value: v}
}

// Add implements Spacing.
func (o Ordered[T]) Add(other Ordered[T]) Ordered[T] {
	return Ordered[T]{Value: o.Value + other.Value}
}

// Sub implements Spacing.
func (o Ordered[T]) Sub(other Ordered[T]) Ordered[T] {
	return Ordered[T]{Value: o.Value - other.Value}
}

// Compare implements Spacing.
func (o Ordered[T]) Compare(other Ordered[T]) int {
	switch {
	case o.Value < other.Value:
		return -1
	case o.Value > other.Value:
		return 1
	default:
		return 0
	}
}
