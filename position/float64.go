package position

// Float64 is a float64-backed Spacing, demonstrating that the spaced list's
// coordinate domain is not limited to integers, any embedder-chosen
// ordered additive type works, per the Spacing constraint's design.
type Float64 float64

// Add implements Spacing.
func (f Float64) Add(other Float64) Float64 { return f + other }

// Sub implements Spacing.
func (f Float64) Sub(other Float64) Float64 { return f - other }

// Compare implements Spacing.
func (f Float64) Compare(other Float64) int {
	switch {
	case f < other:
		return -1
	case f > other:
		return 1
	default:
		return 0
	}
}
