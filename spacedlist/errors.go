package spacedlist

import "errors"

// Sentinel errors for precondition violations, the first of the two error
// categories this package recognizes. Precondition violations (caller bugs) are reported by panicking with one
// of these wrapped via fmt.Errorf, so a recovering caller still sees a
// typed error. Out-of-domain query results are never errors; they are
// plain (zero value, false) returns, the way slice/skip returns (T, bool).
var (
	// ErrNegativeDistance is the precondition violation for a non-positive
	// distance passed to AppendNode.
	ErrNegativeDistance = errors.New("spacedlist: distance must be positive")

	// ErrNegativeTarget is the precondition violation for a negative
	// target position passed to Insert.
	ErrNegativeTarget = errors.New("spacedlist: target position must be non-negative")

	// ErrPositionExists is the precondition violation for inserting at a
	// position that already equals the list's current top.
	ErrPositionExists = errors.New("spacedlist: position already exists at the top of the list")
)
