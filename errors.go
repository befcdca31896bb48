package voronoi

import "errors"

// ErrInvariantViolation is returned by [Compute] when the sweep reaches a
// state that valid inputs cannot produce: a numerically impossible
// primitive request or a beachline shape the algorithm rules out. Nothing
// is recovered internally; the computation fails fast and surfaces the
// wrapped cause.
var ErrInvariantViolation = errors.New("sweepline invariant violation")
