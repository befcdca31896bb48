// Package voronoi computes the Voronoi diagram of a finite set of points
// in the Euclidean plane using Fortune's sweepline algorithm, and emits
// the result as a winged-edge boundary representation.
//
// # Overview
//
// The diagram's unbounded cells are closed by a synthetic polygon at
// infinity and edges at infinity, yielding a topologically complete planar
// subdivision: every cell's edges form a closed clockwise cycle, every
// edge knows its two bordering cells and its four wing pointers, and every
// vertex knows its incident edges in clockwise order. Vertices at infinity
// carry a unit-length direction in place of a location.
//
// The construction is a single top-to-bottom sweep: one site event per
// generator and one circle event per vanishing beachline arc, dispatched
// from a deletable priority queue onto a binary tree of parabolic arcs.
// When the queue drains, a finishing pass closes rays at infinity, splits
// doubly-infinite bisectors, sorts each cell's edges clockwise around its
// generator, collapses the zero-length edges caused by cocircular
// generators, and stitches in the polygon at infinity.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward. The
// sweepline moves from larger y to smaller y. All clockwise orderings are
// as seen in this system.
//
// # Precision Control with Epsilon
//
// All equality and zero tests use a tolerance of 1e-10 by default,
// adjustable globally via [numeric.SetEpsilon] or per computation via
// [options.WithEpsilon]. Inputs should lie in a coordinate range where the
// tolerance is meaningful, roughly |coordinate| < 1e6.
//
// # Degenerate Input
//
// Duplicate generators are silently coalesced. Collinear and cocircular
// generators are handled: collinear inputs produce split doubly-infinite
// bisectors, and cocircular inputs produce Voronoi vertices of degree four
// or more once the finishing pass merges the zero-length edges the sweep
// had to manufacture.
//
// # Acknowledgments
//
//   - Steven Fortune: the sweepline algorithm implemented here. See
//     ["A sweepline algorithm for Voronoi diagrams." Algorithmica, 1987.]
//   - Bruce Baumgart: the winged-edge boundary representation emitted by
//     this library.
//
// ["A sweepline algorithm for Voronoi diagrams." Algorithmica, 1987.]: https://doi.org/10.1007/BF01840357
package voronoi

import (
	"fmt"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/wingededge"
)

// Compute builds the Voronoi diagram of the given generator points and
// returns its winged-edge boundary representation.
//
// Parameters:
//   - points ([]point.Point): The generators, in any order. Duplicate
//     points are silently coalesced. There is no maximum cardinality
//     beyond memory.
//   - opts: Optional settings: [options.WithEpsilon] overrides the
//     comparison tolerance for this computation, [options.WithValidation]
//     runs the structural validator on the finished diagram.
//
// Returns:
//   - *wingededge.WingedEdge: The finished diagram: one cell per distinct
//     generator plus the polygon at infinity, all edges including the
//     edges at infinity, and all vertices, finite and at infinity. The
//     structure is effectively immutable after return; callers may treat
//     it as read-only shared state.
//   - error: Non-nil only for sweepline invariant violations (wrapping
//     [ErrInvariantViolation]), a finishing pass that cannot complete the
//     structure, or, with validation enabled, a structure that fails its
//     winged-edge invariants; the latter two wrap
//     [wingededge.ErrInvalidWingedEdge]. No errors are recovered
//     internally; the computation fails fast.
//
// Computing the diagram of an empty point set returns an empty structure.
// The computation is deterministic: the same input always produces the
// same structure.
func Compute(points []point.Point, opts ...options.GeometryOptionsFunc) (*wingededge.WingedEdge, error) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if geoOpts.Epsilon > 0 {
		restore := numeric.GetEpsilon()
		numeric.SetEpsilon(geoOpts.Epsilon)
		defer numeric.SetEpsilon(restore)
	}

	s := newSweep()
	for i, p := range points {
		cell := s.we.AddPolygon(p, i)
		s.queue.Add(&event{
			kind: siteEvent,
			x:    p.X(),
			y:    p.Y(),
			cell: cell,
		})
	}

	if err := s.run(); err != nil {
		return nil, fmt.Errorf("voronoi: %w", err)
	}
	if err := s.we.Finish(); err != nil {
		return nil, fmt.Errorf("voronoi: %w", err)
	}
	if err := debugValidate(s.we); err != nil {
		return nil, fmt.Errorf("voronoi: %w", err)
	}
	if geoOpts.Validate {
		if err := s.we.Validate(); err != nil {
			return nil, fmt.Errorf("voronoi: %w", err)
		}
	}
	return s.we, nil
}
