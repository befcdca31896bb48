package wingededge

import (
	"fmt"

	"github.com/mikenye/voronoi/point"
)

// Edge is one edge of the winged-edge structure: a piece of the
// perpendicular bisector between two generators, realized as a segment or
// ray, or a synthetic edge at infinity.
//
// Left and right are taken looking from the start vertex toward the end
// vertex; the labelling is provisional until finishing orients every edge.
type Edge struct {
	start *Vertex
	end   *Vertex

	polyLeft  *Polygon
	polyRight *Polygon

	// The four wings. Clockwise predecessor/successor walk the left cell
	// clockwise; counter-clockwise predecessor/successor walk the right
	// cell counter-clockwise.
	cwPred  *Edge
	cwSucc  *Edge
	ccwPred *Edge
	ccwSucc *Edge

	// split marks the two collinear rays produced by splitting a
	// doubly-infinite bisector at the midpoint of its generators.
	split bool

	dead bool
}

// Start returns the edge's start vertex, or nil while the edge is still
// growing during the sweep.
func (e *Edge) Start() *Vertex {
	return e.start
}

// End returns the edge's end vertex, or nil while the edge is still
// growing during the sweep. After finishing, an unbounded edge has its
// vertex at infinity here.
func (e *Edge) End() *Vertex {
	return e.end
}

// PolyLeft returns the cell on the left of the edge, looking from start
// toward end.
func (e *Edge) PolyLeft() *Polygon {
	return e.polyLeft
}

// PolyRight returns the cell on the right of the edge, looking from start
// toward end.
func (e *Edge) PolyRight() *Polygon {
	return e.polyRight
}

// CWPredecessor returns the edge preceding this one when walking the left
// cell clockwise.
func (e *Edge) CWPredecessor() *Edge {
	return e.cwPred
}

// CWSuccessor returns the edge following this one when walking the left
// cell clockwise.
func (e *Edge) CWSuccessor() *Edge {
	return e.cwSucc
}

// CCWPredecessor returns the edge preceding this one when walking the
// right cell counter-clockwise.
func (e *Edge) CCWPredecessor() *Edge {
	return e.ccwPred
}

// CCWSuccessor returns the edge following this one when walking the right
// cell counter-clockwise.
func (e *Edge) CCWSuccessor() *Edge {
	return e.ccwSucc
}

// Split reports whether this edge is one of the two rays produced by
// splitting a doubly-infinite bisector.
func (e *Edge) Split() bool {
	return e.split
}

// AtInfinity reports whether this is a synthetic edge at infinity, which
// is the case exactly when both endpoints are vertices at infinity.
func (e *Edge) AtInfinity() bool {
	return e.start != nil && e.end != nil && e.start.atInfinity && e.end.atInfinity
}

// ZeroLength reports whether both endpoints are finite and coincident
// within the library epsilon. Zero-length edges arise from cocircular
// generators and are collapsed during finishing.
func (e *Edge) ZeroLength() bool {
	if e.start == nil || e.end == nil || e.start.atInfinity || e.end.atInfinity {
		return false
	}
	return e.start.pt.Eq(e.end.pt)
}

// AttachVertex fixes v as the edge's next free endpoint: the start if the
// edge has no endpoints yet, the end otherwise. The edge is appended to
// v's incident-edge ring.
//
// The sweep attaches the two incoming edges of a circle event to the new
// vertex in clockwise order, so ring order at finite vertices is
// established here and never re-sorted.
func (e *Edge) AttachVertex(v *Vertex) {
	if e.start == nil {
		e.start = v
	} else {
		e.end = v
	}
	v.edges = append(v.edges, e)
}

// otherPoly returns the cell on the opposite side of the edge from p, or
// nil when p borders neither side.
func (e *Edge) otherPoly(p *Polygon) *Polygon {
	switch p {
	case e.polyLeft:
		return e.polyRight
	case e.polyRight:
		return e.polyLeft
	default:
		return nil
	}
}

// sharedVertex returns the vertex the two edges have in common, or nil.
func (e *Edge) sharedVertex(f *Edge) *Vertex {
	switch {
	case e.start == f.start || e.start == f.end:
		return e.start
	case e.end == f.start || e.end == f.end:
		return e.end
	default:
		return nil
	}
}

// orderingPoint returns the point used to order this edge clockwise
// around a cell's generator: the midpoint for a finite edge, or the sum
// of the finite endpoint and the direction at infinity for a ray.
func (e *Edge) orderingPoint() point.Point {
	if e.end.atInfinity {
		return e.start.pt.Add(e.end.pt)
	}
	return point.Midpoint(e.start.pt, e.end.pt)
}

// String returns a compact description of the edge for debugging.
func (e *Edge) String() string {
	endpoint := func(v *Vertex) string {
		switch {
		case v == nil:
			return "<open>"
		case v.atInfinity:
			return fmt.Sprintf("inf%s", v.pt.String())
		default:
			return v.pt.String()
		}
	}
	return fmt.Sprintf("edge %s -> %s", endpoint(e.start), endpoint(e.end))
}
