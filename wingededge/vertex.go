package wingededge

import (
	"fmt"

	"github.com/mikenye/voronoi/point"
)

// Vertex is a vertex of the winged-edge structure: either a finite Voronoi
// vertex (equidistant from three or more generators, or from two for the
// midpoint joining the rays of a split bisector), or a vertex at
// infinity whose stored point is a unit-length direction rather than a
// location.
type Vertex struct {
	pt         point.Point
	atInfinity bool

	// edges is the vertex's incident-edge ring in clockwise order.
	edges []*Edge

	dead bool
}

// Point returns the vertex location, or, for a vertex at infinity, the
// unit direction in which the vertex lies.
func (v *Vertex) Point() point.Point {
	return v.pt
}

// AtInfinity reports whether this vertex encodes a direction at infinity
// rather than a finite location.
func (v *Vertex) AtInfinity() bool {
	return v.atInfinity
}

// Edges returns the vertex's incident edges in clockwise order.
func (v *Vertex) Edges() []*Edge {
	return v.edges
}

// Degree returns the number of incident edges. Every finite vertex of a
// finished diagram has degree three, or more where cocircular generators
// were merged, except the midpoint vertex joining the two rays of a split
// doubly-infinite bisector, which has degree two.
func (v *Vertex) Degree() int {
	return len(v.edges)
}

// String returns a compact description of the vertex for debugging.
func (v *Vertex) String() string {
	if v.atInfinity {
		return fmt.Sprintf("vertex at infinity %s", v.pt.String())
	}
	return fmt.Sprintf("vertex %s", v.pt.String())
}
