package wingededge

import (
	"fmt"
	"strings"

	"github.com/mikenye/voronoi/point"
)

// Polygon is a cell of the Voronoi diagram: the locus of plane points
// closer to its generator than to any other. Exactly one Polygon per
// diagram is the polygon at infinity; it has no generator and borders
// every unbounded cell.
type Polygon struct {
	site    point.Point
	hasSite bool
	index   int

	// edges is the cell's incident edge list. After finishing the order is
	// clockwise as seen from the generator (for the polygon at infinity,
	// the order of the closing walk).
	edges []*Edge

	atInfinity        bool
	hasZeroLengthEdge bool
}

// Generator returns the cell's generator point. The second return value is
// false for the polygon at infinity, which has no generator.
func (p *Polygon) Generator() (point.Point, bool) {
	return p.site, p.hasSite
}

// Site returns the generator point. It is meaningful only when the cell is
// not the polygon at infinity; see [Polygon.Generator] for the checked
// accessor.
func (p *Polygon) Site() point.Point {
	return p.site
}

// Index returns the stable input index of the generator, or -1 for the
// polygon at infinity.
func (p *Polygon) Index() int {
	return p.index
}

// Edges returns the cell's incident edges. After finishing the order is
// clockwise around the generator.
func (p *Polygon) Edges() []*Edge {
	return p.edges
}

// AtInfinity reports whether this cell is the polygon at infinity.
func (p *Polygon) AtInfinity() bool {
	return p.atInfinity
}

// Unbounded reports whether the cell extends to infinity, which is the
// case exactly when one of its edges is an edge at infinity. The polygon
// at infinity itself is not considered unbounded.
func (p *Polygon) Unbounded() bool {
	if p.atInfinity {
		return false
	}
	for _, e := range p.edges {
		if e.AtInfinity() {
			return true
		}
	}
	return false
}

// HasZeroLengthEdge reports whether a cocircular-generator degeneracy
// produced a zero-length edge on this cell's boundary during the sweep.
// Finishing collapses such edges, but the flag remains as a record.
func (p *Polygon) HasZeroLengthEdge() bool {
	return p.hasZeroLengthEdge
}

// MarkZeroLengthEdge records that one of this cell's edges collapsed to
// zero length. Called by the sweep when a circle event shares its vertex
// with the previously processed circle event.
func (p *Polygon) MarkZeroLengthEdge() {
	p.hasZeroLengthEdge = true
}

// VerticesCW returns the cell's vertices in clockwise order, one per
// adjacent pair of edges in the cell's finished edge list. Vertices at
// infinity appear with their direction as the stored point.
//
// Only meaningful after finishing, when the edge list forms a closed
// cycle.
func (p *Polygon) VerticesCW() []*Vertex {
	n := len(p.edges)
	if n < 2 {
		return nil
	}
	vertices := make([]*Vertex, 0, n)
	for i := range p.edges {
		v := p.edges[i].sharedVertex(p.edges[(i+1)%n])
		if v != nil {
			vertices = append(vertices, v)
		}
	}
	return vertices
}

// removeEdge drops e from the cell's edge list, preserving order.
func (p *Polygon) removeEdge(e *Edge) {
	for i, f := range p.edges {
		if f == e {
			p.edges = append(p.edges[:i], p.edges[i+1:]...)
			return
		}
	}
}

// insertEdgeAt places e at position i in the cell's edge list, shifting
// later edges right.
func (p *Polygon) insertEdgeAt(e *Edge, i int) {
	p.edges = append(p.edges, nil)
	copy(p.edges[i+1:], p.edges[i:])
	p.edges[i] = e
}

// String returns a compact description of the cell for debugging.
func (p *Polygon) String() string {
	b := strings.Builder{}
	if p.atInfinity {
		b.WriteString("polygon at infinity")
	} else {
		b.WriteString(fmt.Sprintf("polygon %d at %s", p.index, p.site.String()))
	}
	b.WriteString(fmt.Sprintf(", %d edges", len(p.edges)))
	return b.String()
}
