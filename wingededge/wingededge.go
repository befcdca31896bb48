// Package wingededge implements the winged-edge boundary representation
// produced by the voronoi sweepline engine, together with the finishing
// passes that turn the raw edge soup left behind by the sweep into a
// topologically complete planar subdivision.
//
// # Overview
//
// A finished [WingedEdge] holds three collections:
//
//   - Cells ([Polygon]): one per distinct generator, plus a single
//     synthetic polygon at infinity adjacent to every unbounded cell.
//   - Edges ([Edge]): segments, rays and synthetic edges at infinity, each
//     carrying its two bordering cells and four wing pointers.
//   - Vertices ([Vertex]): finite Voronoi vertices, plus vertices at
//     infinity whose stored point is a unit-length direction rather than a
//     location.
//
// During the sweep the structure is built incrementally: cells are
// registered up front, edges appear when breakpoints appear, and vertices
// appear at circle events. The [WingedEdge.Finish] pass then closes rays
// at infinity, splits doubly-infinite bisectors, sorts every cell's edges
// clockwise around its generator, collapses the zero-length edges caused
// by cocircular generators, stitches in the polygon at infinity, and sets
// the wing pointers.
//
// After finishing, the structure is effectively immutable; callers may
// treat it as read-only shared state.
package wingededge

import (
	"math"

	"github.com/mikenye/voronoi/point"
)

// WingedEdge is the winged-edge boundary representation of a Voronoi
// diagram.
type WingedEdge struct {
	polygons []*Polygon
	edges    []*Edge
	vertices []*Vertex

	// polygonAtInfinity is set by Finish; nil beforehand and for empty
	// diagrams.
	polygonAtInfinity *Polygon
}

// New creates an empty winged-edge structure ready for incremental
// construction.
func New() *WingedEdge {
	return &WingedEdge{}
}

// AddPolygon registers the cell for a generator point and returns it.
//
// Parameters:
//   - site (point.Point): The generator.
//   - index (int): The stable input index of the generator.
func (w *WingedEdge) AddPolygon(site point.Point, index int) *Polygon {
	p := &Polygon{
		site:    site,
		hasSite: true,
		index:   index,
	}
	w.polygons = append(w.polygons, p)
	return p
}

// RemovePolygon removes a previously added cell. It is only valid for
// cells that have acquired no edges, which is exactly the situation of a
// duplicate generator whose site event was coalesced away.
func (w *WingedEdge) RemovePolygon(p *Polygon) {
	for i, q := range w.polygons {
		if q == p {
			w.polygons = append(w.polygons[:i], w.polygons[i+1:]...)
			return
		}
	}
}

// AddEdge creates a new edge bordering cells a and b, appends it to both
// cells' edge lists, and returns it.
//
// The left/right labelling of the two cells is provisional until
// [WingedEdge.Finish] has both endpoints available to orient the edge.
func (w *WingedEdge) AddEdge(a, b *Polygon) *Edge {
	e := &Edge{
		polyLeft:  a,
		polyRight: b,
	}
	a.edges = append(a.edges, e)
	b.edges = append(b.edges, e)
	w.edges = append(w.edges, e)
	return e
}

// AddVertex creates a finite vertex at p and returns it.
func (w *WingedEdge) AddVertex(p point.Point) *Vertex {
	v := &Vertex{pt: p}
	w.vertices = append(w.vertices, v)
	return v
}

// AddVertexAtInfinity creates a vertex at infinity in the given direction.
// The direction is normalized to unit length.
func (w *WingedEdge) AddVertexAtInfinity(direction point.Point) *Vertex {
	v := &Vertex{
		pt:         direction.Normalize(),
		atInfinity: true,
	}
	w.vertices = append(w.vertices, v)
	return v
}

// Polygons returns the cells of the diagram. After finishing this includes
// the polygon at infinity as the final element.
func (w *WingedEdge) Polygons() []*Polygon {
	return w.polygons
}

// Edges returns every edge of the diagram, including edges at infinity.
func (w *WingedEdge) Edges() []*Edge {
	return w.edges
}

// Vertices returns every vertex of the diagram: finite vertices and
// direction-carrying vertices at infinity.
func (w *WingedEdge) Vertices() []*Vertex {
	return w.vertices
}

// PolygonAtInfinity returns the synthetic cell that borders every
// unbounded cell, or nil before finishing (or for an empty diagram).
func (w *WingedEdge) PolygonAtInfinity() *Polygon {
	return w.polygonAtInfinity
}

// NearestPolygon returns the cell whose generator is closest to p, which
// is exactly the cell containing p. Returns nil for an empty diagram.
//
// This is a linear scan over the generators; it does not use the edge
// structure.
func (w *WingedEdge) NearestPolygon(p point.Point) *Polygon {
	var best *Polygon
	bestDist := math.Inf(1)
	for _, cell := range w.polygons {
		if !cell.hasSite {
			continue
		}
		d := cell.site.DistanceSquaredToPoint(p)
		if d < bestDist {
			bestDist = d
			best = cell
		}
	}
	return best
}

// compactEdges drops edges flagged dead during the zero-length collapse.
func (w *WingedEdge) compactEdges() {
	kept := w.edges[:0]
	for _, e := range w.edges {
		if !e.dead {
			kept = append(kept, e)
		}
	}
	w.edges = kept
}

// compactVertices drops vertices flagged dead during the zero-length
// collapse.
func (w *WingedEdge) compactVertices() {
	kept := w.vertices[:0]
	for _, v := range w.vertices {
		if !v.dead {
			kept = append(kept, v)
		}
	}
	w.vertices = kept
}
