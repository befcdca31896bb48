package wingededge

import (
	"fmt"
	"math"
	"sort"

	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/point"
)

// Finish turns the raw structure left behind by the sweep into a
// topologically complete planar subdivision. The passes run in order:
//
//  1. Edge closure: doubly-infinite bisectors are split into two flagged
//     rays joined at the midpoint of their generators; ordinary rays get a
//     unit-direction vertex at infinity aimed away from the third
//     generator at their base vertex.
//  2. Every cell's edge list is sorted clockwise around its generator.
//  3. Each edge's left and right cells are fixed by the side test, with
//     the finite end of a ray treated as the start.
//  4. Zero-length edges from cocircular generators are collapsed, merging
//     their endpoints into single higher-degree vertices.
//  5. The polygon at infinity is created and one edge at infinity is
//     stitched in per unbounded-cell gap.
//  6. Wing pointers are derived from the finished rings.
//
// Finish must be called exactly once, after the sweep has drained its
// event queue. An empty structure finishes to an empty structure; a
// single-cell structure synthesizes its closure at infinity directly.
func (w *WingedEdge) Finish() error {
	switch len(w.polygons) {
	case 0:
		return nil
	case 1:
		w.finishSingleSite()
		return nil
	}

	if err := w.closeInfiniteEdges(); err != nil {
		return err
	}
	w.sortPolygonEdges()
	w.assignEdgeSides()
	w.collapseZeroLengthEdges()
	if err := w.buildPolygonAtInfinity(); err != nil {
		return err
	}
	w.assignWings()
	return nil
}

// closeInfiniteEdges resolves every edge endpoint the sweep left open.
func (w *WingedEdge) closeInfiniteEdges() error {
	// Splitting appends new edges; iterate only over the sweep's edges.
	n := len(w.edges)
	for _, e := range w.edges[:n] {
		switch {
		case e.start == nil && e.end == nil:
			w.splitDoublyInfiniteEdge(e)
		case e.end == nil || e.start == nil:
			if err := w.closeRay(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitDoublyInfiniteEdge handles a bisector neither of whose breakpoints
// ever produced a vertex: a full line, occurring with two generators or
// with all generators collinear. The line is split into two collinear rays
// joined at a new finite vertex at the midpoint of the two generators,
// with vertices at infinity in opposite perpendicular directions. Both
// rays carry the split flag.
func (w *WingedEdge) splitDoublyInfiniteEdge(e *Edge) {
	siteA := e.polyLeft.site
	siteB := e.polyRight.site

	mid := w.AddVertex(point.Midpoint(siteA, siteB))
	dir := siteB.Sub(siteA).Perpendicular().Normalize()

	twin := w.AddEdge(e.polyLeft, e.polyRight)

	e.AttachVertex(mid)
	e.AttachVertex(w.AddVertexAtInfinity(dir))
	twin.AttachVertex(mid)
	twin.AttachVertex(w.AddVertexAtInfinity(dir.Negate()))

	e.split = true
	twin.split = true
}

// closeRay replaces a single open endpoint with a vertex at infinity. The
// ray direction is perpendicular to the segment between the edge's two
// generators, oriented away from the third generator incident to the base
// vertex.
func (w *WingedEdge) closeRay(e *Edge) error {
	// Canonicalize the finite end as the start.
	if e.start == nil {
		e.start, e.end = e.end, nil
	}

	third, err := thirdPolygonAt(e.start, e)
	if err != nil {
		return err
	}

	dir := e.polyRight.site.Sub(e.polyLeft.site).Perpendicular().Normalize()
	if dir.DotProduct(third.site.Sub(e.start.pt)) > 0 {
		dir = dir.Negate()
	}
	e.AttachVertex(w.AddVertexAtInfinity(dir))
	return nil
}

// thirdPolygonAt returns the cell incident to vertex v that does not
// border edge e. The base vertex of a ray is a circle-event vertex of
// three generators; the two it shares with e determine the ray's carrier
// line and the third fixes its orientation.
func thirdPolygonAt(v *Vertex, e *Edge) (*Polygon, error) {
	for _, f := range v.edges {
		if f == e {
			continue
		}
		for _, p := range [2]*Polygon{f.polyLeft, f.polyRight} {
			if p != e.polyLeft && p != e.polyRight {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no third generator at the base vertex of %s", ErrInvalidWingedEdge, e.String())
}

// sortPolygonEdges orders every cell's edge list clockwise around its
// generator, comparing the edges' ordering test points by angle.
func (w *WingedEdge) sortPolygonEdges() {
	for _, p := range w.polygons {
		site := p.site
		angle := func(e *Edge) float64 {
			tp := e.orderingPoint()
			return math.Atan2(tp.Y()-site.Y(), tp.X()-site.X())
		}
		sort.Slice(p.edges, func(i, j int) bool {
			return angle(p.edges[i]) > angle(p.edges[j])
		})
	}
}

// assignEdgeSides fixes each edge's left and right cells now that both
// endpoints are known, using the side test with the finite end as start.
// Zero-length edges are skipped; they are about to be collapsed and have
// no orientation.
func (w *WingedEdge) assignEdgeSides() {
	for _, e := range w.edges {
		if e.ZeroLength() {
			continue
		}
		a := e.start.pt
		b := e.end.pt
		if e.end.atInfinity {
			b = a.Add(e.end.pt)
		}
		if !geometry.FLeft(e.polyLeft.site, a, b) {
			e.polyLeft, e.polyRight = e.polyRight, e.polyLeft
		}
	}
}

// assignWings derives the four wing pointers of every edge from the
// finished cell rings. An edge whose left cell is p takes its clockwise
// wings from p's ring; an edge whose right cell is p takes its
// counter-clockwise wings from p's ring, walked in reverse.
func (w *WingedEdge) assignWings() {
	for _, p := range w.polygons {
		n := len(p.edges)
		if n < 2 {
			continue
		}
		for i, e := range p.edges {
			next := p.edges[(i+1)%n]
			prev := p.edges[(i+n-1)%n]
			if e.polyLeft == p {
				e.cwSucc = next
				e.cwPred = prev
			} else {
				e.ccwSucc = prev
				e.ccwPred = next
			}
		}
	}
}

// finishSingleSite closes the diagram of a single generator: no edges, no
// finite vertices. The cell is fenced by four edges at infinity whose
// endpoints are the four diagonal directions, so the cell and the polygon
// at infinity form a complete two-cell subdivision.
func (w *WingedEdge) finishSingleSite() {
	cell := w.polygons[0]
	pinf := &Polygon{atInfinity: true, index: -1}
	w.polygons = append(w.polygons, pinf)
	w.polygonAtInfinity = pinf

	const d = math.Sqrt2 / 2
	// Clockwise order as seen from the generator.
	dirs := [4]point.Point{
		point.New(-d, d),
		point.New(d, d),
		point.New(d, -d),
		point.New(-d, -d),
	}

	var vertices [4]*Vertex
	for i, dir := range dirs {
		vertices[i] = w.AddVertexAtInfinity(dir)
	}

	var edges [4]*Edge
	for i := range dirs {
		e := &Edge{
			start:     vertices[i],
			end:       vertices[(i+1)%4],
			polyLeft:  pinf,
			polyRight: cell,
		}
		w.edges = append(w.edges, e)
		edges[i] = e
		vertices[i].edges = append(vertices[i].edges, e)
		vertices[(i+1)%4].edges = append(vertices[(i+1)%4].edges, e)
	}

	cell.edges = []*Edge{edges[0], edges[1], edges[2], edges[3]}
	pinf.edges = []*Edge{edges[3], edges[2], edges[1], edges[0]}
	w.assignWings()
}
