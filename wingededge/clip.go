package wingededge

import (
	"fmt"
	"math"

	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/polygon"
	"github.com/mikenye/voronoi/rectangle"
)

// clipDoublings bounds the ray-lengthening loop for unbounded cells; with
// doubling this covers any viewport within float64 range.
const clipDoublings = 64

// ClippedVertices returns the cell's boundary restricted to the given
// axis-aligned viewport, as finite clockwise vertices.
//
// For an unbounded cell the outgoing rays are first realized at a finite
// length chosen so that the entire viewport lies on the interior side of
// the line joining the two realized endpoints; the resulting polygon is
// then intersected with the viewport. A cell pinched between parallel
// bisectors realizes all four of its rays at a length exceeding twice the
// distance from its finite endpoints to the farthest viewport corner; a
// half-plane cell (one finite vertex between two opposite rays) is
// rendered as a rectangle hugging its bisector.
//
// Returns:
//   - []point.Point: The clipped vertices in traversal order, or nil when
//     the cell does not reach the viewport.
//   - error: [ErrClipPolygonAtInfinity] for the polygon at infinity;
//     [ErrClipUnfinished] when the cell still has open edges.
func (p *Polygon) ClippedVertices(viewport rectangle.Rectangle) ([]point.Point, error) {
	if p.atInfinity {
		return nil, ErrClipPolygonAtInfinity
	}

	var rays []*Edge
	atInfinity := 0
	for _, e := range p.edges {
		if e.start == nil || e.end == nil {
			return nil, fmt.Errorf("%w: %s has an open edge", ErrClipUnfinished, p.String())
		}
		switch {
		case e.AtInfinity():
			atInfinity++
		case e.end.atInfinity:
			rays = append(rays, e)
		}
	}

	corners := viewport.Corners()

	// A single-generator cell is fenced purely by edges at infinity and
	// covers the whole plane.
	if len(rays) == 0 && atInfinity > 0 {
		return corners, nil
	}

	// Bounded cell: its vertices are already finite.
	if len(rays) == 0 {
		return polygon.IntersectConvex(p.finiteRing(0), corners), nil
	}

	if halfPlane, ok := p.halfPlaneGeometry(); ok {
		return polygon.IntersectConvex(halfPlane.cover(corners), corners), nil
	}

	length := initialRayLength(rays, corners)

	// A cell between parallel bisectors: both boundary lines are realized
	// at the initial length, which already clears every corner.
	if atInfinity >= 2 {
		return polygon.IntersectConvex(p.finiteRing(length), corners), nil
	}

	// General unbounded cell: lengthen the rays until every corner of the
	// viewport is on the cell's side of the line joining the two realized
	// ray endpoints.
	outTrailing, outLeading := rays[0], rays[1]
	for range clipDoublings {
		p1 := realizeRay(outTrailing, length)
		p2 := realizeRay(outLeading, length)
		if allOnSiteSide(p1, p2, p.site, corners) {
			break
		}
		length *= 2
	}
	return polygon.IntersectConvex(p.finiteRing(length), corners), nil
}

// finiteRing returns the cell's boundary with every vertex at infinity
// replaced by its ray realized at the given length. Edges at infinity
// contribute no vertices of their own; each of their endpoints is
// realized through the ray terminating there.
func (p *Polygon) finiteRing(length float64) []point.Point {
	n := len(p.edges)
	ring := make([]point.Point, 0, n)
	for i, e := range p.edges {
		next := p.edges[(i+1)%n]
		v := e.sharedVertex(next)
		if v == nil {
			continue
		}
		if !v.atInfinity {
			ring = append(ring, v.pt)
			continue
		}
		ray := e
		if ray.AtInfinity() {
			ray = next
		}
		if ray.AtInfinity() {
			continue
		}
		ring = append(ring, realizeRay(ray, length))
	}
	return ring
}

// realizeRay returns the finite point at the given distance along a ray
// from its finite endpoint.
func realizeRay(e *Edge, length float64) point.Point {
	return e.start.pt.Add(e.end.pt.Scale(length))
}

// initialRayLength picks a realization length exceeding twice the maximum
// distance from any ray's finite endpoint to any viewport corner.
func initialRayLength(rays []*Edge, corners []point.Point) float64 {
	maxDist := 0.0
	for _, r := range rays {
		for _, c := range corners {
			maxDist = math.Max(maxDist, r.start.pt.DistanceToPoint(c))
		}
	}
	return 2*maxDist + 1
}

// allOnSiteSide reports whether every corner lies on the same side of
// line p1→p2 as the generator.
func allOnSiteSide(p1, p2, site point.Point, corners []point.Point) bool {
	want := geometry.SignedArea(p1, p2, site) > 0
	for _, c := range corners {
		if (geometry.SignedArea(p1, p2, c) > 0) != want {
			return false
		}
	}
	return true
}

// halfPlaneGeometry detects the half-plane cell: a single finite vertex
// joining two opposite rays along one bisector line.
type halfPlaneCell struct {
	vertex point.Point
	dir    point.Point // one ray direction; the other is its negation
	normal point.Point // unit normal pointing into the cell
}

func (p *Polygon) halfPlaneGeometry() (halfPlaneCell, bool) {
	var rays []*Edge
	for _, e := range p.edges {
		if !e.AtInfinity() && e.end != nil && e.end.atInfinity {
			rays = append(rays, e)
		}
	}
	if len(rays) != 2 || rays[0].start != rays[1].start {
		return halfPlaneCell{}, false
	}
	d1 := rays[0].end.pt
	d2 := rays[1].end.pt
	if math.Abs(d1.CrossProduct(d2)) > 1e-9 || d1.DotProduct(d2) >= 0 {
		return halfPlaneCell{}, false
	}

	v := rays[0].start.pt
	normal := d1.Perpendicular()
	if normal.DotProduct(p.site.Sub(v)) < 0 {
		normal = normal.Negate()
	}
	// Orient dir so that the rectangle built by cover winds clockwise.
	if d1.CrossProduct(normal) < 0 {
		d1 = d1.Negate()
	}
	return halfPlaneCell{vertex: v, dir: d1, normal: normal}, true
}

// cover returns a rectangle hugging the half-plane's bisector, long and
// deep enough that every corner strictly on the cell's side is inside it.
func (h halfPlaneCell) cover(corners []point.Point) []point.Point {
	along := 1.0
	depth := 1.0
	for _, c := range corners {
		rel := c.Sub(h.vertex)
		along = math.Max(along, math.Abs(rel.DotProduct(h.dir)))
		depth = math.Max(depth, rel.DotProduct(h.normal))
	}
	along = 2*along + 1
	depth = 2*depth + 1

	a := h.vertex.Add(h.dir.Scale(along))
	b := h.vertex.Add(h.dir.Scale(-along))
	return []point.Point{
		a,
		b,
		b.Add(h.normal.Scale(depth)),
		a.Add(h.normal.Scale(depth)),
	}
}
