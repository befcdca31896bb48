// Package polygon provides the small set of polygon operations the voronoi
// library needs: signed area, winding direction, and intersection of a
// polygon with a convex clip region.
//
// Voronoi cells are convex, so the clipping entry point here is the
// convex-polygon intersection collaborator used when a cell is reduced to
// the finite vertices visible inside a caller-supplied viewport.
package polygon

import (
	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/point"
)

// SignedArea returns twice the signed area of the polygon described by
// points, positive when the vertices wind counterclockwise.
//
// Parameters:
//   - points ([]point.Point): The polygon vertices in order. The polygon
//     is treated as closed; the last vertex connects back to the first.
//
// Returns:
//   - float64: Twice the signed area. Zero for degenerate polygons with
//     fewer than three vertices.
func SignedArea(points []point.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var area float64
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].CrossProduct(points[j])
	}
	return area
}

// Winding reports the winding direction of the polygon described by points.
//
// Returns:
//   - geometry.Winding: [geometry.WindingCounterClockwise] for positive
//     signed area, [geometry.WindingClockwise] for negative, and
//     [geometry.WindingCollinear] for degenerate (zero-area) polygons.
func Winding(points []point.Point) geometry.Winding {
	area := SignedArea(points)
	switch {
	case area > 0:
		return geometry.WindingCounterClockwise
	case area < 0:
		return geometry.WindingClockwise
	default:
		return geometry.WindingCollinear
	}
}

// IntersectConvex clips the subject polygon against a convex clip polygon
// using the Sutherland–Hodgman algorithm.
//
// Parameters:
//   - subject ([]point.Point): The polygon to clip, in either winding
//     direction. The output preserves the subject's traversal order.
//   - clip ([]point.Point): The convex clip region. Winding direction is
//     normalized internally.
//
// Returns:
//   - []point.Point: The vertices of subject ∩ clip, or nil when the
//     intersection is empty.
//
// Behavior:
//   - Vertices exactly on a clip edge are retained.
//   - The clip polygon must be convex; the subject need not be.
func IntersectConvex(subject, clip []point.Point) []point.Point {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	// Sutherland–Hodgman keeps points to the left of each clip edge, which
	// requires the clip region in counterclockwise order.
	clip = asCounterClockwise(clip)

	output := subject
	for i := range clip {
		if len(output) == 0 {
			return nil
		}
		a := clip[i]
		b := clip[(i+1)%len(clip)]

		input := output
		output = make([]point.Point, 0, len(input)+1)
		for j := range input {
			cur := input[j]
			prev := input[(j+len(input)-1)%len(input)]

			curInside := geometry.SignedArea(a, b, cur) >= 0
			prevInside := geometry.SignedArea(a, b, prev) >= 0

			switch {
			case curInside && prevInside:
				output = append(output, cur)
			case curInside && !prevInside:
				output = append(output, lineIntersection(prev, cur, a, b), cur)
			case !curInside && prevInside:
				output = append(output, lineIntersection(prev, cur, a, b))
			}
		}
	}
	if len(output) == 0 {
		return nil
	}
	return output
}

// asCounterClockwise returns points ordered counterclockwise, reversing a
// clockwise input without modifying it.
func asCounterClockwise(points []point.Point) []point.Point {
	if Winding(points) != geometry.WindingClockwise {
		return points
	}
	reversed := make([]point.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// lineIntersection returns the intersection of lines p1p2 and p3p4. The
// caller guarantees the lines are not parallel: it is only invoked when
// the segment p1p2 straddles the clip line p3p4.
func lineIntersection(p1, p2, p3, p4 point.Point) point.Point {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.CrossProduct(d2)
	t := p3.Sub(p1).CrossProduct(d2) / denom
	return p1.Add(d1.Scale(t))
}
