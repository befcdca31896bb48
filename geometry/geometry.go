// Package geometry provides the pure numeric primitives consumed by the
// sweepline engine and the winged-edge finishing passes.
//
// # Overview
//
// Everything in this package is a stateless function over [point.Point]
// values: signed areas and orientation tests, circumscribed circles,
// parabola intersections against a horizontal directrix, and the left-side
// test used to orient edges between cells. The sweepline engine treats
// these as a trusted function library; any numerically impossible request
// (such as a parabolic cut between a focus lying on the directrix and an
// identical focus) is reported as an error and treated by callers as an
// invariant violation.
//
// # Precision
//
// All tolerance-aware functions use the library epsilon from
// [numeric.GetEpsilon] unless documented otherwise. The orientation test
// scales the tolerance with the magnitude of its inputs so that large and
// small triangles degrade gracefully.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/point"
)

// ErrDegenerateParabolicCut is returned by [ParabolicCut] when both foci
// coincide and lie on the directrix; the two parabolas degenerate to the
// same vertical ray and no cut abscissa exists. This only arises from buggy
// call sites, never from valid sweepline state.
var ErrDegenerateParabolicCut = errors.New("parabolic cut undefined: coincident foci on the directrix")

// Winding is the turn direction of three points in the plane, or the
// winding direction of a polygon ring. Its numeric value is the sign of
// the corresponding signed area, so a Winding can be used directly where
// the circle-event policy wants the sign of an orientation test.
type Winding int8

// Valid values for Winding.
const (
	// WindingClockwise indicates a right turn (negative signed area).
	WindingClockwise Winding = -1

	// WindingCollinear indicates no turn: the points lie on one line, or
	// the ring has no area.
	WindingCollinear Winding = 0

	// WindingCounterClockwise indicates a left turn (positive signed area).
	WindingCounterClockwise Winding = 1
)

// String returns a human-readable name for the winding direction, for
// debugging and logging.
//
// Panics:
//   - If the Winding value is not one of the defined constants.
func (w Winding) String() string {
	switch w {
	case WindingClockwise:
		return "clockwise"
	case WindingCollinear:
		return "collinear"
	case WindingCounterClockwise:
		return "counter-clockwise"
	default:
		panic(fmt.Errorf("unsupported Winding: %d", int8(w)))
	}
}

// SignedArea returns twice the signed area of triangle (a, b, c).
//
// The result is positive when the three points wind counterclockwise,
// negative when they wind clockwise, and zero when they are collinear.
func SignedArea(a, b, c point.Point) float64 {
	return b.Sub(a).CrossProduct(c.Sub(a))
}

// Orientation determines the relative orientation of three points in the
// plane.
//
// This function calculates whether three points a, b and c make a clockwise
// turn, a counterclockwise turn, or are collinear, using the cross product
// of the vectors (b-a) and (c-a).
//
// Behavior:
//   - Uses an adaptive epsilon based on the distance between points to
//     handle floating-point precision.
//   - Relies on the sign of the cross product: positive →
//     counter-clockwise, negative → clockwise, near zero → collinear.
func Orientation(a, b, c point.Point) Winding {
	val := SignedArea(a, b, c)

	// Adaptive epsilon scaled by segment lengths.
	epsilon := numeric.GetEpsilon() * (a.DistanceToPoint(b) + a.DistanceToPoint(c))

	if math.Abs(val) <= epsilon {
		return WindingCollinear
	}
	if val > 0 {
		return WindingCounterClockwise
	}
	return WindingClockwise
}

// CCWVoronoi is the orientation test used by the circle-event creation
// policy. For points in general position it behaves like the plain
// orientation sign: +1 counterclockwise, -1 clockwise.
//
// For collinear triples the points are treated as lying on a circle of
// infinite radius: the triple is accepted (-1) when the deltas of B→A and
// C→A agree in sign on both coordinates and BA is no longer than CA,
// rejected (+1) otherwise, and 0 on an exact length tie. This admits
// nearly-collinear converging triples whose circumcenter is distant but
// real, while rejecting triples such as (A, B, A) whose middle arc cannot
// vanish.
//
// A triple produces a circle event only when this test returns a value
// less than or equal to zero; together with the circumcircle and
// not-in-the-past filters this replaces any explicit already-queued check.
func CCWVoronoi(a, b, c point.Point) int {
	if s := Orientation(a, b, c); s != WindingCollinear {
		return int(s)
	}

	dxBA, dyBA := a.X()-b.X(), a.Y()-b.Y()
	dxCA, dyCA := a.X()-c.X(), a.Y()-c.Y()

	if !sameSign(dxBA, dxCA) || !sameSign(dyBA, dyCA) {
		return 1
	}

	lenBA := dxBA*dxBA + dyBA*dyBA
	lenCA := dxCA*dxCA + dyCA*dyCA
	switch {
	case lenBA < lenCA:
		return -1
	case lenBA > lenCA:
		return 1
	default:
		return 0
	}
}

// sameSign reports whether a and b are both positive, both negative, or
// both zero.
func sameSign(a, b float64) bool {
	switch {
	case a > 0:
		return b > 0
	case a < 0:
		return b < 0
	default:
		return b == 0
	}
}

// Circumcircle computes the circle through the three points a, b and c.
//
// Returns:
//   - center (point.Point): The circumcenter, equidistant from all three
//     points.
//   - radius (float64): The circumradius.
//   - ok (bool): False when the three points are exactly collinear and no
//     circumscribed circle exists. The collinearity here is tested against
//     the exact zero denominator, not the library epsilon: callers that
//     admit nearly-collinear triples still receive their distant but real
//     circumcenter.
func Circumcircle(a, b, c point.Point) (center point.Point, radius float64, ok bool) {
	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	if d == 0 {
		return point.Point{}, 0, false
	}

	aSq := a.X()*a.X() + a.Y()*a.Y()
	bSq := b.X()*b.X() + b.Y()*b.Y()
	cSq := c.X()*c.X() + c.Y()*c.Y()

	ux := (aSq*(b.Y()-c.Y()) + bSq*(c.Y()-a.Y()) + cSq*(a.Y()-b.Y())) / d
	uy := (aSq*(c.X()-b.X()) + bSq*(a.X()-c.X()) + cSq*(b.X()-a.X())) / d

	center = point.New(ux, uy)
	radius = center.DistanceToPoint(a)
	return center, radius, true
}

// ParabolicCut computes the x-coordinate where the parabola with focus
// left meets the parabola with focus right, both with the horizontal
// directrix y = directrix. The left focus owns the arc to the left of the
// cut; of the two intersection points of the parabolas, the one matching
// that arc ordering is returned.
//
// Degenerate inputs:
//   - A focus lying on the directrix owns a parabola collapsed to a
//     vertical ray; the cut is at that focus' x-coordinate.
//   - Both foci on the directrix at the same location has no defined cut
//     and returns [ErrDegenerateParabolicCut].
//   - Foci at equal height cut at the midpoint abscissa.
func ParabolicCut(left, right point.Point, directrix float64) (float64, error) {
	eps := numeric.GetEpsilon()
	dLeft := left.Y() - directrix
	dRight := right.Y() - directrix

	leftDegenerate := numeric.FloatIsZero(dLeft, eps)
	rightDegenerate := numeric.FloatIsZero(dRight, eps)
	switch {
	case leftDegenerate && rightDegenerate:
		if left.Eq(right) {
			return 0, ErrDegenerateParabolicCut
		}
		return (left.X() + right.X()) / 2, nil
	case leftDegenerate:
		return left.X(), nil
	case rightDegenerate:
		return right.X(), nil
	}

	// Equal-height foci: the bisector is vertical through the midpoint.
	if numeric.FloatEquals(dLeft, dRight, eps) {
		return (left.X() + right.X()) / 2, nil
	}

	// Equating the two parabolas and clearing denominators yields the
	// quadratic A x² + B x + C = 0 below. Of its two roots, the one with
	// the left focus owning the left arc is always (-B + √disc) / (2A).
	A := dRight - dLeft
	B := -2 * (dRight*left.X() - dLeft*right.X())
	C := dRight*left.X()*left.X() - dLeft*right.X()*right.X() + dLeft*dRight*(left.Y()-right.Y())

	disc := B*B - 4*A*C
	if disc < 0 {
		// Two parabolas over a shared directrix always intersect; a
		// negative discriminant is rounding noise near tangency.
		disc = 0
	}
	return (-B + math.Sqrt(disc)) / (2 * A), nil
}

// ParabolaY returns the y-coordinate of the parabola with the given focus
// and horizontal directrix at abscissa x.
//
// The focus must not lie on the directrix; callers guard this via the same
// degeneracy checks as [ParabolicCut].
func ParabolaY(focus point.Point, directrix, x float64) float64 {
	dp := focus.Y() - directrix
	dx := x - focus.X()
	return dx*dx/(2*dp) + (focus.Y()+directrix)/2
}

// FLeft reports whether site lies strictly to the left of the directed
// line a→b.
//
// This is the side test used to mark each edge's left and right cells once
// both of its endpoints are known; for an edge with an end at infinity the
// finite end is treated as a and the direction supplies b.
func FLeft(site, a, b point.Point) bool {
	return SignedArea(a, b, site) > 0
}
