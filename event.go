package voronoi

import (
	"fmt"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/wingededge"
)

type eventKind uint8

const (
	siteEvent eventKind = iota
	circleEvent
)

func (k eventKind) String() string {
	switch k {
	case siteEvent:
		return "siteEvent"
	case circleEvent:
		return "circleEvent"
	default:
		panic(fmt.Errorf("unsupported eventKind: %d", k))
	}
}

// event is a sweepline event: either the sweepline reaching a generator
// (site event) or three consecutive arcs becoming concurrent (circle
// event). The event position (x, y) keys the queue; for a circle event it
// is the bottom of the circumscribed circle, the point where the
// sweepline becomes tangent to it.
type event struct {
	kind eventKind
	x    float64
	y    float64

	// Site events carry the cell under construction for their generator.
	cell *wingededge.Polygon

	// Circle events carry the would-be vertex (the circle center), the
	// circle radius, and the arena handle of the middle arc to remove.
	// zeroLength is set by the driver when another circle event with the
	// same vertex was just processed; it marks the cocircular degeneracy
	// the finishing pass later collapses.
	center     point.Point
	radius     float64
	arc        int
	zeroLength bool

	// The index is needed for interior deletion and is maintained by the
	// event queue on every move.
	index int
}

func (e *event) String() string {
	if e.kind == siteEvent {
		return fmt.Sprintf("site event at (%v, %v)", e.x, e.y)
	}
	return fmt.Sprintf("circle event at (%v, %v), vertex %s, radius %v", e.x, e.y, e.center.String(), e.radius)
}

// eventBefore orders the queue: larger y first (the sweepline moves top to
// bottom), then smaller x, and on a positional tie site events before
// circle events. The tie-breaks guarantee that co-located events are
// dequeued consecutively and that a generator coincident with a circle
// vertex is processed first.
func eventBefore(a, b *event) bool {
	eps := numeric.GetEpsilon()
	if !numeric.FloatEquals(a.y, b.y, eps) {
		return a.y > b.y
	}
	if !numeric.FloatEquals(a.x, b.x, eps) {
		return a.x < b.x
	}
	return a.kind == siteEvent && b.kind == circleEvent
}
