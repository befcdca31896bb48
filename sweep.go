package voronoi

import (
	"math"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/queue"
	"github.com/mikenye/voronoi/wingededge"
)

// sweep is the state of one Fortune's-algorithm run: the event queue, the
// beachline, the winged edge under construction, and the one-step event
// memory used by the identical-event policy.
type sweep struct {
	we    *wingededge.WingedEdge
	queue *queue.PriorityQueue[*event]
	beach beachline

	// circleEvents mirrors the pending circle events for iteration: site
	// insertion scans it to invalidate events whose circumscribed disk
	// strictly contains the new generator.
	circleEvents *arraylist.List

	// sweepY is the current sweepline height, descending.
	sweepY float64

	// prev is the previously processed event.
	prev *event
}

func newSweep() *sweep {
	return &sweep{
		we: wingededge.New(),
		queue: queue.New(eventBefore, func(ev *event, i int) {
			ev.index = i
		}),
		beach:        newBeachline(),
		circleEvents: arraylist.New(),
		sweepY:       math.Inf(1),
	}
}

// run drains the event queue, dispatching each event to the beachline.
func (s *sweep) run() error {
	for !s.queue.IsEmpty() {
		ev := s.queue.Pop()
		logDebugf("processing %s", ev.String())

		if s.dropOrFlagIdentical(ev) {
			continue
		}

		var err error
		switch ev.kind {
		case siteEvent:
			err = s.handleSiteEvent(ev)
		case circleEvent:
			err = s.handleCircleEvent(ev)
		}
		if err != nil {
			return err
		}
		s.prev = ev
	}
	return nil
}

// dropOrFlagIdentical applies the identical-event policy against the
// previously processed event. Two consecutive site events at the same
// point mean a duplicate input generator: the second is dropped and its
// cell discarded. A circle event right after a circle event with the same
// vertex is flagged zero-length; this is the only place that flag is set,
// and it is the mechanism by which cocircular-generator degeneracy is
// resolved after the sweep.
func (s *sweep) dropOrFlagIdentical(ev *event) bool {
	if s.prev == nil || ev.kind != s.prev.kind {
		return false
	}
	switch ev.kind {
	case siteEvent:
		eps := numeric.GetEpsilon()
		if numeric.FloatEquals(ev.x, s.prev.x, eps) && numeric.FloatEquals(ev.y, s.prev.y, eps) {
			logDebugf("dropping duplicate %s", ev.String())
			s.we.RemovePolygon(ev.cell)
			return true
		}
	case circleEvent:
		if ev.center.Eq(s.prev.center) {
			logDebugf("flagging zero-length %s", ev.String())
			ev.zeroLength = true
		}
	}
	return false
}

// handleSiteEvent inserts the new generator's arc into the beachline.
func (s *sweep) handleSiteEvent(ev *event) error {
	s.sweepY = ev.y

	if s.beach.root == noNode {
		s.beach.root = s.beach.newLeaf(ev.cell)
		return nil
	}

	leaf, err := s.beach.locateArc(ev.x, ev.y)
	if err != nil {
		return err
	}

	// The located arc is being split; its pending event is invalid.
	s.cancelPending(leaf)

	var mid int
	if numeric.FloatEquals(ev.y, s.beach.nodes[leaf].cell.Site().Y(), numeric.GetEpsilon()) {
		// The topmost generators are collinear on a horizontal line:
		// there is no arc above the new site, only a point.
		mid = s.beach.insertColinear(leaf, ev.cell, s.we)
	} else {
		mid = s.beach.splitArc(leaf, ev.cell, s.we)
	}

	s.invalidateSwallowedEvents(point.New(ev.x, ev.y))

	s.tryCircleEvent(s.beach.nodes[mid].prevArc)
	s.tryCircleEvent(s.beach.nodes[mid].nextArc)
	return nil
}

// handleCircleEvent removes the event's middle arc, creating a Voronoi
// vertex at the circle center.
func (s *sweep) handleCircleEvent(ev *event) error {
	s.sweepY = ev.y

	arc := ev.arc
	s.beach.nodes[arc].pending = nil
	s.removeFromCircleList(ev)

	// The neighbors' pending events involve the vanishing arc.
	s.cancelPending(s.beach.nodes[arc].prevArc)
	s.cancelPending(s.beach.nodes[arc].nextArc)

	rem, err := s.beach.removeArc(arc, ev.center, s.we)
	if err != nil {
		return err
	}

	if ev.zeroLength {
		// One of the incoming edges just closed onto itself; record the
		// degeneracy on the cells it borders for the finishing pass.
		for _, e := range rem.incoming {
			if e.ZeroLength() {
				e.PolyLeft().MarkZeroLengthEdge()
				e.PolyRight().MarkZeroLengthEdge()
			}
		}
	}

	s.tryCircleEvent(rem.prev)
	s.tryCircleEvent(rem.next)
	return nil
}

// tryCircleEvent creates a circle event for the triple of arcs centered on
// arc, if the triple is well-defined and converging.
//
// The converging test is [geometry.CCWVoronoi] ≤ 0; together with the
// circumcircle existence check and the rejection of events above the
// current sweepline, it guarantees each vanishing arc is queued exactly
// once, replacing any explicit membership check.
func (s *sweep) tryCircleEvent(arc int) {
	if arc == noNode {
		return
	}
	s.cancelPending(arc)

	left := s.beach.nodes[arc].prevArc
	right := s.beach.nodes[arc].nextArc
	if left == noNode || right == noNode {
		return
	}

	a := s.beach.nodes[left].cell.Site()
	b := s.beach.nodes[arc].cell.Site()
	c := s.beach.nodes[right].cell.Site()
	if geometry.CCWVoronoi(a, b, c) > 0 {
		return
	}

	center, radius, ok := geometry.Circumcircle(a, b, c)
	if !ok {
		return
	}

	eventY := center.Y() - radius
	if numeric.FloatGreaterThan(eventY, s.sweepY, numeric.GetEpsilon()) {
		// Already in the past.
		return
	}

	ev := &event{
		kind:   circleEvent,
		x:      center.X(),
		y:      eventY,
		center: center,
		radius: radius,
		arc:    arc,
	}
	s.beach.nodes[arc].pending = ev
	s.queue.Add(ev)
	s.circleEvents.Add(ev)
	logDebugf("queued %s", ev.String())
}

// cancelPending removes the circle event associated with an arc, if any.
func (s *sweep) cancelPending(arc int) {
	if arc == noNode {
		return
	}
	ev := s.beach.nodes[arc].pending
	if ev == nil {
		return
	}
	s.beach.nodes[arc].pending = nil
	s.queue.Remove(ev.index)
	s.removeFromCircleList(ev)
}

// invalidateSwallowedEvents removes every queued circle event whose
// circumscribed disk strictly contains p: the new generator is closer to
// the would-be vertex than the event's three arcs, so they are no longer
// its nearest neighbors.
func (s *sweep) invalidateSwallowedEvents(p point.Point) {
	eps := numeric.GetEpsilon()
	var swallowed []*event
	it := s.circleEvents.Iterator()
	for it.Next() {
		ev := it.Value().(*event)
		if numeric.FloatLessThan(ev.center.DistanceToPoint(p), ev.radius, eps) {
			swallowed = append(swallowed, ev)
		}
	}
	for _, ev := range swallowed {
		logDebugf("invalidating swallowed %s", ev.String())
		if s.beach.nodes[ev.arc].pending == ev {
			s.beach.nodes[ev.arc].pending = nil
		}
		s.queue.Remove(ev.index)
		s.removeFromCircleList(ev)
	}
}

func (s *sweep) removeFromCircleList(ev *event) {
	if i := s.circleEvents.IndexOf(ev); i >= 0 {
		s.circleEvents.Remove(i)
	}
}
