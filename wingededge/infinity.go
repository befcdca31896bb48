package wingededge

import (
	"fmt"
	"math"
)

// buildPolygonAtInfinity creates the synthetic cell adjacent to every
// unbounded cell and stitches one edge at infinity into each
// unbounded-cell gap.
//
// The walk is a small state machine around the outer face of the
// subdivision: at each step the current unbounded cell's gap is located
// (the pair of consecutive rays in its clockwise ring whose far ends are
// both at infinity), an edge at infinity is strung between the two rays'
// direction vertices, and the walk moves to the cell across the leading
// ray. The edge crossed becomes the trailing ray of the next cell, which
// pins the gap there; the walk closes when it re-crosses into the
// starting cell over the starting gap's trailing ray.
//
// A cell pinched between parallel bisectors borders infinity on two
// sides; the walk passes through it twice and it receives two edges at
// infinity.
func (w *WingedEdge) buildPolygonAtInfinity() error {
	var start *Polygon
	var startTrailing, startLeading *Edge
	for _, p := range w.polygons {
		ti, li, ok := findGap(p, nil)
		if ok {
			start = p
			startTrailing = p.edges[ti]
			startLeading = p.edges[li]
			break
		}
	}
	if start == nil {
		return fmt.Errorf("%w: no unbounded cell to anchor the polygon at infinity", ErrInvalidWingedEdge)
	}

	pinf := &Polygon{atInfinity: true, index: -1}
	w.polygons = append(w.polygons, pinf)
	w.polygonAtInfinity = pinf

	cur := start
	trailing, leading := startTrailing, startLeading
	for steps := 0; ; steps++ {
		if steps > 2*len(w.polygons)+4 {
			return fmt.Errorf("%w: walk around the polygon at infinity did not close", ErrInvalidWingedEdge)
		}

		einf := &Edge{
			start:     trailing.end,
			end:       leading.end,
			polyLeft:  pinf,
			polyRight: cur,
		}
		w.edges = append(w.edges, einf)
		trailing.end.edges = append(trailing.end.edges, einf)
		leading.end.edges = append(leading.end.edges, einf)
		cur.insertEdgeAt(einf, indexOfEdge(cur.edges, trailing)+1)
		pinf.edges = append(pinf.edges, einf)

		next := leading.otherPoly(cur)
		if next == nil {
			return fmt.Errorf("%w: leading ray %s does not border %s", ErrInvalidWingedEdge, leading.String(), cur.String())
		}
		arrival := leading
		cur = next
		if cur == start && arrival == startTrailing {
			break
		}

		ti, li, ok := findGap(cur, arrival)
		if !ok {
			return fmt.Errorf("%w: no gap with trailing ray %s in %s", ErrInvalidWingedEdge, arrival.String(), cur.String())
		}
		trailing, leading = cur.edges[ti], cur.edges[li]
	}
	return nil
}

// findGap locates a gap in cell p's clockwise edge ring: a cyclically
// consecutive pair of edges whose far ends are both vertices at infinity,
// returned as (trailing, leading) indices.
//
// When arrival is non-nil the walk has just crossed into p over that ray,
// which must be the gap's trailing edge; this disambiguates cells with
// more than one gap. For a two-edge cell both cyclic pairs qualify
// formally, so the real gap is the pair whose clockwise span between the
// edges' ordering angles does not contain the cell's finite boundary
// vertex.
func findGap(p *Polygon, arrival *Edge) (trailing, leading int, ok bool) {
	n := len(p.edges)
	if n < 2 {
		return 0, 0, false
	}

	var candidates []int
	for i := range p.edges {
		a := p.edges[i]
		b := p.edges[(i+1)%n]
		if a.AtInfinity() || b.AtInfinity() {
			continue
		}
		if a.end == nil || b.end == nil || !a.end.atInfinity || !b.end.atInfinity {
			continue
		}
		// Rays joined at a finite vertex wrap the cell boundary, not a
		// gap, except in the two-edge case which is resolved below.
		if n > 2 && a.sharedVertex(b) != nil {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}

	if arrival != nil {
		for _, i := range candidates {
			if p.edges[i] == arrival {
				return i, (i + 1) % n, true
			}
		}
		return 0, 0, false
	}

	if n == 2 && len(candidates) == 2 {
		i := twoEdgeGap(p)
		return i, (i + 1) % n, true
	}
	return candidates[0], (candidates[0] + 1) % n, true
}

// twoEdgeGap picks the gap orientation for a cell of exactly two rays:
// the pair whose clockwise span between the rays' ordering angles does
// not contain the direction of their shared finite vertex.
func twoEdgeGap(p *Polygon) int {
	e0, e1 := p.edges[0], p.edges[1]
	v := e0.sharedVertex(e1)
	if v == nil || v.atInfinity {
		return 0
	}

	angleAbout := func(x, y float64) float64 {
		return math.Atan2(y-p.site.Y(), x-p.site.X())
	}
	a0 := angleAbout(e0.orderingPoint().Coordinates())
	a1 := angleAbout(e1.orderingPoint().Coordinates())
	av := angleAbout(v.pt.Coordinates())

	if cwSpanContains(a0, a1, av) {
		return 1
	}
	return 0
}

// cwSpanContains reports whether sweeping clockwise (decreasing angle,
// wrapping at -π) from angle `from` to angle `to` passes through angle q.
func cwSpanContains(from, to, q float64) bool {
	cwDistance := func(a, b float64) float64 {
		d := math.Mod(a-b, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}
	return cwDistance(from, q) < cwDistance(from, to)
}
