package wingededge

// collapseZeroLengthEdges merges the endpoints of every zero-length edge
// into a single vertex and removes the edge from the structure.
//
// Cocircular generators force the sweep to manufacture consecutive circle
// events with the same vertex; winged-edge construction needs degree-3
// vertices everywhere during the sweep, so the resulting zero-length edges
// cannot be removed mid-flight. The affected cells were flagged as the
// events were processed; this pass sweeps them all at once, after which
// the merged vertices have degree four or more.
func (w *WingedEdge) collapseZeroLengthEdges() {
	for _, p := range w.polygons {
		if !p.hasZeroLengthEdge {
			continue
		}
		for _, e := range append([]*Edge(nil), p.edges...) {
			if e.dead || !e.ZeroLength() {
				continue
			}
			w.collapseEdge(e)
		}
	}
	w.compactEdges()
	w.compactVertices()
}

// collapseEdge relabels every edge at e's end vertex to e's start vertex,
// splices the end vertex's incidence ring into the start vertex's ring at
// the position e occupies (preserving cyclic order), and removes e from
// both incident cells.
func (w *WingedEdge) collapseEdge(e *Edge) {
	keep, gone := e.start, e.end

	if keep == gone {
		// Both endpoints were already merged by an earlier collapse in a
		// chain of coincident vertices; e occurs twice in the ring.
		keep.edges = removeEdgeOccurrences(keep.edges, e)
		e.polyLeft.removeEdge(e)
		e.polyRight.removeEdge(e)
		e.dead = true
		return
	}

	for _, f := range gone.edges {
		if f == e {
			continue
		}
		if f.start == gone {
			f.start = keep
		}
		if f.end == gone {
			f.end = keep
		}
	}

	i := indexOfEdge(keep.edges, e)
	j := indexOfEdge(gone.edges, e)
	if i < 0 || j < 0 {
		// Incidence rings out of sync; drop the edge without splicing.
		keep.edges = removeEdgeOccurrences(keep.edges, e)
		gone.edges = removeEdgeOccurrences(gone.edges, e)
	} else {
		merged := make([]*Edge, 0, len(keep.edges)+len(gone.edges)-2)
		merged = append(merged, keep.edges[:i]...)
		merged = append(merged, gone.edges[j+1:]...)
		merged = append(merged, gone.edges[:j]...)
		merged = append(merged, keep.edges[i+1:]...)
		keep.edges = merged
	}

	e.polyLeft.removeEdge(e)
	e.polyRight.removeEdge(e)
	gone.dead = true
	e.dead = true
}

func indexOfEdge(edges []*Edge, e *Edge) int {
	for i, f := range edges {
		if f == e {
			return i
		}
	}
	return -1
}

func removeEdgeOccurrences(edges []*Edge, e *Edge) []*Edge {
	kept := edges[:0]
	for _, f := range edges {
		if f != e {
			kept = append(kept, f)
		}
	}
	return kept
}
