package wingededge

import "fmt"

// Validate checks the structural invariants of a finished winged-edge:
//
//   - every edge has two endpoints, each listing the edge as incident;
//   - every edge separates two distinct cells and appears exactly once in
//     each cell's edge list;
//   - every cell's edges form a connected cycle: cyclically consecutive
//     edges share a vertex;
//   - the vertex count does not exceed twice the edge count.
//
// Returns:
//   - error: nil when the structure is valid, otherwise an error wrapping
//     [ErrInvalidWingedEdge] describing the first violation found.
func (w *WingedEdge) Validate() error {
	for _, e := range w.edges {
		if e.start == nil || e.end == nil {
			return fmt.Errorf("%w: %s has an open endpoint", ErrInvalidWingedEdge, e.String())
		}
		for _, v := range [2]*Vertex{e.start, e.end} {
			if countEdgeOccurrences(v.edges, e) == 0 {
				return fmt.Errorf("%w: %s does not list %s as incident", ErrInvalidWingedEdge, v.String(), e.String())
			}
		}

		if e.polyLeft == nil || e.polyRight == nil {
			return fmt.Errorf("%w: %s is missing a bordering cell", ErrInvalidWingedEdge, e.String())
		}
		if e.polyLeft == e.polyRight {
			return fmt.Errorf("%w: %s has the same cell on both sides", ErrInvalidWingedEdge, e.String())
		}
		for _, p := range [2]*Polygon{e.polyLeft, e.polyRight} {
			if countEdgeOccurrences(p.edges, e) != 1 {
				return fmt.Errorf("%w: %s appears %d times in %s", ErrInvalidWingedEdge,
					e.String(), countEdgeOccurrences(p.edges, e), p.String())
			}
		}
	}

	for _, p := range w.polygons {
		n := len(p.edges)
		if n < 2 {
			return fmt.Errorf("%w: %s has %d edges, cannot form a cycle", ErrInvalidWingedEdge, p.String(), n)
		}
		for i, e := range p.edges {
			next := p.edges[(i+1)%n]
			if e.sharedVertex(next) == nil {
				return fmt.Errorf("%w: consecutive edges %s and %s of %s share no vertex",
					ErrInvalidWingedEdge, e.String(), next.String(), p.String())
			}
		}
	}

	if len(w.vertices) > 2*len(w.edges) {
		return fmt.Errorf("%w: %d vertices exceed twice the %d edges",
			ErrInvalidWingedEdge, len(w.vertices), len(w.edges))
	}
	return nil
}

func countEdgeOccurrences(edges []*Edge, e *Edge) int {
	count := 0
	for _, f := range edges {
		if f == e {
			count++
		}
	}
	return count
}
