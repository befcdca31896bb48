package voronoi

import (
	"fmt"

	"github.com/mikenye/voronoi/geometry"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/wingededge"
)

// noNode is the nil handle of the beachline arena.
const noNode = -1

// beachline is the binary tree of parabolic arcs on the lower envelope of
// the parabolas with foci at the processed generators and directrix at the
// sweepline. Leaves are arcs; internal nodes are breakpoints carrying the
// two cells whose parabolas meet there and the edge the breakpoint traces.
//
// Parent pointers, child pointers and the leaf sibling links form a cyclic
// graph, so nodes live in an arena addressed by integer handles rather
// than owning references; a removed node leaves a tombstone.
type beachline struct {
	nodes []beachNode
	root  int
}

// beachNode is one arena slot: a leaf arc or an internal breakpoint.
type beachNode struct {
	parent int
	left   int
	right  int

	// Leaf fields.
	cell    *wingededge.Polygon
	prevArc int
	nextArc int
	pending *event

	// Internal (breakpoint) fields. cellLeft is the cell of the rightmost
	// leaf in the left subtree, cellRight the cell of the leftmost leaf in
	// the right subtree.
	cellLeft  *wingededge.Polygon
	cellRight *wingededge.Polygon
	edge      *wingededge.Edge

	dead bool
}

func newBeachline() beachline {
	return beachline{root: noNode}
}

func (b *beachline) isLeaf(i int) bool {
	return b.nodes[i].left == noNode
}

// newLeaf allocates a leaf arc for the given cell, initially unlinked.
func (b *beachline) newLeaf(cell *wingededge.Polygon) int {
	b.nodes = append(b.nodes, beachNode{
		parent:  noNode,
		left:    noNode,
		right:   noNode,
		cell:    cell,
		prevArc: noNode,
		nextArc: noNode,
	})
	return len(b.nodes) - 1
}

// newInternal allocates a breakpoint node over the given children.
func (b *beachline) newInternal(left, right int, cellLeft, cellRight *wingededge.Polygon, edge *wingededge.Edge) int {
	i := len(b.nodes)
	b.nodes = append(b.nodes, beachNode{
		parent:    noNode,
		left:      left,
		right:     right,
		prevArc:   noNode,
		nextArc:   noNode,
		cellLeft:  cellLeft,
		cellRight: cellRight,
		edge:      edge,
	})
	b.nodes[left].parent = i
	b.nodes[right].parent = i
	return i
}

// replaceChild rewires parent's link from old to new; with parent ==
// noNode, new becomes the root.
func (b *beachline) replaceChild(parent, old, new int) {
	b.nodes[new].parent = parent
	if parent == noNode {
		b.root = new
		return
	}
	if b.nodes[parent].left == old {
		b.nodes[parent].left = new
	} else {
		b.nodes[parent].right = new
	}
}

// breakpointX returns the x-coordinate of an internal node's breakpoint at
// the given sweepline height.
func (b *beachline) breakpointX(i int, directrix float64) (float64, error) {
	n := &b.nodes[i]
	return geometry.ParabolicCut(n.cellLeft.Site(), n.cellRight.Site(), directrix)
}

// locateArc descends from the root and returns the leaf whose arc covers
// abscissa x with the sweepline at directrix.
func (b *beachline) locateArc(x, directrix float64) (int, error) {
	i := b.root
	for !b.isLeaf(i) {
		bx, err := b.breakpointX(i, directrix)
		if err != nil {
			return noNode, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		if x < bx {
			i = b.nodes[i].left
		} else {
			i = b.nodes[i].right
		}
	}
	return i, nil
}

// splitArc replaces the arc at leaf with a three-arc subtree: a clone of
// the old arc on the left, a new arc for cell in the middle, and the old
// arc on the right. The two new breakpoints trace a single shared edge
// bordering both cells: the left breakpoint will grow one of its ends,
// the right breakpoint the other.
//
// Returns the handle of the new middle arc.
func (b *beachline) splitArc(leaf int, cell *wingededge.Polygon, we *wingededge.WingedEdge) int {
	oldCell := b.nodes[leaf].cell
	oldPrev := b.nodes[leaf].prevArc
	parent := b.nodes[leaf].parent

	edge := we.AddEdge(oldCell, cell)

	clone := b.newLeaf(oldCell)
	mid := b.newLeaf(cell)
	inner := b.newInternal(clone, mid, oldCell, cell, edge)
	outer := b.newInternal(inner, leaf, cell, oldCell, edge)
	b.replaceChild(parent, leaf, outer)

	// Arc order becomes: prev, clone, mid, leaf, next.
	b.nodes[clone].prevArc = oldPrev
	b.nodes[clone].nextArc = mid
	b.nodes[mid].prevArc = clone
	b.nodes[mid].nextArc = leaf
	b.nodes[leaf].prevArc = mid
	if oldPrev != noNode {
		b.nodes[oldPrev].nextArc = clone
	}
	return mid
}

// insertColinear handles the degenerate insertion when the new generator
// shares its y-coordinate with the located arc's generator and the
// beachline holds no arc above the new site, only a point. A single
// breakpoint is created between the two arcs, ordered by x, tracing one
// new edge.
//
// Returns the handle of the new arc.
func (b *beachline) insertColinear(leaf int, cell *wingededge.Polygon, we *wingededge.WingedEdge) int {
	oldCell := b.nodes[leaf].cell
	parent := b.nodes[leaf].parent

	edge := we.AddEdge(oldCell, cell)
	mid := b.newLeaf(cell)

	if cell.Site().X() >= oldCell.Site().X() {
		inner := b.newInternal(leaf, mid, oldCell, cell, edge)
		b.replaceChild(parent, leaf, inner)

		oldNext := b.nodes[leaf].nextArc
		b.nodes[mid].prevArc = leaf
		b.nodes[mid].nextArc = oldNext
		b.nodes[leaf].nextArc = mid
		if oldNext != noNode {
			b.nodes[oldNext].prevArc = mid
		}
	} else {
		inner := b.newInternal(mid, leaf, cell, oldCell, edge)
		b.replaceChild(parent, leaf, inner)

		oldPrev := b.nodes[leaf].prevArc
		b.nodes[mid].prevArc = oldPrev
		b.nodes[mid].nextArc = leaf
		b.nodes[leaf].prevArc = mid
		if oldPrev != noNode {
			b.nodes[oldPrev].nextArc = mid
		}
	}
	return mid
}

// removal reports the outcome of removeArc: the arc's former neighbors,
// now adjacent, and the two edges that received the new vertex.
type removal struct {
	prev     int
	next     int
	incoming [2]*wingededge.Edge
}

// removeArc deletes the middle arc m from the beachline at a circle
// event, creating the Voronoi vertex at center.
//
// The arc's parent is one of the two breakpoints flanking m; the other is
// found by walking up the tree. Both flanking edges receive the vertex as
// their next endpoint, attached in clockwise order around it as seen from
// the sweep direction (encoded by which child of its parent m was). The
// far breakpoint survives, separating m's former neighbors, and carries a
// brand-new edge emerging downward from the vertex.
func (b *beachline) removeArc(m int, center point.Point, we *wingededge.WingedEdge) (removal, error) {
	node := &b.nodes[m]
	prev, next := node.prevArc, node.nextArc
	if prev == noNode || next == noNode {
		return removal{}, fmt.Errorf("%w: circle event on an arc without two neighbors", ErrInvariantViolation)
	}

	parent := node.parent
	mIsLeft := b.nodes[parent].left == m

	// The parent holds the near breakpoint. The far breakpoint is the
	// lowest ancestor whose subtree boundary runs on m's other side.
	far := noNode
	child, anc := parent, b.nodes[parent].parent
	for anc != noNode {
		if mIsLeft {
			if b.nodes[anc].left != child {
				far = anc
				break
			}
		} else {
			if b.nodes[anc].right != child {
				far = anc
				break
			}
		}
		child, anc = anc, b.nodes[anc].parent
	}
	if far == noNode {
		return removal{}, fmt.Errorf("%w: no far breakpoint for arc removal", ErrInvariantViolation)
	}

	nearEdge := b.nodes[parent].edge
	farEdge := b.nodes[far].edge
	leftEdge, rightEdge := farEdge, nearEdge
	if !mIsLeft {
		leftEdge, rightEdge = nearEdge, farEdge
	}

	// The vertex's incident ring starts clockwise: the edge arriving from
	// the upper left, the edge arriving from the upper right, then the
	// edge leaving downward.
	v := we.AddVertex(center)
	leftEdge.AttachVertex(v)
	rightEdge.AttachVertex(v)

	// Snip m and its parent; promote the near sibling.
	sibling := b.nodes[parent].right
	if !mIsLeft {
		sibling = b.nodes[parent].left
	}
	b.replaceChild(b.nodes[parent].parent, parent, sibling)

	// The surviving breakpoint now separates m's former neighbors and
	// traces a new edge downward from the vertex.
	newEdge := we.AddEdge(b.nodes[prev].cell, b.nodes[next].cell)
	newEdge.AttachVertex(v)
	b.nodes[far].cellLeft = b.nodes[prev].cell
	b.nodes[far].cellRight = b.nodes[next].cell
	b.nodes[far].edge = newEdge

	b.nodes[prev].nextArc = next
	b.nodes[next].prevArc = prev

	b.nodes[m].dead = true
	b.nodes[parent].dead = true

	return removal{
		prev:     prev,
		next:     next,
		incoming: [2]*wingededge.Edge{leftEdge, rightEdge},
	}, nil
}
