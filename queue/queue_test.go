package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a minimal queue element carrying the back-index the queue
// maintains through the setIndex hook.
type item struct {
	priority int
	index    int
}

func newTestQueue() *PriorityQueue[*item] {
	return New(
		func(a, b *item) bool { return a.priority > b.priority },
		func(it *item, i int) { it.index = i },
	)
}

func TestPriorityQueue_Order(t *testing.T) {
	pq := newTestQueue()
	for _, p := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		pq.Add(&item{priority: p})
	}

	require.Equal(t, 8, pq.Len())
	assert.Equal(t, 9, pq.Peek().priority)

	var popped []int
	for !pq.IsEmpty() {
		popped = append(popped, pq.Pop().priority)
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, popped)
}

func TestPriorityQueue_IndexMaintained(t *testing.T) {
	pq := newTestQueue()
	items := make([]*item, 0, 10)
	for p := range 10 {
		it := &item{priority: p}
		items = append(items, it)
		pq.Add(it)
	}

	// Every live element's stored index must point back at itself.
	for _, it := range items {
		require.GreaterOrEqual(t, it.index, 0)
		require.Less(t, it.index, pq.Len())
		require.Same(t, it, pq.core.items[it.index])
	}

	top := pq.Pop()
	assert.Equal(t, Removed, top.index, "popped element's index is cleared")
}

func TestPriorityQueue_RemoveInterior(t *testing.T) {
	pq := newTestQueue()
	items := make([]*item, 0, 8)
	for p := range 8 {
		it := &item{priority: p}
		items = append(items, it)
		pq.Add(it)
	}

	// Delete an element from the middle of the heap via its back-index.
	target := items[3]
	removed := pq.Remove(target.index)
	assert.Same(t, target, removed)
	assert.Equal(t, Removed, target.index)
	assert.Equal(t, 7, pq.Len())

	var popped []int
	for !pq.IsEmpty() {
		popped = append(popped, pq.Pop().priority)
	}
	assert.Equal(t, []int{7, 6, 5, 4, 2, 1, 0}, popped, "remaining order intact without the removed element")
}

func TestPriorityQueue_EmptyPanics(t *testing.T) {
	pq := newTestQueue()
	assert.Panics(t, func() { pq.Peek() })
	assert.Panics(t, func() { pq.Pop() })
}
