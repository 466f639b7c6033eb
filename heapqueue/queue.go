package heapqueue

import "container/heap"

// item is one entry in the heap; index tracks its current slot so
// heap.Fix and heap.Remove can be driven from a Handle in O(log n).
type item struct {
	value interface{}
	cost  float64
	index int
}

// Handle is a stable reference to a queued item. It remains valid until
// the item is popped or explicitly removed.
type Handle struct {
	it *item
}

// Cost returns the handle's current cost.
func (h *Handle) Cost() float64 { return h.it.cost }

// Value returns the value the handle was pushed with.
func (h *Handle) Value() interface{} { return h.it.value }

// innerHeap implements container/heap.Interface over *item, ordered by
// ascending cost.
type innerHeap []*item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is a mutable min-heap of (value, cost) pairs.
type Queue struct {
	h innerHeap
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Len returns the number of items currently queued.
func (q *Queue) Len() int { return q.h.Len() }

// Push adds value at the given cost and returns a handle for later
// Update/Remove calls.
func (q *Queue) Push(value interface{}, cost float64) *Handle {
	it := &item{value: value, cost: cost}
	heap.Push(&q.h, it)
	return &Handle{it: it}
}

// Update revises h's cost in place, restoring the heap invariant. It is a
// no-op if h has already been popped or removed.
func (q *Queue) Update(h *Handle, cost float64) {
	if h.it.index < 0 {
		return
	}
	h.it.cost = cost
	heap.Fix(&q.h, h.it.index)
}

// Remove drops h from the queue before it would naturally be popped. It
// is a no-op if h has already been popped or removed.
func (q *Queue) Remove(h *Handle) {
	if h.it.index < 0 {
		return
	}
	heap.Remove(&q.h, h.it.index)
	h.it.index = -1
}

// Pop removes and returns the lowest-cost item. ok is false when the
// queue is empty.
func (q *Queue) Pop() (value interface{}, cost float64, ok bool) {
	if q.h.Len() == 0 {
		return nil, 0, false
	}
	it := heap.Pop(&q.h).(*item)
	return it.value, it.cost, true
}

// Peek returns the lowest-cost item without removing it. ok is false
// when the queue is empty.
func (q *Queue) Peek() (value interface{}, cost float64, ok bool) {
	if q.h.Len() == 0 {
		return nil, 0, false
	}
	top := q.h[0]
	return top.value, top.cost, true
}
