package bvh

// costQueue is a binary min-heap keyed by a float64 cost, the same
// bubble-up/trickle-down array implementation go-detour's nodeQueue uses
// for its A*-style open list, adapted here to carry an arbitrary BVH node
// pointer plus the inherited cost accumulated on the path to it, instead of
// a *Node and its Total field.
type costQueueEntry[T any] struct {
	node      *Node[T]
	inherited float64
}

type costQueue[T any] struct {
	heap []costQueueEntry[T]
}

func newCostQueue[T any]() *costQueue[T] {
	return &costQueue[T]{heap: make([]costQueueEntry[T], 0, 16)}
}

func (q *costQueue[T]) empty() bool {
	return len(q.heap) == 0
}

func (q *costQueue[T]) push(n *Node[T], inherited float64) {
	q.heap = append(q.heap, costQueueEntry[T]{node: n, inherited: inherited})
	q.bubbleUp(len(q.heap) - 1)
}

func (q *costQueue[T]) pop() costQueueEntry[T] {
	top := q.heap[0]
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.trickleDown(0)
	}
	return top
}

func (q *costQueue[T]) key(i int) float64 {
	e := q.heap[i]
	return e.node.Box.SurfaceArea() + e.inherited
}

func (q *costQueue[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.key(parent) <= q.key(i) {
			break
		}
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
	}
}

func (q *costQueue[T]) trickleDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.key(left) < q.key(smallest) {
			smallest = left
		}
		if right < n && q.key(right) < q.key(smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
}
