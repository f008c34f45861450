package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvent struct {
	y, x float64
	tag  string
}

func (f fakeEvent) Key() Key { return Key{Y: f.y, X: f.x} }

func TestQueuePopsInKeyOrder(t *testing.T) {
	q := NewQueue()
	q.Push(fakeEvent{y: 3, x: 0, tag: "c"})
	q.Push(fakeEvent{y: 1, x: 5, tag: "a"})
	q.Push(fakeEvent{y: 1, x: 2, tag: "b"})
	q.Push(fakeEvent{y: 2, x: 0, tag: "d"})

	var order []string
	for !q.Empty() {
		order = append(order, q.Pop().(fakeEvent).tag)
	}
	assert.Equal(t, []string{"b", "a", "d", "c"}, order)
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	q := NewQueue()
	require.Nil(t, q.Peek())
	q.Push(fakeEvent{y: 1, x: 1})
	assert.Equal(t, 1, q.Len())
	peeked := q.Peek()
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, q.Pop(), peeked)
}
