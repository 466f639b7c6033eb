package heapqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueuePopsInCostOrder(t *testing.T) {
	q := New()
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)

	var order []string
	for q.Len() > 0 {
		v, _, ok := q.Pop()
		require.True(t, ok)
		order = append(order, v.(string))
	}
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestQueueUpdateReordersItem(t *testing.T) {
	q := New()
	q.Push("a", 1)
	hb := q.Push("b", 5)

	q.Update(hb, 0)

	v, cost, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, 0.0, cost)
}

func TestQueueRemove(t *testing.T) {
	q := New()
	ha := q.Push("a", 1)
	q.Push("b", 2)

	q.Remove(ha)
	require.Equal(t, 1, q.Len())

	v, _, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestQueueEmptyPeekPop(t *testing.T) {
	q := New()
	_, _, ok := q.Peek()
	require.False(t, ok)
	_, _, ok = q.Pop()
	require.False(t, ok)
}
