// Package frontier provides typed wrappers around the gods containers used as
// search frontiers: a LIFO stack for dfs, a FIFO queue for bfs and a binary
// min-heap for astar.
package frontier

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Stack is a last-in-first-out frontier.
type Stack[T any] struct {
	s *arraystack.Stack
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{s: arraystack.New()}
}

// Push adds v on top of the stack.
func (st *Stack[T]) Push(v T) { st.s.Push(v) }

// Pop removes and returns the top of the stack.
func (st *Stack[T]) Pop() (T, bool) {
	v, ok := st.s.Pop()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of entries.
func (st *Stack[T]) Len() int { return st.s.Size() }

// Queue is a first-in-first-out frontier.
type Queue[T any] struct {
	q *linkedlistqueue.Queue
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: linkedlistqueue.New()}
}

// Push appends v at the back of the queue.
func (qu *Queue[T]) Push(v T) { qu.q.Enqueue(v) }

// Pop removes and returns the front of the queue.
func (qu *Queue[T]) Pop() (T, bool) {
	v, ok := qu.q.Dequeue()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of entries.
func (qu *Queue[T]) Len() int { return qu.q.Size() }

// Heap is a min-heap frontier ordered by a caller-supplied less function.
type Heap[T any] struct {
	h *binaryheap.Heap
}

// NewHeap returns an empty Heap. less(a, b) reports whether a pops before b.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	cmp := func(a, b interface{}) int {
		x, y := a.(T), b.(T)
		switch {
		case less(x, y):
			return -1
		case less(y, x):
			return 1
		default:
			return 0
		}
	}

	return &Heap[T]{h: binaryheap.NewWith(cmp)}
}

// Push inserts v.
func (hp *Heap[T]) Push(v T) { hp.h.Push(v) }

// Pop removes and returns the smallest entry.
func (hp *Heap[T]) Pop() (T, bool) {
	v, ok := hp.h.Pop()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of entries.
func (hp *Heap[T]) Len() int { return hp.h.Size() }
