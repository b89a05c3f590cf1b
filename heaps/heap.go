package heaps

import "container/heap"

// Heap is a binary heap ordered by less: Pop always returns the element e for
// which less(e, x) holds against every other x (a min-heap for "<").
type Heap[T any] struct {
	q queue[T]
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{q: queue[T]{less: less}}
}

// From builds a heap from items in O(n). items is copied.
func From[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	h := &Heap[T]{q: queue[T]{less: less, items: append([]T(nil), items...)}}
	heap.Init(&h.q)

	return h
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.q.items) }

// Push inserts x.
func (h *Heap[T]) Push(x T) { heap.Push(&h.q, x) }

// Pop removes and returns the top element. It panics on an empty heap.
func (h *Heap[T]) Pop() T { return heap.Pop(&h.q).(T) }

// Peek returns the top element without removing it. It panics on an empty heap.
func (h *Heap[T]) Peek() T { return h.q.items[0] }

// queue adapts a slice to heap.Interface.
type queue[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (q queue[T]) Len() int           { return len(q.items) }
func (q queue[T]) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }
func (q queue[T]) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue[T]) Push(x any) { q.items = append(q.items, x.(T)) }

func (q *queue[T]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	q.items = old[:n-1]

	return item
}
