package utils

import (
	"iter"

	"github.com/oomph-ac/orbit/assert"
)

// CircularQueue is a fixed-capacity FIFO. Appending to a full queue overwrites the oldest element.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularQueue returns an empty queue that holds at most capacity elements. The capacity must be at least one.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	assert.IsTrue(capacity > 0, "circularqueue: capacity must be positive (got %d)", capacity)
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Latest returns the most recently appended element. The boolean ok is false if the queue is empty.
func (q *CircularQueue[T]) Latest() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.items[(q.head+q.size-1)%len(q.items)], true
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the number of elements currently held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Append adds an item, dropping the oldest one if the queue is full.
func (q *CircularQueue[T]) Append(item T) {
	if q.size == len(q.items) {
		q.items[q.head] = item
		q.head = (q.head + 1) % len(q.items)
		return
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
}
