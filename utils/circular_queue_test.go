package utils

import (
	"slices"
	"testing"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	if q.Len() != 0 {
		t.Fatalf("expected an empty queue, got len=%d", q.Len())
	}
	if _, ok := q.Latest(); ok {
		t.Fatalf("expected no latest element in an empty queue")
	}
	for i := 1; i <= 5; i++ {
		q.Append(i)
	}

	if got := slices.Collect(q.Iter()); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if latest, ok := q.Latest(); !ok || latest != 5 {
		t.Fatalf("expected latest 5, got %d (%v)", latest, ok)
	}
	if q.Len() != 3 {
		t.Fatalf("expected a full queue to stay at its capacity, got %d", q.Len())
	}
}

func TestCircularQueuePartiallyFilled(t *testing.T) {
	q := NewCircularQueue[string](4)
	q.Append("a")
	q.Append("b")

	if got := slices.Collect(q.Iter()); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", got)
	}
	if latest, _ := q.Latest(); latest != "b" {
		t.Fatalf("expected latest b, got %q", latest)
	}
}

func TestCircularQueueZeroCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a zero capacity queue to be rejected")
		}
	}()
	NewCircularQueue[int](0)
}
