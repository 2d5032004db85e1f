package sim

import (
	"testing"
)

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with jobs [A, B]
	wq := &WaitQueue{}
	wq.Enqueue(Job{ID: 1})
	wq.Enqueue(Job{ID: 2})

	// WHEN Peek() is called
	got, ok := wq.Peek()

	// THEN it returns the front element without removing it
	if !ok || got.ID != 1 {
		t.Errorf("Peek: got %v (ok=%v), want job 1", got, ok)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Peek_Empty(t *testing.T) {
	wq := &WaitQueue{}
	if _, ok := wq.Peek(); ok {
		t.Error("Peek on empty queue: got ok=true, want false")
	}
}

func TestWaitQueue_Dequeue_IsFIFO(t *testing.T) {
	// GIVEN a queue with jobs [1, 2, 3]
	wq := &WaitQueue{}
	for i := 1; i <= 3; i++ {
		wq.Enqueue(Job{ID: i})
	}

	// WHEN all are dequeued
	// THEN they come out oldest first and the queue ends empty
	for want := 1; want <= 3; want++ {
		got, ok := wq.Dequeue()
		if !ok || got.ID != want {
			t.Fatalf("Dequeue: got %v (ok=%v), want job %d", got, ok, want)
		}
	}
	if _, ok := wq.Dequeue(); ok {
		t.Error("Dequeue on drained queue: got ok=true")
	}
}

func TestWaitQueue_EnqueueCopiesValue(t *testing.T) {
	// GIVEN a job enqueued and then modified by the caller
	wq := &WaitQueue{}
	j := Job{ID: 1, RemainingService: 2}
	wq.Enqueue(j)
	j.RemainingService = -1

	// THEN the queued copy is unaffected
	got, _ := wq.Peek()
	if got.RemainingService != 2 {
		t.Errorf("queued job aliased caller value: remaining=%v", got.RemainingService)
	}
}

func TestWaitQueue_String(t *testing.T) {
	wq := &WaitQueue{}
	if wq.String() != "[]" {
		t.Errorf("empty String() = %q", wq.String())
	}
	wq.Enqueue(Job{ID: 3, ArrivalTime: 1, RemainingService: 0.5})
	want := "[job#3(arr=1.0000 rem=0.5000)]"
	if wq.String() != want {
		t.Errorf("String() = %q, want %q", wq.String(), want)
	}
}
