package sim

import (
	"container/heap"
	"fmt"
	"math"
)

// eventHeap implements heap.Interface over Event values.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].before(h[j]) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// EventList is the simulation clock together with the future event list.
// Events come out in ascending time; simultaneous events are ordered by kind
// (Terminate, then EndRun, then Arrival) and then by scheduling order.
//
// Thread-safety: NOT thread-safe. Owned by a single Simulator.
type EventList struct {
	now     float64
	events  eventHeap
	nextSeq uint64
}

// NewEventList creates an empty event list with the clock at zero.
func NewEventList() *EventList {
	l := &EventList{events: make(eventHeap, 0)}
	heap.Init(&l.events)
	return l
}

// Now returns the current simulated time.
func (l *EventList) Now() float64 {
	return l.now
}

// Len returns the number of pending events.
func (l *EventList) Len() int {
	return l.events.Len()
}

// Schedule inserts an event firing at time t. EndRun events name a valid
// lane; every other kind takes NoLane.
// Panics if t is earlier than the current simulated time or the lane does
// not fit the kind.
func (l *EventList) Schedule(t float64, kind EventKind, lane LaneID) {
	if math.IsNaN(t) || t < l.now {
		panic(fmt.Sprintf("EventList.Schedule: %s at %v is before current time %v", kind, t, l.now))
	}
	if kind == EventEndRun && !lane.Valid() {
		panic(fmt.Sprintf("EventList.Schedule: %s needs a lane, got %d", kind, int(lane)))
	}
	if kind != EventEndRun && lane != NoLane {
		panic(fmt.Sprintf("EventList.Schedule: %s is not bound to a lane, got lane %s", kind, lane))
	}
	l.nextSeq++
	heap.Push(&l.events, Event{Time: t, Kind: kind, Lane: lane, seq: l.nextSeq})
}

// Advance removes the earliest pending event and moves the clock to its time.
// Panics if the list is empty: a run must always end via an explicit
// Terminate event before the list is exhausted.
func (l *EventList) Advance() Event {
	if l.events.Len() == 0 {
		panic(fmt.Sprintf("EventList.Advance: no pending events at time %v", l.now))
	}
	ev := heap.Pop(&l.events).(Event)
	l.now = ev.Time
	return ev
}

// Peek returns the next event without removing it.
func (l *EventList) Peek() (Event, bool) {
	if l.events.Len() == 0 {
		return Event{}, false
	}
	return l.events[0], true
}
