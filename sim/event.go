package sim

import "fmt"

// EventKind identifies what happens when an Event fires.
type EventKind int

const (
	// EventArrival is a terminal submitting a new job after thinking.
	EventArrival EventKind = iota
	// EventEndRun is the end of a CPU run on a specific lane.
	EventEndRun
	// EventTerminate ends the current run.
	EventTerminate
)

func (k EventKind) String() string {
	switch k {
	case EventArrival:
		return "Arrival"
	case EventEndRun:
		return "EndRun"
	case EventTerminate:
		return "Terminate"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// eventKindPriority defines ordering for simultaneous events.
// Lower values are processed first.
var eventKindPriority = map[EventKind]int{
	EventTerminate: 0,
	EventEndRun:    1,
	EventArrival:   2,
}

// Event is a pending occurrence in the future event list.
type Event struct {
	Time float64   // Simulated time at which the event fires
	Kind EventKind // What the event does
	Lane LaneID    // Target lane for EventEndRun; NoLane otherwise

	seq uint64 // scheduling order, assigned by the EventList
}

func (e Event) String() string {
	if e.Kind == EventEndRun {
		return fmt.Sprintf("%s(lane %s)@%.6f", e.Kind, e.Lane, e.Time)
	}
	return fmt.Sprintf("%s@%.6f", e.Kind, e.Time)
}

// before reports whether e must be processed ahead of other.
// Order by: time → kind priority → scheduling order.
func (e Event) before(other Event) bool {
	if e.Time != other.Time {
		return e.Time < other.Time
	}
	pe, po := eventKindPriority[e.Kind], eventKindPriority[other.Kind]
	if pe != po {
		return pe < po
	}
	return e.seq < other.seq
}
