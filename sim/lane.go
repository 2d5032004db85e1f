package sim

import (
	"fmt"
	"strconv"
)

// NumLanes is the number of CPUs in the modeled computer.
const NumLanes = 2

// LaneID indexes a lane. Internally 0-based; rendered 1-based for humans.
type LaneID int

const (
	// NoLane marks events that are not bound to a lane (Arrival, Terminate).
	NoLane LaneID = -1
	Lane1  LaneID = 0
	Lane2  LaneID = 1
)

func (id LaneID) String() string {
	if id == NoLane {
		return "none"
	}
	return strconv.Itoa(int(id) + 1)
}

// Valid reports whether id names one of the NumLanes lanes.
func (id LaneID) Valid() bool {
	return id >= 0 && id < NumLanes
}

// Lane is one CPU with its dedicated FIFO wait queue and a single-capacity
// service slot. Lanes are independent except for the cross-lane idle check
// performed by the dispatcher.
type Lane struct {
	ID    LaneID
	WaitQ *WaitQueue
	slot  *Job
}

func newLane(id LaneID) *Lane {
	return &Lane{ID: id, WaitQ: &WaitQueue{}}
}

// Busy reports whether the service slot is occupied.
func (l *Lane) Busy() bool {
	return l.slot != nil
}

// Occupancy returns the number of jobs in the service slot (0 or 1).
func (l *Lane) Occupancy() int {
	if l.slot == nil {
		return 0
	}
	return 1
}

// NeedsStart reports whether the lane is idle while jobs are waiting.
// The dispatcher never leaves a lane in this state after an event.
func (l *Lane) NeedsStart() bool {
	return l.slot == nil && l.WaitQ.Len() > 0
}

// InService returns a copy of the job currently in the slot.
func (l *Lane) InService() (Job, bool) {
	if l.slot == nil {
		return Job{}, false
	}
	return *l.slot, true
}

// load moves j into the service slot. Panics if the slot is occupied.
func (l *Lane) load(j Job) {
	if l.slot != nil {
		panic(fmt.Sprintf("lane %s: load %v while %v is in service", l.ID, j, *l.slot))
	}
	l.slot = &j
}

// unload removes and returns the job in the service slot.
// Panics if the slot is empty.
func (l *Lane) unload() Job {
	if l.slot == nil {
		panic(fmt.Sprintf("lane %s: end of run with an empty service slot", l.ID))
	}
	j := *l.slot
	l.slot = nil
	return j
}

func (l *Lane) String() string {
	if l.slot == nil {
		return fmt.Sprintf("lane %s: idle queue=%s", l.ID, l.WaitQ)
	}
	return fmt.Sprintf("lane %s: running %v queue=%s", l.ID, *l.slot, l.WaitQ)
}
