// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/timeshare-sim/timeshare-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, both lanes,
// run statistics, and the event loop for a single terminal-count run.
// A Simulator is used for exactly one run; create a new one per run.
type Simulator struct {
	Config RunConfig
	// Events is the clock and future event list
	Events *EventList
	Lanes  [NumLanes]*Lane
	Stats  *RunStatistics
	// Trace records dispatch decisions when non-nil
	Trace *trace.RunTrace

	variates    VariateSource
	nextJobID   int
	initialized bool
	terminated  bool
}

// NewSimulator validates cfg and returns a Simulator drawing from variates.
// If variates is nil, a PartitionedRNG keyed by cfg.Seed is used.
func NewSimulator(cfg RunConfig, variates VariateSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	if variates == nil {
		variates = NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	}
	s := &Simulator{
		Config:   cfg,
		Events:   NewEventList(),
		Stats:    NewRunStatistics(),
		variates: variates,
	}
	for i := 0; i < NumLanes; i++ {
		s.Lanes[i] = newLane(LaneID(i))
	}
	return s, nil
}

// Now returns the current simulated time.
func (sim *Simulator) Now() float64 {
	return sim.Events.Now()
}

// Terminated reports whether the Terminate event has been processed.
func (sim *Simulator) Terminated() bool {
	return sim.terminated
}

// Initialize schedules the first arrival from every terminal, each after an
// independent think time. Panics if called twice.
func (sim *Simulator) Initialize() {
	if sim.initialized {
		panic("Simulator.Initialize: already initialized")
	}
	sim.initialized = true
	for i := 0; i < sim.Config.NumTerminals; i++ {
		sim.Events.Schedule(sim.Now()+sim.variates.Exponential(sim.Config.MeanThink, StreamThink), EventArrival, NoLane)
	}
	logrus.Debugf("[t=%.4f] Scheduled first arrivals for %d terminals", sim.Now(), sim.Config.NumTerminals)
}

// Step advances the clock to the next event and processes it.
func (sim *Simulator) Step() Event {
	ev := sim.Events.Advance()
	logrus.Tracef("[t=%.4f] Executing %s", ev.Time, ev)
	switch ev.Kind {
	case EventArrival:
		sim.Arrive()
	case EventEndRun:
		sim.EndRun(ev.Lane)
	case EventTerminate:
		sim.terminated = true
	default:
		panic(fmt.Sprintf("Simulator.Step: unknown event kind %v", ev.Kind))
	}
	return ev
}

// Run executes the simulation until the Terminate event and returns the
// run-level estimates. Initializes the run if Initialize was not called.
func (sim *Simulator) Run() RunResult {
	if !sim.initialized {
		sim.Initialize()
	}
	for !sim.terminated {
		sim.Step()
	}
	now := sim.Now()
	sim.Stats.Finalize(now)
	result := sim.Stats.Result(sim.Config.NumTerminals, now)
	logrus.Infof("[t=%.4f] Run with %d terminals ended: %d admitted, %d completed",
		now, sim.Config.NumTerminals, result.Admitted, result.Completed)
	return result
}

// InFlight returns the number of jobs waiting or in service across all lanes.
func (sim *Simulator) InFlight() int {
	n := 0
	for _, l := range sim.Lanes {
		n += l.WaitQ.Len() + l.Occupancy()
	}
	return n
}

// CheckInvariants verifies the lane and conservation invariants that must
// hold between events. The idle check is skipped once the run is ending.
func (sim *Simulator) CheckInvariants() error {
	if got, want := sim.Stats.Completed+sim.InFlight(), sim.Stats.Admitted; got != want {
		return fmt.Errorf("conservation: completed %d + in flight %d != admitted %d",
			sim.Stats.Completed, sim.InFlight(), want)
	}
	if sim.endingRun() {
		return nil
	}
	for _, l := range sim.Lanes {
		if l.NeedsStart() {
			return fmt.Errorf("lane %s idle with %d waiting jobs at t=%v", l.ID, l.WaitQ.Len(), sim.Now())
		}
	}
	return nil
}

// endingRun reports whether the completion target has been reached.
func (sim *Simulator) endingRun() bool {
	return sim.Stats.Completed >= sim.Config.RequiredCompletions
}
