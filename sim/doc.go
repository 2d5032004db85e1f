// Package sim provides the core discrete-event simulation engine for a
// time-shared computer with two CPUs serving a pool of terminals.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go / event_list.go: event kinds, tie-break priority, and the future event list (clock)
//   - lane.go / queue.go: a CPU with its FIFO wait queue and single-capacity service slot
//   - dispatcher.go: arrival admission and round-robin preemptive run start/end
//   - simulator.go: the event loop that ties the above together
//   - metrics.go: tally and time-weighted statistics, per-run results
//
// # Determinism
//
// All randomness flows through a VariateSource. The default PartitionedRNG keeps
// think-time, service-time and lane-selection draws on isolated streams, so two
// runs with the same seed and RunConfig produce identical results.
//
// # Failure model
//
// Programming-invariant violations (scheduling in the past, starting a run on an
// empty queue, ending a run on an empty slot) panic. Callers that need an error
// instead, such as the experiment driver in sim/experiment, recover per run.
package sim
