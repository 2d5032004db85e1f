// Tracks per-run statistics: response-time tallies and time-weighted
// queue length and slot occupancy for each lane.

package sim

import "errors"

// ErrNoObservations is returned by Tally.Mean when nothing was observed.
var ErrNoObservations = errors.New("no observations recorded")

// Tally is a count/sum average over discrete observations.
type Tally struct {
	Count int
	Sum   float64
}

// Observe records one value.
func (t *Tally) Observe(v float64) {
	t.Count++
	t.Sum += v
}

// Mean returns Sum/Count, or ErrNoObservations if Count is zero.
func (t Tally) Mean() (float64, error) {
	if t.Count == 0 {
		return 0, ErrNoObservations
	}
	return t.Sum / float64(t.Count), nil
}

// TimeWeighted integrates a piecewise-constant value over simulated time.
// The integration origin is time zero with value zero.
type TimeWeighted struct {
	Area       float64 // Integral of Value over [0, LastChange]
	LastChange float64 // Time of the most recent update
	Value      float64 // Value held since LastChange
}

// Set records that the value changed to v at time now.
func (tw *TimeWeighted) Set(now, v float64) {
	tw.Area += (now - tw.LastChange) * tw.Value
	tw.LastChange = now
	tw.Value = v
}

// Finalize extends the integral through now without changing the value.
func (tw *TimeWeighted) Finalize(now float64) {
	tw.Set(now, tw.Value)
}

// Average returns Area divided by elapsed time; zero when no time elapsed.
func (tw TimeWeighted) Average(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return tw.Area / elapsed
}

// RunStatistics aggregates everything observed during one terminal-count run.
// A fresh RunStatistics is created per run so nothing leaks between runs.
type RunStatistics struct {
	Responses   [NumLanes]Tally        // response time per lane
	QueueLength [NumLanes]TimeWeighted // wait queue size per lane
	Occupancy   [NumLanes]TimeWeighted // service slot size (0/1) per lane
	Admitted    int                    // jobs created by arrivals
	Completed   int                    // jobs that finished their last run
}

// NewRunStatistics returns zeroed statistics.
func NewRunStatistics() *RunStatistics {
	return &RunStatistics{}
}

// Finalize brings every time-weighted integral up to now.
func (s *RunStatistics) Finalize(now float64) {
	for i := 0; i < NumLanes; i++ {
		s.QueueLength[i].Finalize(now)
		s.Occupancy[i].Finalize(now)
	}
}

// LaneResult holds the per-lane estimates reported for one run.
type LaneResult struct {
	ResponseTime float64 // mean response time; 0 when Completions is 0
	Completions  int     // number of response-time observations
	QueueLength  float64 // time-average wait queue length
	Utilization  float64 // fraction of time the slot was occupied
}

// RunResult is the outcome of one terminal-count run.
type RunResult struct {
	NumTerminals int
	EndTime      float64 // simulated time of the Terminate event
	Admitted     int
	Completed    int
	Lanes        [NumLanes]LaneResult
}

// Result turns the accumulated statistics into per-lane estimates.
// Call Finalize first so the integrals cover the whole run.
func (s *RunStatistics) Result(numTerminals int, elapsed float64) RunResult {
	r := RunResult{
		NumTerminals: numTerminals,
		EndTime:      elapsed,
		Admitted:     s.Admitted,
		Completed:    s.Completed,
	}
	for i := 0; i < NumLanes; i++ {
		mean, err := s.Responses[i].Mean()
		if err != nil {
			mean = 0
		}
		r.Lanes[i] = LaneResult{
			ResponseTime: mean,
			Completions:  s.Responses[i].Count,
			QueueLength:  s.QueueLength[i].Average(elapsed),
			Utilization:  s.Occupancy[i].Average(elapsed),
		}
	}
	return r
}
