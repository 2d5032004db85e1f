// Package trace provides per-run dispatch recording for post-run analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AdmissionRecord captures a job arriving and being assigned to a lane.
type AdmissionRecord struct {
	JobID            int
	Lane             int // 1-based lane number
	Time             float64
	RemainingService float64
}

// RunRecord captures the start of a single CPU run.
type RunRecord struct {
	JobID    int
	Lane     int
	Start    float64
	Duration float64 // slice plus swap overhead
}

// CompletionRecord captures a job finishing its last run.
type CompletionRecord struct {
	JobID        int
	Lane         int
	Time         float64
	ResponseTime float64
}
