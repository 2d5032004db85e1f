package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	Admissions     map[int]int // lane → jobs admitted
	Runs           map[int]int // lane → CPU runs started
	Completions    map[int]int // lane → jobs completed
	MeanRunsPerJob float64     // over completed jobs
	MaxRunsPerJob  int
	Migrations     int // jobs that ran or completed on a lane other than their admission lane
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		Admissions:  make(map[int]int),
		Runs:        make(map[int]int),
		Completions: make(map[int]int),
	}
	if rt == nil {
		return summary
	}

	admittedOn := make(map[int]int, len(rt.Admissions))
	for _, a := range rt.Admissions {
		summary.Admissions[a.Lane]++
		admittedOn[a.JobID] = a.Lane
	}

	migrated := make(map[int]bool)
	runsPerJob := make(map[int]int)
	for _, r := range rt.Runs {
		summary.Runs[r.Lane]++
		runsPerJob[r.JobID]++
		if lane, ok := admittedOn[r.JobID]; ok && lane != r.Lane {
			migrated[r.JobID] = true
		}
	}

	totalRuns := 0
	for _, c := range rt.Completions {
		summary.Completions[c.Lane]++
		if lane, ok := admittedOn[c.JobID]; ok && lane != c.Lane {
			migrated[c.JobID] = true
		}
		n := runsPerJob[c.JobID]
		totalRuns += n
		if n > summary.MaxRunsPerJob {
			summary.MaxRunsPerJob = n
		}
	}
	if len(rt.Completions) > 0 {
		summary.MeanRunsPerJob = float64(totalRuns) / float64(len(rt.Completions))
	}
	summary.Migrations = len(migrated)

	return summary
}
