package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelRuns captures every admission, CPU run, and completion.
	TraceLevelRuns TraceLevel = "runs"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone: true,
	TraceLevelRuns: true,
	"":             true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelRuns
}

// RunTrace collects dispatch records during one terminal-count run.
type RunTrace struct {
	Admissions  []AdmissionRecord
	Runs        []RunRecord
	Completions []CompletionRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace() *RunTrace {
	return &RunTrace{
		Admissions:  make([]AdmissionRecord, 0),
		Runs:        make([]RunRecord, 0),
		Completions: make([]CompletionRecord, 0),
	}
}

// RecordAdmission appends an admission record.
func (rt *RunTrace) RecordAdmission(record AdmissionRecord) {
	rt.Admissions = append(rt.Admissions, record)
}

// RecordRun appends a run record.
func (rt *RunTrace) RecordRun(record RunRecord) {
	rt.Runs = append(rt.Runs, record)
}

// RecordCompletion appends a completion record.
func (rt *RunTrace) RecordCompletion(record CompletionRecord) {
	rt.Completions = append(rt.Completions, record)
}
