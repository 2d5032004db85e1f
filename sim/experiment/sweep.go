package experiment

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/timeshare-sim/timeshare-sim/sim"
	"github.com/timeshare-sim/timeshare-sim/sim/trace"
)

// SweepOptions controls how a sweep is executed.
type SweepOptions struct {
	// Seed keys every run's PartitionedRNG. All terminal counts share it, so
	// runs see common random numbers.
	Seed int64
	// Parallelism bounds concurrent runs; values <= 0 mean GOMAXPROCS.
	Parallelism int
	// TraceLevel enables per-run dispatch traces.
	TraceLevel trace.TraceLevel
}

// newVariates builds the random source for one run. Called concurrently.
var newVariates = func(cfg sim.RunConfig) sim.VariateSource {
	return sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
}

// RunOutcome is one completed run of the sweep.
type RunOutcome struct {
	Result  sim.RunResult
	Summary *trace.Summary // nil unless tracing was enabled
}

// Sweep runs one simulation per terminal count in p and returns the outcomes
// ordered by terminal count. Each run gets its own Simulator and RNG; runs are
// independent and may execute concurrently. The first failing run cancels the
// rest and its error is returned.
func Sweep(ctx context.Context, p Params, opts SweepOptions) ([]RunOutcome, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	counts := p.TerminalCounts()
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	logrus.Infof("Sweeping %d terminal counts (%d..%d by %d), parallelism=%d, seed=%d",
		len(counts), p.MinTerminals, p.MaxTerminals, p.TerminalIncrement, limit, opts.Seed)

	outcomes := make([]RunOutcome, len(counts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, n := range counts {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := runOne(p.RunConfig(n, opts.Seed), opts.TraceLevel)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// runOne executes a single run, converting a core invariant panic into an error.
func runOne(cfg sim.RunConfig, level trace.TraceLevel) (out RunOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run with %d terminals failed: %v", cfg.NumTerminals, r)
		}
	}()

	s, err := sim.NewSimulator(cfg, newVariates(cfg))
	if err != nil {
		return RunOutcome{}, fmt.Errorf("run with %d terminals: %w", cfg.NumTerminals, err)
	}
	if level.Enabled() {
		s.Trace = trace.NewRunTrace()
	}
	out.Result = s.Run()
	if s.Trace != nil {
		out.Summary = trace.Summarize(s.Trace)
		logrus.Infof("Trace for %d terminals: runs=%v completions=%v mean runs/job=%.3f max=%d migrations=%d",
			cfg.NumTerminals, out.Summary.Runs, out.Summary.Completions,
			out.Summary.MeanRunsPerJob, out.Summary.MaxRunsPerJob, out.Summary.Migrations)
	}
	return out, nil
}

// Results extracts the run results from outcomes, preserving order.
func Results(outcomes []RunOutcome) []sim.RunResult {
	results := make([]sim.RunResult, len(outcomes))
	for i, o := range outcomes {
		results[i] = o.Result
	}
	return results
}
