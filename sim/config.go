package sim

import (
	"fmt"
	"math"
)

// RunConfig holds the read-only parameters of a single terminal-count run.
type RunConfig struct {
	NumTerminals        int     // terminals cycling between think and submit (must be > 0)
	MeanThink           float64 // mean think time (>= 0)
	MeanService         float64 // mean total service time per job (> 0)
	Quantum             float64 // max CPU time per run (> 0)
	SwapOverhead        float64 // fixed cost added to every run (>= 0)
	RequiredCompletions int     // completions that end the run (must be > 0)
	Seed                int64   // master seed for the default PartitionedRNG
}

// Validate reports the first invalid field, if any.
func (c RunConfig) Validate() error {
	if c.NumTerminals <= 0 {
		return fmt.Errorf("number of terminals must be > 0, got %d", c.NumTerminals)
	}
	if c.RequiredCompletions <= 0 {
		return fmt.Errorf("required completions must be > 0, got %d", c.RequiredCompletions)
	}
	if err := checkFinite("mean think time", c.MeanThink, false); err != nil {
		return err
	}
	if err := checkFinite("mean service time", c.MeanService, true); err != nil {
		return err
	}
	if err := checkFinite("quantum", c.Quantum, true); err != nil {
		return err
	}
	return checkFinite("swap overhead", c.SwapOverhead, false)
}

func checkFinite(name string, v float64, strictlyPositive bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}
	if strictlyPositive && v <= 0 {
		return fmt.Errorf("%s must be > 0, got %v", name, v)
	}
	if v < 0 {
		return fmt.Errorf("%s must be >= 0, got %v", name, v)
	}
	return nil
}
