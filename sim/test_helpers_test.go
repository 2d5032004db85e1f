package sim

// scriptedVariates replays fixed draws per stream and falls back to a seeded
// PartitionedRNG once a script is exhausted. Scripted exponential values are
// returned as-is, ignoring the requested mean.
type scriptedVariates struct {
	exponential map[string][]float64
	uniform     []float64
	fallback    *PartitionedRNG
}

func newScriptedVariates(seed int64) *scriptedVariates {
	return &scriptedVariates{
		exponential: make(map[string][]float64),
		fallback:    NewPartitionedRNG(NewSimulationKey(seed)),
	}
}

func (s *scriptedVariates) withExponential(stream string, vals ...float64) *scriptedVariates {
	s.exponential[stream] = append(s.exponential[stream], vals...)
	return s
}

func (s *scriptedVariates) withUniform(vals ...float64) *scriptedVariates {
	s.uniform = append(s.uniform, vals...)
	return s
}

func (s *scriptedVariates) Exponential(mean float64, stream string) float64 {
	if vals := s.exponential[stream]; len(vals) > 0 {
		s.exponential[stream] = vals[1:]
		return vals[0]
	}
	return s.fallback.Exponential(mean, stream)
}

func (s *scriptedVariates) Uniform(stream string) float64 {
	if len(s.uniform) > 0 {
		v := s.uniform[0]
		s.uniform = s.uniform[1:]
		return v
	}
	return s.fallback.Uniform(stream)
}

// testRunConfig returns a small valid configuration.
func testRunConfig() RunConfig {
	return RunConfig{
		NumTerminals:        10,
		MeanThink:           25,
		MeanService:         0.8,
		Quantum:             0.1,
		SwapOverhead:        0.015,
		RequiredCompletions: 500,
		Seed:                42,
	}
}

// mustSimulator builds a Simulator or fails the test.
func mustSimulator(t interface {
	Helper()
	Fatalf(string, ...any)
}, cfg RunConfig, v VariateSource) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, v)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}
