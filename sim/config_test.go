package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr string
	}{
		{"valid", func(*RunConfig) {}, ""},
		{"zero think and swap allowed", func(c *RunConfig) { c.MeanThink, c.SwapOverhead = 0, 0 }, ""},
		{"no terminals", func(c *RunConfig) { c.NumTerminals = 0 }, "number of terminals"},
		{"no completions", func(c *RunConfig) { c.RequiredCompletions = 0 }, "required completions"},
		{"negative think", func(c *RunConfig) { c.MeanThink = -1 }, "mean think time"},
		{"zero service", func(c *RunConfig) { c.MeanService = 0 }, "mean service time"},
		{"zero quantum", func(c *RunConfig) { c.Quantum = 0 }, "quantum"},
		{"negative swap", func(c *RunConfig) { c.SwapOverhead = -0.1 }, "swap overhead"},
		{"NaN service", func(c *RunConfig) { c.MeanService = math.NaN() }, "must be finite"},
		{"infinite think", func(c *RunConfig) { c.MeanThink = math.Inf(1) }, "must be finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRunConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewSimulator_InvalidConfig_ReturnsError(t *testing.T) {
	cfg := testRunConfig()
	cfg.Quantum = 0
	s, err := NewSimulator(cfg, nil)
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "invalid run config")
}
