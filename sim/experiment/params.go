// Package experiment drives a sweep of simulation runs over a range of
// terminal counts and renders the results.
package experiment

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timeshare-sim/timeshare-sim/sim"
)

// Params is the parameter record for a whole sweep.
type Params struct {
	MinTerminals        int     `yaml:"min_terminals"`
	MaxTerminals        int     `yaml:"max_terminals"`
	TerminalIncrement   int     `yaml:"terminal_increment"`
	RequiredCompletions int     `yaml:"required_completions"`
	MeanThink           float64 `yaml:"mean_think"`
	MeanService         float64 `yaml:"mean_service"`
	Quantum             float64 `yaml:"quantum"`
	SwapOverhead        float64 `yaml:"swap_overhead"`
}

// paramFieldCount is the number of values in the whitespace-separated format.
const paramFieldCount = 8

// Validate checks the terminal range and every per-run parameter.
func (p Params) Validate() error {
	if p.MinTerminals <= 0 {
		return fmt.Errorf("min_terminals must be > 0, got %d", p.MinTerminals)
	}
	if p.MaxTerminals < p.MinTerminals {
		return fmt.Errorf("max_terminals (%d) must be >= min_terminals (%d)", p.MaxTerminals, p.MinTerminals)
	}
	if p.TerminalIncrement <= 0 {
		return fmt.Errorf("terminal_increment must be > 0, got %d", p.TerminalIncrement)
	}
	if err := p.RunConfig(p.MinTerminals, 0).Validate(); err != nil {
		return err
	}
	return nil
}

// TerminalCounts lists the terminal counts of the sweep in ascending order.
func (p Params) TerminalCounts() []int {
	if p.TerminalIncrement <= 0 || p.MinTerminals > p.MaxTerminals {
		return nil
	}
	var counts []int
	for n := p.MinTerminals; ; n += p.TerminalIncrement {
		counts = append(counts, n)
		// Compare before stepping so n never overflows near math.MaxInt.
		if n > p.MaxTerminals-p.TerminalIncrement {
			break
		}
	}
	return counts
}

// RunConfig builds the configuration for the run with numTerminals terminals.
func (p Params) RunConfig(numTerminals int, seed int64) sim.RunConfig {
	return sim.RunConfig{
		NumTerminals:        numTerminals,
		MeanThink:           p.MeanThink,
		MeanService:         p.MeanService,
		Quantum:             p.Quantum,
		SwapOverhead:        p.SwapOverhead,
		RequiredCompletions: p.RequiredCompletions,
		Seed:                seed,
	}
}

// ParseParams reads the whitespace-separated record
//
//	min_terminals max_terminals terminal_increment required_completions
//	mean_think mean_service quantum swap_overhead
//
// and validates it. Missing, extra, or malformed values are errors.
func ParseParams(r io.Reader) (Params, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Params{}, fmt.Errorf("read parameters: %w", err)
	}
	if len(fields) != paramFieldCount {
		return Params{}, fmt.Errorf("expected %d parameter values, got %d", paramFieldCount, len(fields))
	}

	var p Params
	ints := []struct {
		name string
		dst  *int
	}{
		{"min_terminals", &p.MinTerminals},
		{"max_terminals", &p.MaxTerminals},
		{"terminal_increment", &p.TerminalIncrement},
		{"required_completions", &p.RequiredCompletions},
	}
	for i, f := range ints {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return Params{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	floats := []struct {
		name string
		dst  *float64
	}{
		{"mean_think", &p.MeanThink},
		{"mean_service", &p.MeanService},
		{"quantum", &p.Quantum},
		{"swap_overhead", &p.SwapOverhead},
	}
	for i, f := range floats {
		v, err := strconv.ParseFloat(fields[len(ints)+i], 64)
		if err != nil {
			return Params{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

// DecodeParamsYAML decodes a YAML parameter document with strict field
// checking, so misspelled keys are errors rather than silent zeros.
func DecodeParamsYAML(r io.Reader) (Params, error) {
	var p Params
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Params{}, errors.New("empty parameter document")
		}
		return Params{}, fmt.Errorf("parse parameters YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

// LoadParams reads parameters from path. Files ending in .yaml or .yml are
// decoded as YAML; anything else uses the whitespace-separated format.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read parameters file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeParamsYAML(bytes.NewReader(data))
	default:
		return ParseParams(bytes.NewReader(data))
	}
}
