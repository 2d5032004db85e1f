package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical RunConfig
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Stream Constants ===

const (
	// StreamThink drives terminal think times.
	StreamThink = "think"

	// StreamService drives total job service times.
	StreamService = "service"

	// StreamLaneSelect drives the uniform draw that picks a lane on arrival.
	StreamLaneSelect = "lane-select"
)

// VariateSource supplies the random draws a Simulator consumes.
// Each stream name must be backed by independent generator state.
type VariateSource interface {
	// Exponential returns an exponential variate with the given mean.
	Exponential(mean float64, stream string) float64
	// Uniform returns a uniform variate on [0, 1).
	Uniform(stream string) float64
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per stream.
//
// Derivation formula: streamSeed = masterSeed XOR fnv1a64(streamName).
// Drawing from one stream never changes the sequence of another.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns a deterministically-seeded RNG for the named stream.
// The same stream name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// Exponential implements VariateSource.
func (p *PartitionedRNG) Exponential(mean float64, stream string) float64 {
	return p.ForStream(stream).ExpFloat64() * mean
}

// Uniform implements VariateSource.
func (p *PartitionedRNG) Uniform(stream string) float64 {
	return p.ForStream(stream).Float64()
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
