package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed of a run. Equal keys with equal parameters give
// equal reference strings, and therefore equal fault counts.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// RNG subsystems used by the locality generator.
const (
	// SubsystemReference draws candidate pages. It is seeded with the key
	// itself, so --seed selects the page stream directly.
	SubsystemReference = "reference"

	// SubsystemLocus draws the jump-or-slide coin and the jump target.
	SubsystemLocus = "locus"
)

// PartitionedRNG hands out one independent *rand.Rand per subsystem, so the
// number of draws made by one subsystem never shifts another's sequence.
// Not safe for concurrent use; the generator runs on one goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for name, creating it on first use. Any
// subsystem other than SubsystemReference is seeded with key ^ fnv1a64(name).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	seed := int64(p.key)
	if name != SubsystemReference {
		seed ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(seed))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
