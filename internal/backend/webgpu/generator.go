package webgpu

import (
	"math/rand"
	"sync"
	"time"

	"github.com/axon-ml/axon/internal/hooks"
)

// Generator is the backend's default random number source. Implements
// hooks.Generator.
//
// Note: uses math/rand (not crypto/rand) - appropriate for ML/statistical
// purposes, and reseedable for reproducible runs.
type Generator struct {
	mu   sync.Mutex
	seed uint64
	rng  *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(int64(seed))), //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	}
}

// Seed returns the seed the current stream started from.
func (g *Generator) Seed() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed
}

// SetSeed reseeds the generator; the stream restarts deterministically.
func (g *Generator) SetSeed(seed uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seed = seed
	g.rng = rand.New(rand.NewSource(int64(seed))) //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
}

// Uint64 returns the next draw.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

// Float64 returns the next draw in [0, 1).
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

var (
	generatorOnce sync.Once
	generator     *Generator
)

// defaultGenerator returns the process-wide default generator, seeding it
// from the wall clock on first use. Exactly one instance exists per process.
func defaultGenerator() *Generator {
	generatorOnce.Do(func() {
		generator = NewGenerator(uint64(time.Now().UnixNano()))
	})
	return generator
}

// Compile-time check that Generator implements the generator contract.
var _ hooks.Generator = (*Generator)(nil)
