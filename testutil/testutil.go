// Package testutil provides shared helpers for tests: a seeded, thread-safe
// random number generator with genome-sketch flavored convenience methods.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic tests
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Fingerprints returns n pseudo-random 64-bit fingerprint values.
// Values may repeat; sketches collapse duplicates.
func (r *RNG) Fingerprints(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	fps := make([]uint64, n)
	for i := range fps {
		fps[i] = r.rand.Uint64()
	}
	return fps
}

// FillNormal fills dst with draws from a zero-mean Gaussian with the given
// standard deviation. Locks only once per call.
func (r *RNG) FillNormal(dst []float64, stddev float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64() * stddev
	}
}
