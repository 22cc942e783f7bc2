// Package cache implements the vector caching collaborator: an explicit
// get-or-compute contract keyed by opaque byte strings derived from the
// vectorization parameters and sketch identity.
//
// Cached values are pure functions of their key, so concurrent writes to the
// same key are harmless: implementations guarantee at-most-once computation
// per key where they can (in-process via singleflight) and fall back to
// idempotent overwrite where they cannot (shared persistent stores).
package cache

import "context"

// Key identifies a cached vector. Keys must be stable across processes;
// callers derive them from content digests, never from pointers or
// iteration order.
type Key string

// Producer computes the value for a key on a cache miss.
type Producer func(ctx context.Context) ([]float64, error)

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits   int64
	Misses int64
}

// Cache returns a cached vector or computes and stores one. A cache hit is
// indistinguishable from a fresh computation; returned slices are owned by
// the caller.
type Cache interface {
	GetOrCompute(ctx context.Context, key Key, produce Producer) ([]float64, error)
	Stats() Stats
}

// VectorStore is a persistent backing tier for cached vectors. Save must be
// an idempotent overwrite: racing writers for the same key store the same
// bytes.
type VectorStore interface {
	// Load returns the stored vector and true, or ok=false if missing.
	Load(ctx context.Context, key Key) (v []float64, ok bool, err error)
	// Save stores a vector under key, overwriting any existing entry.
	Save(ctx context.Context, key Key, v []float64) error
}

// Passthrough is the no-op Cache: every call recomputes. It is the default
// when no cache collaborator is configured.
type Passthrough struct{}

// GetOrCompute implements Cache.
func (Passthrough) GetOrCompute(ctx context.Context, _ Key, produce Producer) ([]float64, error) {
	return produce(ctx)
}

// Stats implements Cache.
func (Passthrough) Stats() Stats { return Stats{} }
