package cache

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultMemoryEntries is the default LRU capacity in entries.
const DefaultMemoryEntries = 1024

// Memory is an in-process LRU Cache. Concurrent GetOrCompute calls for the
// same key are collapsed into a single producer invocation via singleflight,
// giving at-most-once semantics within the process.
type Memory struct {
	lru   *lru.Cache[Key, []float64]
	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemory creates a Memory cache holding up to maxEntries vectors.
// maxEntries <= 0 selects DefaultMemoryEntries.
func NewMemory(maxEntries int) (*Memory, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}

	l, err := lru.New[Key, []float64](maxEntries)
	if err != nil {
		return nil, err
	}

	return &Memory{lru: l}, nil
}

// GetOrCompute implements Cache. The returned slice is a private copy; the
// caller may mutate it without corrupting the cache.
func (m *Memory) GetOrCompute(ctx context.Context, key Key, produce Producer) ([]float64, error) {
	if v, ok := m.lru.Get(key); ok {
		m.hits.Add(1)
		return cloneVector(v), nil
	}

	v, err, _ := m.group.Do(string(key), func() (any, error) {
		// Another flight may have populated the entry while we queued.
		if v, ok := m.lru.Get(key); ok {
			m.hits.Add(1)
			return v, nil
		}
		m.misses.Add(1)

		v, err := produce(ctx)
		if err != nil {
			return nil, err
		}

		m.lru.Add(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return cloneVector(v.([]float64)), nil
}

// Stats implements Cache.
func (m *Memory) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
	}
}

// Purge drops all cached entries.
func (m *Memory) Purge() {
	m.lru.Purge()
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
