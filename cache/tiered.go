package cache

import (
	"context"
	"sync/atomic"
)

// Tiered layers an in-process Memory cache over a persistent VectorStore.
// Lookups go memory first, then store, then the producer; computed vectors
// are written through to the store. Store writes race safely because
// identical keys always carry identical bytes.
type Tiered struct {
	memory *Memory
	store  VectorStore

	storeHits atomic.Int64
}

// NewTiered creates a Tiered cache. memory may be nil, in which case a
// default-sized Memory tier is created.
func NewTiered(memory *Memory, store VectorStore) (*Tiered, error) {
	if memory == nil {
		var err error
		memory, err = NewMemory(0)
		if err != nil {
			return nil, err
		}
	}

	return &Tiered{
		memory: memory,
		store:  store,
	}, nil
}

// GetOrCompute implements Cache.
func (t *Tiered) GetOrCompute(ctx context.Context, key Key, produce Producer) ([]float64, error) {
	return t.memory.GetOrCompute(ctx, key, func(ctx context.Context) ([]float64, error) {
		v, ok, err := t.store.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			t.storeHits.Add(1)
			return v, nil
		}

		v, err = produce(ctx)
		if err != nil {
			return nil, err
		}

		if err := t.store.Save(ctx, key, v); err != nil {
			return nil, err
		}

		return v, nil
	})
}

// Stats implements Cache. Store hits count as memory misses that avoided
// recomputation; they are folded into Hits.
func (t *Tiered) Stats() Stats {
	s := t.memory.Stats()
	sh := t.storeHits.Load()

	return Stats{
		Hits:   s.Hits + sh,
		Misses: s.Misses - sh,
	}
}
