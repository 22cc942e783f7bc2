package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genovec/blobstore"
)

// memStore is a minimal in-memory VectorStore for tests.
type memStore struct {
	mu    sync.RWMutex
	data  map[Key][]float64
	loads atomic.Int64
	saves atomic.Int64
}

func newMemStore() *memStore {
	return &memStore{data: make(map[Key][]float64)}
}

func (s *memStore) Load(_ context.Context, key Key) ([]float64, bool, error) {
	s.loads.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Save(_ context.Context, key Key, v []float64) error {
	s.saves.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = v
	return nil
}

func TestTieredComputeAndWriteThrough(t *testing.T) {
	store := newMemStore()
	c, err := NewTiered(nil, store)
	require.NoError(t, err)

	ctx := context.Background()
	var calls atomic.Int64
	produce := func(context.Context) ([]float64, error) {
		calls.Add(1)
		return []float64{1, 2}, nil
	}

	v, err := c.GetOrCompute(ctx, "k", produce)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v)

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), store.saves.Load())

	// Memory tier now answers; the store is not consulted again.
	_, err = c.GetOrCompute(ctx, "k", produce)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), store.loads.Load())
}

func TestTieredStoreHitSkipsProducer(t *testing.T) {
	store := newMemStore()
	store.data["k"] = []float64{7, 8}

	c, err := NewTiered(nil, store)
	require.NoError(t, err)

	v, err := c.GetOrCompute(context.Background(), "k", func(context.Context) ([]float64, error) {
		t.Fatal("producer must not run on a store hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, v)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
}

func TestTieredWithBlobVectorStore(t *testing.T) {
	blobs := blobstore.NewMemoryStore()
	store := NewBlobVectorStore(blobs)

	c, err := NewTiered(nil, store)
	require.NoError(t, err)

	ctx := context.Background()
	want := []float64{-0.5, 0, 0.5}

	v, err := c.GetOrCompute(ctx, "k", func(context.Context) ([]float64, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, v)

	// A second cache over the same blob store sees the entry.
	c2, err := NewTiered(nil, NewBlobVectorStore(blobs))
	require.NoError(t, err)

	v, err = c2.GetOrCompute(ctx, "k", func(context.Context) ([]float64, error) {
		t.Fatal("producer must not run; blob store already has the vector")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, v)
}
