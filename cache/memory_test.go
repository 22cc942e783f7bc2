package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHitMiss(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)

	ctx := context.Background()
	var calls atomic.Int64
	produce := func(context.Context) ([]float64, error) {
		calls.Add(1)
		return []float64{1, 2, 3}, nil
	}

	for range 5 {
		v, err := m.GetOrCompute(ctx, "k", produce)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, v)
	}

	assert.Equal(t, int64(1), calls.Load())

	stats := m.Stats()
	assert.Equal(t, int64(4), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestMemoryAtMostOncePerKey(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)

	ctx := context.Background()
	var calls atomic.Int64
	gate := make(chan struct{})

	produce := func(context.Context) ([]float64, error) {
		calls.Add(1)
		<-gate
		return []float64{42}, nil
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.GetOrCompute(ctx, "k", produce)
			assert.NoError(t, err)
			assert.Equal(t, []float64{42}, v)
		}()
	}

	close(gate)
	wg.Wait()

	// Racing callers collapse into very few producer runs; with the gate
	// held until all goroutines queued, singleflight admits exactly one.
	assert.Equal(t, int64(1), calls.Load())
}

func TestMemoryReturnsPrivateCopies(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)

	ctx := context.Background()
	produce := func(context.Context) ([]float64, error) {
		return []float64{1, 2}, nil
	}

	v, err := m.GetOrCompute(ctx, "k", produce)
	require.NoError(t, err)
	v[0] = 99

	v2, err := m.GetOrCompute(ctx, "k", produce)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v2)
}

func TestMemoryProducerError(t *testing.T) {
	m, err := NewMemory(8)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = m.GetOrCompute(context.Background(), "k", func(context.Context) ([]float64, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	// Errors are not cached.
	v, err := m.GetOrCompute(context.Background(), "k", func(context.Context) ([]float64, error) {
		return []float64{7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, v)
}

func TestPassthrough(t *testing.T) {
	var calls atomic.Int64
	produce := func(context.Context) ([]float64, error) {
		calls.Add(1)
		return []float64{1}, nil
	}

	var c Cache = Passthrough{}
	for range 3 {
		_, err := c.GetOrCompute(context.Background(), "k", produce)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(3), calls.Load())
}
