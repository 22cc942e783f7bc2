package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/codec"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "vectors.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	key := cache.Key("fh:abc:d16:n3")

	_, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []float64{-0.5, 0, 0.5, 0.25}
	require.NoError(t, store.Save(ctx, key, want))

	got, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreIdempotentOverwrite(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	key := cache.Key("k")
	v := []float64{1, 2, 3}

	require.NoError(t, store.Save(ctx, key, v))
	require.NoError(t, store.Save(ctx, key, v))

	got, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, v, got)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	ctx := context.Background()

	store, err := Open(path, WithCodec(codec.LZ4{}))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "k", []float64{4, 5}))
	require.NoError(t, store.Close())

	// Reopen with a different default codec; the row records its own.
	store, err = Open(path, WithCodec(codec.Raw{}))
	require.NoError(t, err)
	defer store.Close()

	got, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5}, got)
}
