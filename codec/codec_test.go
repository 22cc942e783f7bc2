package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genovec/testutil"
)

func testVectors() map[string][]float64 {
	sparse := make([]float64, 4096)
	sparse[17] = -0.5
	sparse[901] = 0.5

	dense := make([]float64, 512)
	testutil.NewRNG(1).FillNormal(dense, 1.0)

	return map[string][]float64{
		"Empty":  {},
		"Single": {0.25},
		"Sparse": sparse,
		"Dense":  dense,
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, c := range []Codec{Raw{}, Zstd{}, LZ4{}} {
		for name, v := range testVectors() {
			t.Run(c.Name()+"_"+name, func(t *testing.T) {
				data, err := c.Encode(v)
				require.NoError(t, err)

				got, err := c.Decode(data)
				require.NoError(t, err)

				require.Len(t, got, len(v))
				for i := range v {
					if got[i] != v[i] {
						t.Fatalf("coordinate %d changed: %v -> %v", i, v[i], got[i])
					}
				}
			})
		}
	}
}

func TestZstdCompressesSparseVectors(t *testing.T) {
	v := make([]float64, 4096)
	v[10] = -0.5

	data, err := Zstd{}.Encode(v)
	require.NoError(t, err)
	assert.Less(t, len(data), 8*len(v)/4)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"raw", "zstd", "lz4"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("gzip")
	assert.False(t, ok)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Raw{}.Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = LZ4{}.Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Zstd{}.Decode([]byte{1, 2, 3})
	assert.Error(t, err)
}
