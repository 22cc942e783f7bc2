package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genovec/internal/math64"
	"github.com/hupe1980/genovec/testutil"
)

func newBatch(t *testing.T, rows, dim int, seed int64) [][]float64 {
	t.Helper()

	rng := testutil.NewRNG(seed)
	batch := make([][]float64, rows)
	for i := range batch {
		batch[i] = make([]float64, dim)
		rng.FillNormal(batch[i], 1.0)
	}
	return batch
}

func TestProjectShape(t *testing.T) {
	batch := newBatch(t, 5, 64, 1)

	out, err := Project(batch, 16, 42)
	require.NoError(t, err)

	require.Len(t, out, 5)
	for _, v := range out {
		assert.Len(t, v, 16)
	}
}

func TestProjectDeterministic(t *testing.T) {
	batch := newBatch(t, 3, 32, 2)

	a, err := Project(batch, 8, 42)
	require.NoError(t, err)
	b, err := Project(batch, 8, 42)
	require.NoError(t, err)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("output differs at [%d][%d]: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestProjectSeedSensitivity(t *testing.T) {
	batch := newBatch(t, 2, 32, 3)

	a, err := Project(batch, 8, 42)
	require.NoError(t, err)
	b, err := Project(batch, 8, 43)
	require.NoError(t, err)

	same := true
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical projections")
	}
}

// With a shared projection matrix, relative geometry should roughly
// survive: the projection of v and of 2v must stay colinear.
func TestProjectLinearity(t *testing.T) {
	v := make([]float64, 64)
	testutil.NewRNG(4).FillNormal(v, 1.0)

	scaled := make([]float64, len(v))
	for i := range v {
		scaled[i] = 2 * v[i]
	}

	out, err := Project([][]float64{v, scaled}, 16, 42)
	require.NoError(t, err)

	for j := range out[0] {
		assert.InDelta(t, 2*out[0][j], out[1][j], 1e-9)
	}
}

func TestProjectErrors(t *testing.T) {
	batch := newBatch(t, 2, 8, 5)

	_, err := Project(batch, 0, 42)
	var ed *ErrInvalidProjectionDim
	require.ErrorAs(t, err, &ed)
	assert.Equal(t, 0, ed.ProjectionDim)

	ragged := [][]float64{make([]float64, 8), make([]float64, 9)}
	_, err = Project(ragged, 4, 42)
	var er *ErrRaggedBatch
	require.ErrorAs(t, err, &er)
	assert.Equal(t, 8, er.Expected)
	assert.Equal(t, 9, er.Actual)
}

func TestProjectEmptyBatch(t *testing.T) {
	out, err := Project(nil, 4, 42)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProjectPreservesScaleRoughly(t *testing.T) {
	batch := newBatch(t, 1, 256, 6)

	out, err := Project(batch, 64, 42)
	require.NoError(t, err)

	inNorm := math64.Norm(batch[0])
	outNorm := math64.Norm(out[0])

	// JL-style norm preservation is approximate; allow a generous band.
	assert.Greater(t, outNorm, inNorm*0.5)
	assert.Less(t, outNorm, inNorm*1.5)
}
