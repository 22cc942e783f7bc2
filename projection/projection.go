// Package projection implements seeded Gaussian random projection for
// batches of vectors.
//
// A D x projectionDim matrix of independent draws from N(0, 1/projectionDim)
// approximately preserves pairwise distances (Johnson-Lindenstrauss). The
// matrix is derived exclusively from the seed, so the same seed always maps
// the same inputs to bit-identical outputs, and vectors projected in
// separate invocations remain comparable.
package projection

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/genovec/internal/math64"
)

// ErrInvalidProjectionDim indicates a non-positive projection dimension.
type ErrInvalidProjectionDim struct {
	ProjectionDim int
}

func (e *ErrInvalidProjectionDim) Error() string {
	return fmt.Sprintf("invalid projection dimension: %d", e.ProjectionDim)
}

// ErrRaggedBatch indicates input vectors of differing lengths.
type ErrRaggedBatch struct {
	Expected int
	Actual   int
}

func (e *ErrRaggedBatch) Error() string {
	return fmt.Sprintf("ragged batch: vector length %d, expected %d", e.Actual, e.Expected)
}

// Project reduces every vector in the batch to projectionDim dimensions
// using one shared projection matrix generated from seed. The matrix lives
// only for the duration of the call.
//
// All input vectors must have the same length. An empty batch projects to an
// empty batch without generating a matrix.
func Project(batch [][]float64, projectionDim int, seed int64) ([][]float64, error) {
	if projectionDim <= 0 {
		return nil, &ErrInvalidProjectionDim{ProjectionDim: projectionDim}
	}
	if len(batch) == 0 {
		return [][]float64{}, nil
	}

	dim := len(batch[0])
	for _, v := range batch[1:] {
		if len(v) != dim {
			return nil, &ErrRaggedBatch{Expected: dim, Actual: len(v)}
		}
	}

	// math/rand with a fixed source is sequence-stable for a given seed,
	// which is what makes projected outputs reproducible across runs.
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility, not security
	stddev := 1 / math.Sqrt(float64(projectionDim))

	// One matrix row per input dimension, generated row-major. Row-major
	// generation order is part of the output contract: changing it would
	// change every projected vector.
	row := make([]float64, projectionDim)

	out := make([][]float64, len(batch))
	for i := range out {
		out[i] = make([]float64, projectionDim)
	}

	for d := 0; d < dim; d++ {
		for j := range row {
			row[j] = rng.NormFloat64() * stddev
		}
		for i, v := range batch {
			math64.AxpyInPlace(v[d], row, out[i])
		}
	}

	return out, nil
}
