// Package countsketch implements feature-hashing vectorization of genome
// sketches.
//
// Each fingerprint contributes signed unit increments to numHashFns buckets
// of a fixed-length vector; the result is L2-normalized. Bucket and sign
// assignments are fully deterministic, so the same fingerprint set always
// produces a bit-identical vector regardless of platform or process.
package countsketch

import (
	"fmt"

	"github.com/hupe1980/genovec/internal/hashmix"
	"github.com/hupe1980/genovec/internal/math64"
	"github.com/hupe1980/genovec/sketch"
)

// ErrInvalidDimension indicates a non-positive vector dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidNumHashFns indicates a non-positive hash function count.
type ErrInvalidNumHashFns struct {
	NumHashFns int
}

func (e *ErrInvalidNumHashFns) Error() string {
	return fmt.Sprintf("invalid number of hash functions: %d", e.NumHashFns)
}

// Vectorizer converts sketches into fixed-length unit vectors via
// CountSketch-style feature hashing. It is immutable and safe for
// concurrent use.
type Vectorizer struct {
	dim        int
	numHashFns int
}

// New creates a Vectorizer. dim and numHashFns must be positive.
func New(dim, numHashFns int) (*Vectorizer, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if numHashFns <= 0 {
		return nil, &ErrInvalidNumHashFns{NumHashFns: numHashFns}
	}

	return &Vectorizer{
		dim:        dim,
		numHashFns: numHashFns,
	}, nil
}

// Dimension returns the output vector length.
func (v *Vectorizer) Dimension() int { return v.dim }

// NumHashFns returns the number of bucket placements per fingerprint.
// Multiple placements reduce the variance of the inner-product estimator at
// a linear cost per fingerprint.
func (v *Vectorizer) NumHashFns() int { return v.numHashFns }

// Vectorize produces the feature-hashing vector of a sketch.
//
// Fingerprints are consumed in ascending order (the Sketch contract), which
// pins the floating-point accumulation order and keeps results bit-identical
// across runs. An empty sketch yields the all-zero vector; normalization is
// skipped to avoid dividing by zero.
func (v *Vectorizer) Vectorize(s sketch.Sketch) []float64 {
	out := make([]float64, v.dim)

	for _, fp := range s.Fingerprints() {
		for i := 0; i < v.numHashFns; i++ {
			hk := hashmix.Mix(fp ^ uint64(i))
			idx := hashmix.BucketIndex(hk, v.dim, i)
			sign := hashmix.BucketSign(hk, i)
			out[idx] += float64(sign)
		}
	}

	if norm := math64.Norm(out); norm > 0 {
		math64.ScaleInPlace(out, 1/norm)
	}

	return out
}
