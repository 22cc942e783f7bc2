// Package math64 provides float64 vector operations shared by the
// vectorizers and the projector. This is an internal package.
package math64

import "math"

// Dot calculates the dot product of two vectors.
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Norm calculates the Euclidean (L2) norm of a vector.
func Norm(a []float64) float64 {
	var ss float64
	for _, v := range a {
		ss += v * v
	}

	return math.Sqrt(ss)
}

// ScaleInPlace multiplies all elements of a by scalar.
//
// This is primarily used by vector normalization.
func ScaleInPlace(a []float64, scalar float64) {
	for i := range a {
		a[i] *= scalar
	}
}

// AxpyInPlace adds alpha*x to y element-wise: y[i] += alpha * x[i].
//
// Used by the projector's row-major matrix multiply.
func AxpyInPlace(alpha float64, x, y []float64) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}
