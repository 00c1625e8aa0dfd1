// SPDX-License-Identifier: MIT
// Package matrix: small vector helpers shared by the consensus engine.
// Kept here (rather than in the engine) because they follow the same
// determinism and validation rules as the matrix kernels.

package matrix

import (
	"fmt"
	"math"
)

// CloneVec returns an independent copy of v.
func CloneVec(v []float64) []float64 {
	cp := make([]float64, len(v))
	copy(cp, v)

	return cp
}

// AxPy performs dst[i] += alpha*v[i] in place and returns dst.
// Lengths must match; mismatches return ErrDimensionMismatch.
func AxPy(dst []float64, alpha float64, v []float64) ([]float64, error) {
	if len(dst) != len(v) {
		return nil, fmt.Errorf("AxPy: len(dst)=%d, len(v)=%d: %w", len(dst), len(v), ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] += alpha * v[i]
	}

	return dst, nil
}

// Dist returns the Euclidean distance ‖a−b‖₂.
// NaN or Inf inputs propagate into the result; the caller decides how to
// treat non-finite distances (the convergence monitor flags them).
func Dist(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dist: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Finite reports whether every entry of v is a finite float64.
func Finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
