// SPDX-License-Identifier: MIT
// Package matrix: Gram and matrix-vector kernels.
// These are the only products the simulator needs per node: the regularized
// Gram matrix AᵀA + ridge·I (the left-hand side of every local solve), the
// projected observation vector Aᵀv, and plain A·x. All three walk the flat
// row-major storage in a fixed order.

package matrix

import "fmt"

// Gram computes S = AᵀA + ridge·I for an r×c matrix A and ridge ≥ 0.
// The result is a fresh symmetric c×c Dense; A is not mutated.
//
// Stage 1 (Validate): a non-nil, ridge non-negative is the caller's
// contract (a negative ridge simply produces a non-SPD matrix that the
// Cholesky stage will reject).
// Stage 2 (Accumulate): upper triangle via row-major dot products, then
// mirrored; the fixed k→i→j order keeps accumulation deterministic.
// Complexity: O(r*c²) time, O(c²) space.
func Gram(a *Dense, ridge float64) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("Gram: %w", ErrNilMatrix)
	}
	s, err := NewDense(a.c, a.c)
	if err != nil {
		return nil, fmt.Errorf("Gram: %w", err)
	}

	var i, j, k, base int
	var aki float64
	// Accumulate the upper triangle: S[i,j] += A[k,i]*A[k,j] over rows k.
	for k = 0; k < a.r; k++ {
		base = k * a.c
		for i = 0; i < a.c; i++ {
			aki = a.data[base+i]
			if aki == 0 {
				continue // zero row entry contributes nothing
			}
			for j = i; j < a.c; j++ {
				s.data[i*a.c+j] += aki * a.data[base+j]
			}
		}
	}
	// Mirror into the lower triangle and add the ridge on the diagonal.
	for i = 0; i < a.c; i++ {
		s.data[i*a.c+i] += ridge
		for j = i + 1; j < a.c; j++ {
			s.data[j*a.c+i] = s.data[i*a.c+j]
		}
	}

	return s, nil
}

// GramVec computes y = Aᵀv for an r×c matrix A and a length-r vector v.
// Complexity: O(r*c) time, O(c) space.
func GramVec(a *Dense, v []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("GramVec: %w", ErrNilMatrix)
	}
	if len(v) != a.r {
		return nil, fmt.Errorf("GramVec: len(v)=%d, rows=%d: %w", len(v), a.r, ErrDimensionMismatch)
	}

	y := make([]float64, a.c)
	var i, j, base int
	var vi float64
	for i = 0; i < a.r; i++ { // fixed row-major order
		vi = v[i]
		if vi == 0 {
			continue
		}
		base = i * a.c
		for j = 0; j < a.c; j++ {
			y[j] += a.data[base+j] * vi
		}
	}

	return y, nil
}

// MatVec computes y = A·x for an r×c matrix A and a length-c vector x.
// Complexity: O(r*c) time, O(r) space.
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("MatVec: %w", ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, fmt.Errorf("MatVec: len(x)=%d, cols=%d: %w", len(x), a.c, ErrDimensionMismatch)
	}

	y := make([]float64, a.r)
	var i, j, base int
	var acc float64
	for i = 0; i < a.r; i++ {
		acc = 0
		base = i * a.c
		for j = 0; j < a.c; j++ {
			acc += a.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
