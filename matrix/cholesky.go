// SPDX-License-Identifier: MIT
// Package matrix: Cholesky factorization and SPD solve.
// The simulator solves the same regularized normal-equation system for every
// node on every round; factoring once and reusing the factor across rounds
// turns each local solve into two triangular substitutions. The
// factorization is unpivoted (lower-triangular Cholesky–Banachiewicz),
// matching the deterministic no-pivot policy of the rest of the kernels:
// a non-positive pivot is reported as ErrNotSPD, never repaired.

package matrix

import (
	"fmt"
	"math"
)

// Cholesky holds the lower-triangular factor L of S = L·Lᵀ for a symmetric
// positive-definite matrix S. The factor is immutable after construction and
// safe for concurrent Solve calls (Solve allocates its own workspace).
type Cholesky struct {
	n int       // order of the factored matrix
	l []float64 // row-major n×n storage; entries above the diagonal are zero
}

// NewCholesky factors the symmetric positive-definite matrix s.
// Stage 1 (Validate): s non-nil and square. Symmetry is the caller's
// contract (Gram always produces symmetric output); only the lower triangle
// of s is read.
// Stage 2 (Factor): Cholesky–Banachiewicz in fixed i→j→k order; a pivot
// that is not strictly positive aborts with ErrNotSPD.
// Complexity: O(n³) time, O(n²) space.
func NewCholesky(s *Dense) (*Cholesky, error) {
	if s == nil {
		return nil, fmt.Errorf("NewCholesky: %w", ErrNilMatrix)
	}
	if s.r != s.c {
		return nil, fmt.Errorf("NewCholesky: %dx%d: %w", s.r, s.c, ErrDimensionMismatch)
	}

	n := s.r
	l := make([]float64, n*n)
	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = s.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l[i*n+k] * l[j*n+k]
			}
			if i == j {
				// Diagonal pivot: must be strictly positive for SPD input.
				if sum <= 0 || math.IsNaN(sum) {
					return nil, fmt.Errorf("NewCholesky: pivot %d = %g: %w", i, sum, ErrNotSPD)
				}
				pivot = math.Sqrt(sum)
				l[i*n+i] = pivot
			} else {
				l[i*n+j] = sum / l[j*n+j]
			}
		}
	}

	return &Cholesky{n: n, l: l}, nil
}

// Order returns the order n of the factored matrix.
func (c *Cholesky) Order() int { return c.n }

// Solve returns x with S·x = rhs using the cached factor (forward then
// backward substitution). rhs is not mutated; a fresh x is returned.
// Complexity: O(n²) time, O(n) space.
func (c *Cholesky) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != c.n {
		return nil, fmt.Errorf("Cholesky.Solve: len(rhs)=%d, order=%d: %w", len(rhs), c.n, ErrDimensionMismatch)
	}

	n := c.n
	x := make([]float64, n)
	var i, k int
	var sum float64
	// Forward substitution: L·y = rhs (y stored in x).
	for i = 0; i < n; i++ {
		sum = rhs[i]
		for k = 0; k < i; k++ {
			sum -= c.l[i*n+k] * x[k]
		}
		x[i] = sum / c.l[i*n+i]
	}
	// Backward substitution: Lᵀ·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= c.l[k*n+i] * x[k]
		}
		x[i] = sum / c.l[i*n+i]
	}

	return x, nil
}
