// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigensolver (Jacobi sweeps).
// The tracking variant of the consensus engine weighs each edge by the
// smaller local curvature of its two endpoints, i.e. the smallest eigenvalue
// of AᵀA per node. MinEigSym runs classical Jacobi rotations with a
// deterministic largest-off-diagonal pivot scan until the off-diagonal mass
// falls below tolerance, then returns the smallest diagonal entry.

package matrix

import (
	"fmt"
	"math"
)

// Default Jacobi parameters; adequate for the small (c×c) Gram matrices the
// simulator produces.
const (
	EigenTol     = 1e-10
	EigenMaxIter = 300
)

// MinEigSym returns the smallest eigenvalue of the symmetric matrix s.
// Stage 1 (Validate): s non-nil and square; symmetry is the caller's
// contract (Gram output).
// Stage 2 (Rotate): pick the largest |S[p,q]| in fixed i→j scan order and
// annihilate it with a Jacobi rotation; repeat up to maxIter sweeps.
// Stage 3 (Extract): once all off-diagonal magnitudes are below tol, the
// diagonal holds the eigenvalues; return the minimum.
// Returns ErrEigenFailed when the budget is exhausted before convergence.
// Complexity: O(maxIter·n²) pivot scans with O(n) updates each, O(n²) space.
func MinEigSym(s *Dense, tol float64, maxIter int) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("MinEigSym: %w", ErrNilMatrix)
	}
	if s.r != s.c {
		return 0, fmt.Errorf("MinEigSym: %dx%d: %w", s.r, s.c, ErrDimensionMismatch)
	}

	n := s.r
	if n == 1 {
		return s.data[0], nil
	}
	a := s.Clone() // working copy; s stays untouched

	var (
		iter, i, j, p, q   int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, cos, sin float64
		aip, aiq           float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Deterministic pivot scan over the strict upper triangle.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]

		// Rotation parameters; |apq| ≥ tol here, so theta is well-defined.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cos = 1.0 / math.Sqrt(t*t+1)
		sin = t * cos

		// Apply the rotation symmetrically.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			a.data[i*n+p], a.data[p*n+i] = cos*aip-sin*aiq, cos*aip-sin*aiq
			a.data[i*n+q], a.data[q*n+i] = sin*aip+cos*aiq, sin*aip+cos*aiq
		}
		a.data[p*n+p] = cos*cos*app - 2*cos*sin*apq + sin*sin*aqq
		a.data[q*n+q] = sin*sin*app + 2*cos*sin*apq + cos*cos*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0
	}

	// Final convergence check.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return 0, fmt.Errorf("MinEigSym: off-diagonal %g after %d sweeps: %w", maxOff, maxIter, ErrEigenFailed)
	}

	min := a.data[0]
	for i = 1; i < n; i++ {
		if a.data[i*n+i] < min {
			min = a.data[i*n+i]
		}
	}

	return min, nil
}
