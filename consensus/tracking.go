// SPDX-License-Identifier: MIT
// Package consensus: curvature-weighted tracking rule (no edge state).
//
// Each node carries three vectors (λ, θ, ξ). The primal solve consumes the
// previous round's λ; the exchange then advances, reading only pre-round
// values of θ and ξ:
//
//	λ'_i = ξ_i − Σ_j W[j,i]·(θ_i − θ_j)
//	θ_i += x_i
//	ξ_i  = deg(i)·x_i
//
// The static weight W[i,j] = min(σ_i, σ_j) / (deg(i) + deg(j)) couples each
// edge through the flatter of its two endpoints' local curvatures, σ_i
// being the smallest eigenvalue of A_iᵀA_i. The initial λ is a seeded
// Gaussian perturbation scaled by InitScale, breaking symmetry when the
// caller asks for it.

package consensus

import (
	"fmt"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/katalvlaran/distopt/topology"
)

type trackingUpdater struct {
	lam, lamNext [][]float64
	theta        [][]float64
	xi           [][]float64
	w            [][]float64 // symmetric curvature weights, n×n
}

func (t *trackingUpdater) arcMode() (topology.Mode, bool) {
	return topology.ModeHalf, false
}

func (t *trackingUpdater) init(e *engine) error {
	n := len(e.x)
	t.lam = newVecs(n, e.cols)
	t.lamNext = newVecs(n, e.cols)
	t.theta = newVecs(n, e.cols)
	t.xi = newVecs(n, e.cols)
	t.w = newVecs(n, n)

	// Local curvature per node: smallest eigenvalue of the raw Gram matrix.
	sigma := make([]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		gram, err := matrix.Gram(e.inst.Nodes[i].A, 0)
		if err != nil {
			return fmt.Errorf("tracking init: node %d: %w", i, err)
		}
		if sigma[i], err = matrix.MinEigSym(gram, matrix.EigenTol, matrix.EigenMaxIter); err != nil {
			return fmt.Errorf("tracking init: node %d: %w", i, err)
		}
	}
	for i = 0; i < n; i++ {
		for _, j := range e.nbrs[i] {
			if j < i {
				continue // each pair set once, symmetrically
			}
			s := sigma[i]
			if sigma[j] < s {
				s = sigma[j]
			}
			wv := s / float64(e.deg[i]+e.deg[j])
			t.w[i][j], t.w[j][i] = wv, wv
		}
	}

	// Seeded symmetry-breaking perturbation; node-major, column-minor order
	// so the draw sequence is reproducible.
	if e.opts.InitScale > 0 {
		for i = 0; i < n; i++ {
			for k = 0; k < e.cols; k++ {
				t.lam[i][k] = e.opts.InitScale * e.rng.NormFloat64()
			}
		}
	}

	return nil
}

func (t *trackingUpdater) dualInput(e *engine, i int, dst []float64) {
	copy(dst, t.lam[i])
}

func (t *trackingUpdater) exchange(e *engine) {
	var i, k int

	// New duals from the pre-round θ and ξ, buffered so every node reads a
	// consistent snapshot.
	for i = 0; i < len(e.x); i++ {
		li, ti := t.lamNext[i], t.theta[i]
		for k = 0; k < e.cols; k++ {
			s := t.xi[i][k]
			for _, j := range e.nbrs[i] {
				s -= t.w[j][i] * (ti[k] - t.theta[j][k])
			}
			li[k] = s
		}
	}
	t.lam, t.lamNext = t.lamNext, t.lam

	for i = 0; i < len(e.x); i++ {
		xi, di := e.x[i], float64(e.deg[i])
		for k = 0; k < e.cols; k++ {
			t.theta[i][k] += xi[k]
			t.xi[i][k] = di * xi[k]
		}
	}
}
