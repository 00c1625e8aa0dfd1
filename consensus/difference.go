// SPDX-License-Identifier: MIT
// Package consensus: edge-difference rule (half digraph).
//
// The exchange runs in two stages. First every shared edge variable moves
// toward the disagreement of its endpoints:
//
//	z[e] += w·(x_to − x_from)
//
// then every node folds the updated incident edges into its dual with a
// forgetting factor:
//
//	λ_i = γ·λ_i + (1−γ)·(ρ_i·x_i − w*·Σ_j (x_i − x_j) + Σ_out z − Σ_in z)
//
// where ρ_i = ρ·deg(i). The edge update is in place: both endpoints of an
// edge see the same updated value inside the node stage, which is what the
// rule requires. w (edge step) and w* (disagreement weight) are distinct
// parameters.

package consensus

import "github.com/katalvlaran/distopt/topology"

type differenceUpdater struct {
	z   [][]float64 // one vector per undirected edge (half arc)
	lam [][]float64 // per-node dual
}

func (d *differenceUpdater) arcMode() (topology.Mode, bool) {
	return topology.ModeHalf, true
}

func (d *differenceUpdater) init(e *engine) error {
	d.z = newVecs(len(e.arcs), e.cols)
	d.lam = newVecs(len(e.x), e.cols)

	return nil
}

func (d *differenceUpdater) dualInput(e *engine, i int, dst []float64) {
	copy(dst, d.lam[i])
}

func (d *differenceUpdater) exchange(e *engine) {
	w := e.opts.EdgeWeight
	mix := e.opts.MixWeight
	gamma := e.opts.Forgetting

	var a, i, k int
	for a = 0; a < len(e.arcs); a++ {
		xf, xt := e.x[e.arcs[a].From], e.x[e.arcs[a].To]
		za := d.z[a]
		for k = range za {
			za[k] += w * (xt[k] - xf[k])
		}
	}

	var s float64
	for i = 0; i < len(e.x); i++ {
		xi, li := e.x[i], d.lam[i]
		for k = 0; k < e.cols; k++ {
			s = e.weight[i] * xi[k]
			for _, j := range e.nbrs[i] {
				s -= mix * (xi[k] - e.x[j][k])
			}
			for _, a := range e.out[i] {
				s += d.z[a][k]
			}
			for _, a := range e.in[i] {
				s -= d.z[a][k]
			}
			li[k] = gamma*li[k] + (1-gamma)*s
		}
	}
}
