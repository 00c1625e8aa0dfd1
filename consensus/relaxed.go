// SPDX-License-Identifier: MIT
// Package consensus: relaxed peer-exchange rule (full digraph).
//
// Per arc e = (i→j) with reciprocal ē = (j→i):
//
//	z'[e] = (1−α)·z[e] + α·(−z[ē] + 2ρ·x_j)
//
// All arcs read the previous round's values, so the update is
// double-buffered: z' is written into a shadow array and the two arrays are
// swapped at the end of the exchange. A node's dual input is the sum of its
// outgoing arc variables.

package consensus

import "github.com/katalvlaran/distopt/topology"

type relaxedUpdater struct {
	z, zNext [][]float64 // one vector per directed arc
}

func (r *relaxedUpdater) arcMode() (topology.Mode, bool) {
	return topology.ModeFull, true
}

func (r *relaxedUpdater) init(e *engine) error {
	r.z = newVecs(len(e.arcs), e.cols)
	r.zNext = newVecs(len(e.arcs), e.cols)

	return nil
}

func (r *relaxedUpdater) dualInput(e *engine, i int, dst []float64) {
	for k := range dst {
		dst[k] = 0
	}
	for _, a := range e.out[i] {
		for k, v := range r.z[a] {
			dst[k] += v
		}
	}
}

func (r *relaxedUpdater) exchange(e *engine) {
	alpha := e.opts.Relax
	twoRho := 2 * e.opts.Penalty

	var a, k int
	for a = 0; a < len(e.arcs); a++ {
		xh := e.x[e.arcs[a].To]
		cur, mate, next := r.z[a], r.z[e.recip[a]], r.zNext[a]
		for k = range next {
			next[k] = (1-alpha)*cur[k] + alpha*(-mate[k]+twoRho*xh[k])
		}
	}
	r.z, r.zNext = r.zNext, r.z
}
