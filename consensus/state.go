// SPDX-License-Identifier: MIT
// Package consensus: shared per-run state.
// The engine caches everything that is invariant across rounds — degrees,
// ridge weights, arc tables, the per-node Cholesky factors and Aᵀb vectors —
// so the hot loop touches only flat slices. Variant-specific state lives in
// the updater implementations.

package consensus

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/katalvlaran/distopt/problem"
	"github.com/katalvlaran/distopt/topology"
)

// updater is the exchange-phase strategy implemented by each variant.
type updater interface {
	// arcMode reports which digraph derivation the variant needs, if any.
	arcMode() (topology.Mode, bool)

	// init allocates variant state once the engine caches are built.
	init(e *engine) error

	// dualInput overwrites dst with node i's dual input d_i for the
	// upcoming solve. Must be safe to call concurrently for distinct i.
	dualInput(e *engine, i int, dst []float64)

	// exchange recomputes edge and node state from the fresh primals.
	// Runs single-threaded after the primal barrier.
	exchange(e *engine)
}

// engine holds the round-invariant caches plus the current estimates.
type engine struct {
	opts   *Options
	inst   *problem.Instance
	cols   int
	deg    []int
	weight []float64 // ρ·deg(i), the ridge weight of node i
	nbrs   [][]int

	// Arc tables; empty for variants that carry no edge state.
	arcs  []topology.Arc
	out   [][]int
	in    [][]int
	recip []int

	chol []*matrix.Cholesky
	atb  [][]float64
	x    [][]float64

	rng *rand.Rand
}

// newEngine builds all round-invariant caches. The Cholesky factors are
// computed here, so a singular local system fails the run before round 1.
func newEngine(g *topology.Graph, inst *problem.Instance, opts *Options, u updater) (*engine, error) {
	n := inst.N()
	e := &engine{
		opts:   opts,
		inst:   inst,
		cols:   inst.Cols(),
		deg:    g.Degrees(),
		weight: make([]float64, n),
		nbrs:   make([][]int, n),
		chol:   make([]*matrix.Cholesky, n),
		atb:    make([][]float64, n),
		x:      make([][]float64, n),
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}

	var i int
	var err error
	for i = 0; i < n; i++ {
		if e.nbrs[i], err = g.Neighbors(i); err != nil {
			return nil, fmt.Errorf("newEngine: %w", err)
		}
	}

	if mode, need := u.arcMode(); need {
		dg, err := topology.Build(g, mode)
		if err != nil {
			return nil, fmt.Errorf("newEngine: %w", err)
		}
		m := dg.NumArcs()
		e.arcs = make([]topology.Arc, m)
		e.out = make([][]int, n)
		e.in = make([][]int, n)
		for a := 0; a < m; a++ {
			e.arcs[a], _ = dg.Arc(a)
		}
		for i = 0; i < n; i++ {
			e.out[i], _ = dg.Out(i)
			e.in[i], _ = dg.In(i)
		}
		if mode == topology.ModeFull {
			e.recip = make([]int, m)
			for a := 0; a < m; a++ {
				e.recip[a], _ = dg.Recip(a)
			}
		}
	}

	// Per-node factors and projections. The left-hand side never changes
	// between rounds, so one factorization serves the whole run.
	for i = 0; i < n; i++ {
		e.weight[i] = opts.Penalty * float64(e.deg[i])
		nd := inst.Nodes[i]

		gram, err := matrix.Gram(nd.A, e.weight[i])
		if err != nil {
			return nil, fmt.Errorf("newEngine: node %d: %w", i, err)
		}
		if e.chol[i], err = matrix.NewCholesky(gram); err != nil {
			return nil, fmt.Errorf("newEngine: node %d: %w: %v", i, ErrSingularSystem, err)
		}
		if e.atb[i], err = matrix.GramVec(nd.A, nd.B); err != nil {
			return nil, fmt.Errorf("newEngine: node %d: %w", i, err)
		}
		e.x[i] = make([]float64, e.cols)
	}

	return e, nil
}

// solveRange runs the primal solve for nodes [lo, hi). Each call owns its
// scratch buffer, so ranges may run concurrently.
func (e *engine) solveRange(u updater, lo, hi int) error {
	rhs := make([]float64, e.cols)
	for i := lo; i < hi; i++ {
		u.dualInput(e, i, rhs)
		for k, v := range e.atb[i] {
			rhs[k] += v
		}
		sol, err := e.chol[i].Solve(rhs)
		if err != nil {
			return fmt.Errorf("solve node %d: %w", i, err)
		}
		e.x[i] = sol
	}

	return nil
}

// primal runs one primal phase across Workers goroutines. Nodes are split
// into contiguous chunks writing disjoint x slots; the result is identical
// for any worker count.
func (e *engine) primal(u updater) error {
	n := len(e.x)
	workers := e.opts.Workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return e.solveRange(u, 0, n)
	}

	chunk := (n + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = e.solveRange(u, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// maxError returns the maximum per-node Euclidean distance to ref.
// A non-finite per-node distance is returned immediately so NaN cannot be
// masked by a later finite maximum.
func (e *engine) maxError(ref []float64) float64 {
	var worst float64
	for i := range e.x {
		d, _ := matrix.Dist(e.x[i], ref)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}

// snapshot deep-copies the current estimates.
func (e *engine) snapshot() [][]float64 {
	out := make([][]float64, len(e.x))
	for i := range e.x {
		out[i] = matrix.CloneVec(e.x[i])
	}

	return out
}

// newVecs allocates m zeroed vectors of the given length.
func newVecs(m, length int) [][]float64 {
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, length)
	}

	return out
}
