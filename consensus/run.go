// SPDX-License-Identifier: MIT
// Package consensus: round driver.

package consensus

import (
	"fmt"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/katalvlaran/distopt/problem"
	"github.com/katalvlaran/distopt/topology"
)

// Result carries the outcome of a Run.
type Result struct {
	// Estimates holds each node's final primal vector, indexed by node id.
	Estimates [][]float64

	// Trace holds the max-over-nodes error after every executed round.
	Trace []float64

	// Rounds is the number of rounds actually executed; it equals
	// len(Trace) and may be short of the budget after a divergence halt.
	Rounds int

	// ConvergedAt is the 1-based round whose error first reached the
	// threshold, or -1. It never moves once set.
	ConvergedAt int

	// Diverged reports whether any round produced a non-finite error.
	Diverged bool

	// DivergedAt is the 1-based round of the first non-finite error, or -1.
	DivergedAt int

	// History holds a per-round snapshot of all estimates when
	// Options.RetainHistory is set, nil otherwise.
	History [][][]float64
}

// Run executes the synchronous consensus simulation for the configured
// variant and returns the error trace against the reference solution.
// Stage 1 (Validate): options, graph/instance shapes, reference vector.
// Stage 2 (Prepare): derive arc structure, cache per-node Cholesky factors
// and Aᵀb, allocate variant state. A non-factorable local system fails
// here, before any round runs.
// Stage 3 (Iterate): for each round, primal solves (Workers goroutines,
// barrier), then the variant exchange, then the monitor. The loop stops at
// the round budget or, when HaltOnDivergence is set, at the first
// non-finite error.
// A nil opts runs DefaultOptions; opts itself is never mutated.
// Divergence is reported in the Result, not as an error.
// Complexity: O(rounds·(N·c² + arcs·c)) after an O(N·c³ + Σ r_i·c²) setup.
func Run(g *topology.Graph, inst *problem.Instance, ref []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilGraph)
	}
	if inst == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilInstance)
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if g.N() != inst.N() {
		return nil, fmt.Errorf("Run: graph has %d nodes, instance has %d: %w", g.N(), inst.N(), ErrNodeCount)
	}
	if len(ref) != inst.Cols() || !matrix.Finite(ref) {
		return nil, fmt.Errorf("Run: len(ref)=%d, cols=%d: %w", len(ref), inst.Cols(), ErrBadReference)
	}

	var u updater
	switch o.Variant {
	case VariantRelaxed:
		u = &relaxedUpdater{}
	case VariantDifference:
		u = &differenceUpdater{}
	case VariantTracking:
		u = &trackingUpdater{}
	default:
		return nil, fmt.Errorf("Run: variant=%d: %w", int(o.Variant), ErrUnknownVariant)
	}

	e, err := newEngine(g, inst, &o, u)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = u.init(e); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	mon := newMonitor(o.Threshold, o.Rounds)
	var hist [][][]float64
	if o.RetainHistory {
		hist = make([][][]float64, 0, o.Rounds)
	}

	for round := 1; round <= o.Rounds; round++ {
		if err = e.primal(u); err != nil {
			return nil, fmt.Errorf("Run: round %d: %w", round, err)
		}
		u.exchange(e)

		diverged := mon.observe(e.maxError(ref))
		if o.RetainHistory {
			hist = append(hist, e.snapshot())
		}
		if diverged && o.HaltOnDivergence {
			break
		}
	}

	return &Result{
		Estimates:   e.snapshot(),
		Trace:       mon.trace,
		Rounds:      len(mon.trace),
		ConvergedAt: mon.convergedAt,
		Diverged:    mon.divergedAt >= 0,
		DivergedAt:  mon.divergedAt,
		History:     hist,
	}, nil
}
