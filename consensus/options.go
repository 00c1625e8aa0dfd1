// SPDX-License-Identifier: MIT
// Package consensus: engine configuration.
// Options follows the package convention of a plain struct with a
// DefaultOptions constructor; validation collects every violation into a
// single multierror so a misconfigured run reports all problems at once.

package consensus

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Variant selects the exchange-phase update rule.
type Variant int

const (
	// VariantRelaxed runs the relaxed peer-exchange rule on the full
	// digraph (one arc per direction of every edge).
	VariantRelaxed Variant = iota

	// VariantDifference runs the edge-difference rule on the half digraph
	// (one shared variable per undirected edge).
	VariantDifference

	// VariantTracking runs the curvature-weighted tracking rule with no
	// edge state at all.
	VariantTracking
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantRelaxed:
		return "relaxed"
	case VariantDifference:
		return "difference"
	case VariantTracking:
		return "tracking"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Canonical defaults. These are the settings the command-line runner and
// the examples use; DefaultOptions returns them ready to tweak.
const (
	DefaultRounds     = 1000
	DefaultPenalty    = 1.0
	DefaultRelax      = 0.5
	DefaultEdgeWeight = 0.5
	DefaultMixWeight  = 0.05
	DefaultForgetting = 0.2
	DefaultInitScale  = 0.01
	DefaultThreshold  = 3e-5
)

// Options configures a Run. Fields irrelevant to the selected Variant are
// ignored (and not validated), so a single struct can be reused across
// variants. EdgeWeight and MixWeight are independent knobs: the first
// scales the edge-variable increment, the second the neighbor-disagreement
// term inside the node dual, and they are never coupled.
type Options struct {
	// Variant selects the update rule. Default VariantRelaxed.
	Variant Variant

	// Rounds bounds the number of synchronous rounds. Must be ≥ 1.
	Rounds int

	// Penalty is the augmented penalty ρ ≥ 0. The per-node ridge weight is
	// ρ·deg(i); ρ = 0 is accepted but leaves rank-deficient nodes singular.
	Penalty float64

	// Relax is the relaxation factor α ∈ (0,1). VariantRelaxed only.
	Relax float64

	// EdgeWeight is the edge step size w > 0. VariantDifference only.
	EdgeWeight float64

	// MixWeight is the neighbor-disagreement weight w* > 0, independent of
	// EdgeWeight. VariantDifference only.
	MixWeight float64

	// Forgetting is the dual forgetting factor γ ∈ [0,1).
	// VariantDifference only.
	Forgetting float64

	// InitScale scales the random perturbation of the initial tracking
	// duals; 0 starts them exactly at zero. Must be ≥ 0. VariantTracking
	// only.
	InitScale float64

	// Threshold is the error level whose first crossing is recorded as the
	// convergence round. Must be > 0; 0 selects DefaultThreshold.
	Threshold float64

	// Seed feeds every random draw the engine makes (currently only the
	// tracking dual init), so runs are reproducible.
	Seed int64

	// Workers is the number of goroutines for the primal phase. Must be
	// ≥ 1; 0 selects 1. The trace is identical for any value.
	Workers int

	// RetainHistory keeps a snapshot of every node's estimate after each
	// round. Memory grows as rounds·n·cols; off by default.
	RetainHistory bool

	// HaltOnDivergence stops the round loop as soon as a non-finite error
	// is observed. When false the loop runs out its budget and the
	// divergence round is still recorded.
	HaltOnDivergence bool
}

// DefaultOptions returns the canonical configuration: relaxed variant,
// 1000 rounds, unit penalty, halting on divergence.
func DefaultOptions() Options {
	return Options{
		Variant:          VariantRelaxed,
		Rounds:           DefaultRounds,
		Penalty:          DefaultPenalty,
		Relax:            DefaultRelax,
		EdgeWeight:       DefaultEdgeWeight,
		MixWeight:        DefaultMixWeight,
		Forgetting:       DefaultForgetting,
		InitScale:        DefaultInitScale,
		Threshold:        DefaultThreshold,
		Seed:             1,
		Workers:          1,
		RetainHistory:    false,
		HaltOnDivergence: true,
	}
}

// validate normalizes zero-value conveniences and collects every invalid
// field into one error. Only fields the selected variant reads are checked.
func (o *Options) validate() error {
	var errs error

	if o.Variant < VariantRelaxed || o.Variant > VariantTracking {
		errs = multierror.Append(errs, fmt.Errorf("variant=%d: %w", int(o.Variant), ErrUnknownVariant))
	}
	if o.Rounds < 1 {
		errs = multierror.Append(errs, fmt.Errorf("rounds must be >= 1, got %d", o.Rounds))
	}
	if o.Penalty < 0 {
		errs = multierror.Append(errs, fmt.Errorf("penalty must be >= 0, got %v", o.Penalty))
	}

	switch o.Variant {
	case VariantRelaxed:
		if o.Relax <= 0 || o.Relax >= 1 {
			errs = multierror.Append(errs, fmt.Errorf("relax must be in (0,1), got %v", o.Relax))
		}
	case VariantDifference:
		if o.EdgeWeight <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("edge weight must be > 0, got %v", o.EdgeWeight))
		}
		if o.MixWeight <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("mix weight must be > 0, got %v", o.MixWeight))
		}
		if o.Forgetting < 0 || o.Forgetting >= 1 {
			errs = multierror.Append(errs, fmt.Errorf("forgetting must be in [0,1), got %v", o.Forgetting))
		}
	case VariantTracking:
		if o.InitScale < 0 {
			errs = multierror.Append(errs, fmt.Errorf("init scale must be >= 0, got %v", o.InitScale))
		}
	}

	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	} else if o.Threshold < 0 {
		errs = multierror.Append(errs, fmt.Errorf("threshold must be > 0, got %v", o.Threshold))
	}
	if o.Workers == 0 {
		o.Workers = 1
	} else if o.Workers < 0 {
		errs = multierror.Append(errs, fmt.Errorf("workers must be >= 1, got %d", o.Workers))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrBadOptions, errs)
	}

	return nil
}
