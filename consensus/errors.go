// SPDX-License-Identifier: MIT
// Package consensus: sentinel error set.
// Everything here surfaces before round 1 except ErrSingularSystem, which
// is raised while caching the per-node factors (still before any exchange).

package consensus

import "errors"

var (
	// ErrNilGraph indicates a nil *topology.Graph argument.
	ErrNilGraph = errors.New("consensus: graph is nil")

	// ErrNilInstance indicates a nil *problem.Instance argument.
	ErrNilInstance = errors.New("consensus: instance is nil")

	// ErrNodeCount indicates that the graph and the instance disagree on
	// the number of agents.
	ErrNodeCount = errors.New("consensus: graph and instance node counts differ")

	// ErrBadReference indicates a reference vector whose length does not
	// match the shared unknown dimension, or that contains NaN/Inf.
	ErrBadReference = errors.New("consensus: invalid reference solution")

	// ErrBadOptions indicates one or more invalid configuration values;
	// the wrapped detail lists every violation.
	ErrBadOptions = errors.New("consensus: invalid options")

	// ErrUnknownVariant indicates a Variant outside the known update rules.
	ErrUnknownVariant = errors.New("consensus: unknown variant")

	// ErrSingularSystem indicates that a node's regularized normal
	// equations are not positive-definite and cannot be solved. Under a
	// positive penalty this cannot happen (AᵀA is PSD and the ridge is
	// strictly positive for every connected node).
	ErrSingularSystem = errors.New("consensus: singular local system")
)
