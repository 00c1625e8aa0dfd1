// SPDX-License-Identifier: MIT
// Package consensus: per-round convergence monitor.

package consensus

import "math"

// monitor accumulates the per-round error trace and classifies each value.
// Rounds are numbered from 1; convergedAt/divergedAt stay -1 until set and
// convergedAt is written exactly once, no matter what later rounds do.
type monitor struct {
	threshold   float64
	trace       []float64
	convergedAt int
	divergedAt  int
}

func newMonitor(threshold float64, rounds int) monitor {
	return monitor{
		threshold:   threshold,
		trace:       make([]float64, 0, rounds),
		convergedAt: -1,
		divergedAt:  -1,
	}
}

// observe appends one round's error and reports whether it is non-finite.
func (m *monitor) observe(errVal float64) bool {
	m.trace = append(m.trace, errVal)
	round := len(m.trace)

	if math.IsNaN(errVal) || math.IsInf(errVal, 0) {
		if m.divergedAt < 0 {
			m.divergedAt = round
		}

		return true
	}
	if m.convergedAt < 0 && errVal <= m.threshold {
		m.convergedAt = round
	}

	return false
}
