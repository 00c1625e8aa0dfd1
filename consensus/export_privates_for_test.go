// SPDX-License-Identifier: MIT
// Package consensus: test-only aliases for internal pieces.

package consensus

// Monitor internals, exercised directly by the threshold/divergence tests.
type Monitor = monitor

func NewMonitorForTest(threshold float64, rounds int) Monitor {
	return newMonitor(threshold, rounds)
}

func (m *monitor) Observe(errVal float64) bool { return m.observe(errVal) }
func (m *monitor) Trace() []float64            { return m.trace }
func (m *monitor) ConvergedAt() int            { return m.convergedAt }
func (m *monitor) DivergedAt() int             { return m.divergedAt }
