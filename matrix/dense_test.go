package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative cols must error")
}

// TestNewDenseFromRows_Validation covers ragged rows and non-finite entries.
func TestNewDenseFromRows_Validation(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "nil input must error")

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must error")

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN entry must error")

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "Inf entry must error")
}

// TestDense_AtSetRow exercises the indexers and the Row view semantics.
func TestDense_AtSetRow(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(0, 1, 9))
	v, _ = m.At(0, 1)
	assert.Equal(t, 9.0, v)

	assert.ErrorIs(t, m.Set(0, 5, 1), matrix.ErrOutOfRange)

	// Row is a view: writing through it mutates the matrix.
	row, err := m.Row(1)
	require.NoError(t, err)
	row[1] = 42
	v, _ = m.At(1, 1)
	assert.Equal(t, 42.0, v, "Row must alias the backing storage")

	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_Clone verifies deep-copy semantics.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -1))

	orig, _ := m.At(0, 0)
	assert.Equal(t, 1.0, orig, "mutating the clone must not touch the original")
}
