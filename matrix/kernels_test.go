package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGram_Known checks AᵀA + ridge·I against a hand-computed result.
func TestGram_Known(t *testing.T) {
	// A = [1 2; 3 4; 5 6] → AᵀA = [35 44; 44 56].
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	s, err := matrix.Gram(a, 0)
	require.NoError(t, err)

	want := [][]float64{{35, 44}, {44, 56}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := s.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, 1e-12, "S[%d,%d]", i, j)
		}
	}
}

// TestGram_Ridge verifies the ridge lands on the diagonal only.
func TestGram_Ridge(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	s, err := matrix.Gram(a, 2.5)
	require.NoError(t, err)

	d0, _ := s.At(0, 0)
	d1, _ := s.At(1, 1)
	off, _ := s.At(0, 1)
	assert.InDelta(t, 3.5, d0, 1e-12)
	assert.InDelta(t, 3.5, d1, 1e-12)
	assert.InDelta(t, 0.0, off, 1e-12)
}

// TestGramVec_Known checks Aᵀv against a hand-computed result.
func TestGramVec_Known(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	y, err := matrix.GramVec(a, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 12}, y, 1e-12)

	_, err = matrix.GramVec(a, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVec_Known checks A·x and the dimension guard.
func TestMatVec_Known(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1}, y, 1e-12)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVectorHelpers covers CloneVec, AxPy, Dist and Finite.
func TestVectorHelpers(t *testing.T) {
	v := []float64{1, 2}
	cp := matrix.CloneVec(v)
	cp[0] = 7
	assert.Equal(t, 1.0, v[0], "CloneVec must be independent")

	dst, err := matrix.AxPy([]float64{1, 1}, 2, []float64{3, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7, 9}, dst, 1e-12)

	_, err = matrix.AxPy([]float64{1}, 1, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d, err := matrix.Dist([]float64{0, 3}, []float64{4, 0})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	assert.True(t, matrix.Finite([]float64{1, 2}))
	assert.False(t, matrix.Finite([]float64{1, math.Inf(1)}))
	assert.False(t, matrix.Finite([]float64{math.NaN()}))
}
