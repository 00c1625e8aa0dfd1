package matrix_test

import (
	"testing"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinEigSym_Diagonal returns the smallest diagonal entry for a diagonal
// matrix (eigenvalues are the diagonal itself).
func TestMinEigSym_Diagonal(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{
		{5, 0, 0},
		{0, 0.25, 0},
		{0, 0, 9},
	})
	require.NoError(t, err)

	min, err := matrix.MinEigSym(d, matrix.EigenTol, matrix.EigenMaxIter)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, min, 1e-9)
}

// TestMinEigSym_Known2x2 checks a 2×2 with analytic eigenvalues.
func TestMinEigSym_Known2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	s, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	min, err := matrix.MinEigSym(s, matrix.EigenTol, matrix.EigenMaxIter)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, min, 1e-9)
}

// TestMinEigSym_GramIsNonNegative verifies the PSD property of Gram output:
// the smallest eigenvalue of AᵀA is ≥ 0 (up to tolerance).
func TestMinEigSym_GramIsNonNegative(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	s, err := matrix.Gram(a, 0)
	require.NoError(t, err)

	min, err := matrix.MinEigSym(s, matrix.EigenTol, matrix.EigenMaxIter)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, min, -1e-8, "Gram matrices are positive semidefinite")
}

// TestMinEigSym_Guards covers nil, non-square and 1×1 inputs.
func TestMinEigSym_Guards(t *testing.T) {
	_, err := matrix.MinEigSym(nil, matrix.EigenTol, matrix.EigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	_, err = matrix.MinEigSym(rect, matrix.EigenTol, matrix.EigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	one, err := matrix.NewDenseFromRows([][]float64{{7}})
	require.NoError(t, err)
	min, err := matrix.MinEigSym(one, matrix.EigenTol, matrix.EigenMaxIter)
	require.NoError(t, err)
	assert.Equal(t, 7.0, min)
}
