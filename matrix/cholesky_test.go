package matrix_test

import (
	"testing"

	"github.com/katalvlaran/distopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCholesky_SolveResidual factors a ridge-regularized Gram matrix and
// checks that the solve satisfies S·x = rhs to within 1e-9 relative residual.
func TestCholesky_SolveResidual(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 0.5},
		{3, 4, -1},
		{5, 6, 2},
		{0.5, -2, 1},
	})
	require.NoError(t, err)

	s, err := matrix.Gram(a, 0.7)
	require.NoError(t, err)

	chol, err := matrix.NewCholesky(s)
	require.NoError(t, err)
	assert.Equal(t, 3, chol.Order())

	rhs := []float64{1, -2, 3}
	x, err := chol.Solve(rhs)
	require.NoError(t, err)

	// Residual check: ‖S·x − rhs‖ / ‖rhs‖ ≤ 1e-9.
	sx, err := matrix.MatVec(s, x)
	require.NoError(t, err)
	num, err := matrix.Dist(sx, rhs)
	require.NoError(t, err)
	den, err := matrix.Dist(rhs, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.LessOrEqual(t, num/den, 1e-9, "relative residual too large")
}

// TestCholesky_Identity verifies that solving with the identity returns rhs.
func TestCholesky_Identity(t *testing.T) {
	eye, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	chol, err := matrix.NewCholesky(eye)
	require.NoError(t, err)

	x, err := chol.Solve([]float64{4, -9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, -9}, x, 1e-12)
}

// TestCholesky_NotSPD rejects indefinite and singular inputs.
func TestCholesky_NotSPD(t *testing.T) {
	// Indefinite: eigenvalues 3 and -1.
	ind, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)
	_, err = matrix.NewCholesky(ind)
	assert.ErrorIs(t, err, matrix.ErrNotSPD, "indefinite matrix must be rejected")

	// Singular: rank-1 Gram of a single direction with no ridge.
	a, err := matrix.NewDenseFromRows([][]float64{{1, 1}})
	require.NoError(t, err)
	s, err := matrix.Gram(a, 0)
	require.NoError(t, err)
	_, err = matrix.NewCholesky(s)
	assert.ErrorIs(t, err, matrix.ErrNotSPD, "singular matrix must be rejected")
}

// TestCholesky_DimensionGuards covers nil, non-square and bad rhs length.
func TestCholesky_DimensionGuards(t *testing.T) {
	_, err := matrix.NewCholesky(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	_, err = matrix.NewCholesky(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	eye, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	chol, err := matrix.NewCholesky(eye)
	require.NoError(t, err)
	_, err = chol.Solve([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
