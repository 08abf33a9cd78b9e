// Package ratmat_test contains unit tests for exact nullspace extraction.
package ratmat_test

import (
	"testing"

	"github.com/katalvlaran/dipole/ratmat"
	"github.com/stretchr/testify/require"
)

// requireKernel asserts every basis vector satisfies a·v = 0 exactly.
func requireKernel(t *testing.T, a *ratmat.Dense, basis []ratmat.Vector) {
	t.Helper()
	for i, v := range basis {
		out, err := ratmat.MatVec(a, v)
		require.NoError(t, err)
		require.True(t, out.IsZero(), "basis vector %d is not in the kernel: %s", i, out)
	}
}

// TestNullspaceNonSquare ensures rectangular input is rejected with the sentinel.
func TestNullspaceNonSquare(t *testing.T) {
	a, err := ratmat.NewDense(2, 3)
	require.NoError(t, err)

	_, _, err = ratmat.Nullspace(a)
	require.ErrorIs(t, err, ratmat.ErrNonSquare)

	_, _, err = ratmat.Nullspace(nil)
	require.ErrorIs(t, err, ratmat.ErrNilMatrix)
}

// TestNullspaceIdentity verifies the identity has a trivial kernel.
func TestNullspaceIdentity(t *testing.T) {
	ident, err := ratmat.NewIdentity(4)
	require.NoError(t, err)

	nullity, basis, err := ratmat.Nullspace(ident)
	require.NoError(t, err)
	require.Zero(t, nullity)
	require.Empty(t, basis)
}

// TestNullspaceZeroMatrix verifies the zero matrix has full nullity with the
// standard basis (free variables in ascending column order).
func TestNullspaceZeroMatrix(t *testing.T) {
	zero, err := ratmat.NewDense(3, 3)
	require.NoError(t, err)

	nullity, basis, err := ratmat.Nullspace(zero)
	require.NoError(t, err)
	require.Equal(t, 3, nullity)
	require.Len(t, basis, 3)

	want := []ratmat.Vector{
		ratmat.VectorFromInt64(1, 0, 0),
		ratmat.VectorFromInt64(0, 1, 0),
		ratmat.VectorFromInt64(0, 0, 1),
	}
	for i, v := range basis {
		require.True(t, v.Equal(want[i]), "basis[%d] = %s", i, v)
	}
	requireKernel(t, zero, basis)
}

// TestNullspaceRankOne pins the kernel of a rank-1 2×2 matrix.
func TestNullspaceRankOne(t *testing.T) {
	a := mustDense(t, [][]int64{{1, 2}, {2, 4}})

	nullity, basis, err := ratmat.Nullspace(a)
	require.NoError(t, err)
	require.Equal(t, 1, nullity)
	require.Len(t, basis, 1)

	// RREF is [[1,2],[0,0]]; free column 1 yields v = [-2, 1].
	require.True(t, basis[0].Equal(ratmat.VectorFromInt64(-2, 1)))
	requireKernel(t, a, basis)
}

// TestNullspaceTwoFreeColumns exercises a 3×3 matrix with nullity 2.
func TestNullspaceTwoFreeColumns(t *testing.T) {
	// Rows are multiples of (1, 2, 3): rank 1, nullity 2.
	a := mustDense(t, [][]int64{{1, 2, 3}, {2, 4, 6}, {-1, -2, -3}})

	nullity, basis, err := ratmat.Nullspace(a)
	require.NoError(t, err)
	require.Equal(t, 2, nullity)
	require.Len(t, basis, 2)

	// Free columns 1 and 2, ascending: [-2, 1, 0] then [-3, 0, 1].
	require.True(t, basis[0].Equal(ratmat.VectorFromInt64(-2, 1, 0)))
	require.True(t, basis[1].Equal(ratmat.VectorFromInt64(-3, 0, 1)))
	requireKernel(t, a, basis)
}

// TestNullspaceFractionalPivots exercises elimination that leaves fractional
// RREF entries (kernel vectors need not be integral).
func TestNullspaceFractionalPivots(t *testing.T) {
	// Row 2 = row 0 + row 1 ensures a nontrivial kernel with fractions.
	a := mustDense(t, [][]int64{{2, 3, 5}, {4, 1, 7}, {6, 4, 12}})

	nullity, basis, err := ratmat.Nullspace(a)
	require.NoError(t, err)
	require.Equal(t, 1, nullity)
	requireKernel(t, a, basis)
}

// TestNullspaceDoesNotMutate verifies the input matrix survives elimination.
func TestNullspaceDoesNotMutate(t *testing.T) {
	a := mustDense(t, [][]int64{{1, 2}, {2, 4}})
	before := a.Clone()

	_, _, err := ratmat.Nullspace(a)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			x, err := a.At(i, j)
			require.NoError(t, err)
			y, err := before.At(i, j)
			require.NoError(t, err)
			require.Zero(t, x.Cmp(y))
		}
	}
}

// TestNullspaceDeterministic verifies repeated runs return identical bases.
func TestNullspaceDeterministic(t *testing.T) {
	a := mustDense(t, [][]int64{{1, 2, 3}, {2, 4, 6}, {-1, -2, -3}})

	_, first, err := ratmat.Nullspace(a)
	require.NoError(t, err)
	_, second, err := ratmat.Nullspace(a)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.True(t, first[i].Equal(second[i]))
	}
}
