// Package koopman_test contains unit tests for operator matrix assembly.
package koopman_test

import (
	"testing"

	"github.com/katalvlaran/dipole/dynamics"
	"github.com/katalvlaran/dipole/koopman"
	"github.com/katalvlaran/dipole/ratmat"
	"github.com/stretchr/testify/require"
)

// requireIntEntry asserts m[i][j] is the integer want (denominator 1).
func requireIntEntry(t *testing.T, m *ratmat.Dense, i, j int, want int64) {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	require.True(t, v.IsInt(), "entry (%d,%d) = %s is not an integer", i, j, v.RatString())
	require.EqualValues(t, want, v.Num().Int64(), "entry (%d,%d)", i, j)
}

// TestBuildBadArguments ensures fail-fast validation before any assembly.
func TestBuildBadArguments(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.Collatz)
	require.NoError(t, err)

	_, err = b.Build(0)
	require.ErrorIs(t, err, koopman.ErrBadSize)

	_, err = b.Build(-5)
	require.ErrorIs(t, err, koopman.ErrBadSize)

	_, err = b.BuildPower(4, 0)
	require.ErrorIs(t, err, koopman.ErrBadPower)

	_, err = b.BuildPower(-1, 2)
	require.ErrorIs(t, err, koopman.ErrBadSize)

	_, err = koopman.NewBuilderForMap(nil)
	require.ErrorIs(t, err, koopman.ErrNilMap)
}

// TestBuildCollatzPinned pins every entry of M_4 for the 3x+1 map against the
// finite-difference formula worked out by hand:
//
//	M[m,j] = Σ_{k=0}^{m} (−1)^{m−k} C(m,k) C(T(k), j),
//	T(0)=0, T(1)=2, T(2)=1, T(3)=5.
func TestBuildCollatzPinned(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.Collatz)
	require.NoError(t, err)

	m, err := b.Build(4)
	require.NoError(t, err)

	want := [][]int64{
		{1, 0, 0, 0},
		{0, 2, 1, 0},
		{0, -3, -2, 0},
		{0, 8, 13, 10},
	}
	for i := range want {
		for j := range want[i] {
			requireIntEntry(t, m, i, j, want[i][j])
		}
	}
}

// TestBuildEntriesAreIntegers verifies the finite-difference assembly only
// ever produces integer-valued rationals.
func TestBuildEntriesAreIntegers(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.FiveX)
	require.NoError(t, err)

	m, err := b.Build(8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.True(t, v.IsInt(), "entry (%d,%d) = %s", i, j, v.RatString())
		}
	}
}

// TestBuildDeterministic verifies two builds produce identical matrices.
func TestBuildDeterministic(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.Collatz)
	require.NoError(t, err)

	first, err := b.Build(12)
	require.NoError(t, err)
	second, err := b.Build(12)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			x, err := first.At(i, j)
			require.NoError(t, err)
			y, err := second.At(i, j)
			require.NoError(t, err)
			require.Zero(t, x.Cmp(y), "entry (%d,%d)", i, j)
		}
	}
}

// TestDeltaZeroIsFixed verifies the fixed point at 0: (I − M_N)·δ₀ = 0
// exactly for every N (checked here across a small sweep).
func TestDeltaZeroIsFixed(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.Collatz)
	require.NoError(t, err)

	for _, n := range []int{1, 2, 5, 10, 16} {
		m, err := b.Build(n)
		require.NoError(t, err)

		a, err := ratmat.SubFromIdentity(m)
		require.NoError(t, err)

		delta, err := ratmat.NewVector(n)
		require.NoError(t, err)
		delta[0].SetInt64(1)

		res, err := ratmat.MatVec(a, delta)
		require.NoError(t, err)
		require.True(t, res.IsZero(), "N=%d: (I−M)·δ₀ = %s", n, res)
	}
}

// TestBuildPowerMatchesMul checks BuildPower against explicit products.
func TestBuildPowerMatchesMul(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.FiveX)
	require.NoError(t, err)

	m, err := b.Build(6)
	require.NoError(t, err)

	square, err := ratmat.Mul(m, m)
	require.NoError(t, err)

	viaPower, err := b.BuildPower(6, 2)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			x, err := square.At(i, j)
			require.NoError(t, err)
			y, err := viaPower.At(i, j)
			require.NoError(t, err)
			require.Zero(t, x.Cmp(y), "entry (%d,%d)", i, j)
		}
	}

	// Power 1 must equal the base matrix.
	one, err := b.BuildPower(6, 1)
	require.NoError(t, err)
	x, err := one.At(1, 1)
	require.NoError(t, err)
	y, err := m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, x.Cmp(y))
}

// TestOnRowProgress verifies the progress hook fires once per row, in order.
func TestOnRowProgress(t *testing.T) {
	b, err := koopman.NewBuilder(dynamics.Collatz)
	require.NoError(t, err)

	var seen []int
	b.OnRow = func(completed, total int) {
		require.Equal(t, 7, total)
		seen = append(seen, completed)
	}

	_, err = b.Build(7)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, seen)
}
