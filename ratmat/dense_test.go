// Package ratmat_test contains unit tests for the Dense rational matrix.
package ratmat_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/dipole/ratmat"
	"github.com/stretchr/testify/require"
)

// TestNewDenseBadShape ensures NewDense rejects non-positive dimensions.
func TestNewDenseBadShape(t *testing.T) {
	_, err := ratmat.NewDense(0, 5)               // zero rows
	require.ErrorIs(t, err, ratmat.ErrBadShape)

	_, err = ratmat.NewDense(5, -1)               // negative columns
	require.ErrorIs(t, err, ratmat.ErrBadShape)
}

// TestRowsCols verifies Rows() and Cols() report the constructed shape.
func TestRowsCols(t *testing.T) {
	m, err := ratmat.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange, not panic.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)

	err = m.Set(2, 0, big.NewRat(1, 2))
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)

	err = m.Set(0, -1, big.NewRat(1, 2))
	require.ErrorIs(t, err, ratmat.ErrOutOfRange)
}

// TestSetNilEntry ensures Set rejects a nil rational.
func TestSetNilEntry(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)

	err = m.Set(0, 0, nil)
	require.ErrorIs(t, err, ratmat.ErrNilEntry)
}

// TestSetGetCopySemantics validates that neither the value passed to Set nor
// the value returned by At aliases internal storage.
func TestSetGetCopySemantics(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)

	in := big.NewRat(3, 7)
	require.NoError(t, m.Set(1, 1, in))

	// Mutating the input after Set must not change the matrix.
	in.SetInt64(999)

	out, err := m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, out.Cmp(big.NewRat(3, 7)))

	// Mutating the output of At must not change the matrix either.
	out.SetInt64(-5)
	again, err := m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, again.Cmp(big.NewRat(3, 7)))
}

// TestCloneIndependence ensures Clone() returns a deep copy without shared storage.
func TestCloneIndependence(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewRat(1, 1)))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, big.NewRat(9, 2)))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, orig.Cmp(big.NewRat(1, 1))) // original unchanged

	cl, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, cl.Cmp(big.NewRat(9, 2))) // clone reflects new value
}

// TestStringOutput checks the RatString-based rendering.
func TestStringOutput(t *testing.T) {
	m, err := ratmat.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, big.NewRat(1, 1))
	_ = m.Set(0, 1, big.NewRat(1, 2))
	_ = m.Set(1, 0, big.NewRat(-3, 4))
	_ = m.Set(1, 1, big.NewRat(0, 1))

	require.Equal(t, "[1, 1/2]\n[-3/4, 0]\n", m.String())
}
