// SPDX-License-Identifier: MIT
// Package ratmat — exact algebra kernels.
//
// Purpose:
//   - Declare the canonical exact-algebra kernels used across the module:
//     Sub, Mul, Pow (binary exponentiation), MatVec, SubFromIdentity.
//   - Define operation tags and central validators for determinism and
//     uniform error reporting.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels, or
//     sentinels wrapped via matErrorf at the facade.
//   - Loop orders are fixed (i→j→k); results are freshly allocated; operands
//     are never mutated.

package ratmat

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opPow       = "Pow"
	opMatVec    = "MatVec"
	opIdentity  = "Identity"
	opNullspace = "Nullspace"
)

// matErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil; callers still match the sentinel with errors.Is.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNonNil ensures every operand is a usable *Dense.
func validateNonNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil || m.data == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSquare ensures m is non-nil and square.
// Shared by the power, identity-subtraction and nullspace kernels.
func validateSquare(m *Dense) error {
	if err := validateNonNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the strict constructor.
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, matErrorf(opIdentity, err)
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.at(i, i).SetInt64(1)
	}

	return ident, nil
}

// Sub computes out = a − b elementwise into a fresh Dense.
// Stage 1 (Validate): non-nil operands, identical shapes.
// Stage 2 (Execute): single flat loop over the backing slices.
// Complexity: O(r*c) exact subtractions.
func Sub(a, b *Dense) (*Dense, error) {
	// Validate operands.
	if err := validateNonNil(a, b); err != nil {
		return nil, matErrorf(opSub, err)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matErrorf(opSub, ErrDimensionMismatch)
	}
	// Allocate the result.
	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matErrorf(opSub, err)
	}
	// Flat deterministic walk 0..(r*c−1).
	for i := range out.data {
		out.data[i].Sub(a.data[i], b.data[i])
	}

	return out, nil
}

// SubFromIdentity computes I − m for square m into a fresh Dense.
// This is the matrix whose kernel the dipole verification studies.
// Complexity: O(n²).
func SubFromIdentity(m *Dense) (*Dense, error) {
	// Validate squareness (identity only exists for square shapes).
	if err := validateSquare(m); err != nil {
		return nil, matErrorf(opSub, err)
	}
	ident, err := NewIdentity(m.r)
	if err != nil {
		return nil, err
	}

	return Sub(ident, m)
}

// Mul computes the exact matrix product a·b into a fresh Dense.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): fixed i→j→k loops with one reusable scratch rational.
// Complexity: O(r·c·k) exact multiply-adds; bit-length of entries may grow.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands.
	if err := validateNonNil(a, b); err != nil {
		return nil, matErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matErrorf(opMul, ErrDimensionMismatch)
	}
	// Allocate the result.
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matErrorf(opMul, err)
	}
	// Accumulate with a single scratch value; entries stay reduced after
	// every Add (math/big keeps rationals normalized).
	scratch := new(big.Rat)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			acc := out.at(i, j)
			for k := 0; k < a.c; k++ {
				scratch.Mul(a.at(i, k), b.at(k, j))
				acc.Add(acc, scratch)
			}
		}
	}

	return out, nil
}

// Pow computes the exact p-th power of square m via binary exponentiation.
// Stage 1 (Validate): square m, p >= 1.
// Stage 2 (Execute): square-and-multiply; Pow(m, 1) returns a clone.
// Complexity: O(n³·log p) exact multiply-adds.
func Pow(m *Dense, p int) (*Dense, error) {
	// Validate operands.
	if err := validateSquare(m); err != nil {
		return nil, matErrorf(opPow, err)
	}
	if p < 1 {
		return nil, matErrorf(opPow, ErrBadExponent)
	}
	// p == 1 short-circuits to a defensive clone.
	if p == 1 {
		return m.Clone(), nil
	}

	// Square-and-multiply, accumulating into the identity.
	result, err := NewIdentity(m.r)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	for p > 0 {
		if p%2 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, err
			}
		}
		p /= 2
		if p > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// MatVec computes the exact product m·v into a fresh Vector.
// Stage 1 (Validate): non-nil m, len(v) == m.Cols.
// Stage 2 (Execute): fixed i→j loops with one reusable scratch rational.
// Complexity: O(r·c).
func MatVec(m *Dense, v Vector) (Vector, error) {
	// Validate operands.
	if err := validateNonNil(m); err != nil {
		return nil, matErrorf(opMatVec, err)
	}
	if len(v) != m.c {
		return nil, matErrorf(opMatVec, ErrDimensionMismatch)
	}
	// Allocate the result.
	out, err := NewVector(m.r)
	if err != nil {
		return nil, matErrorf(opMatVec, err)
	}
	// Row-major accumulation with a single scratch value.
	scratch := new(big.Rat)
	for i := 0; i < m.r; i++ {
		acc := out[i]
		for j := 0; j < m.c; j++ {
			scratch.Mul(m.at(i, j), v[j])
			acc.Add(acc, scratch)
		}
	}

	return out, nil
}
