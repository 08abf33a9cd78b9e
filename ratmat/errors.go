// SPDX-License-Identifier: MIT
// Package ratmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ratmat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for internal invariant violations.

package ratmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ratmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if operation context is essential, wrap at the facade via
// matErrorf — callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r <= 0 or c <= 0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("ratmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("ratmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Sub with different shapes, Mul where a.Cols != b.Rows, MatVec with a
	// vector of the wrong length.
	ErrDimensionMismatch = errors.New("ratmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("ratmat: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("ratmat: nil matrix")

	// ErrNilEntry indicates a nil *big.Rat was passed where a value is required.
	ErrNilEntry = errors.New("ratmat: nil rational entry")

	// ErrBadExponent is returned by Pow for exponents < 1.
	ErrBadExponent = errors.New("ratmat: exponent must be >= 1")
)
