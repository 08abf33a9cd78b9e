// Package ratmat provides dense rational matrices and the exact linear
// algebra this module needs: subtraction from the identity, exact matrix
// products and powers, and RREF-based nullspace extraction.
//
// Everything is exact:
//
//   - Entries are reduced *big.Rat values; no floating point, no epsilon.
//   - Zero tests are exact sign tests; "approximately zero" does not exist.
//   - Rationals stay reduced after every operation (math/big invariant),
//     which bounds the classic elimination fraction blow-up.
//
// Determinism:
//
//   - Fixed loop orders everywhere (row-major i→j→k).
//   - Pivot selection is "first nonzero in the column, scanning top-down";
//     with exact arithmetic no stability concern exists, only a reproducible
//     tie-break matters.
//   - Free variables receive value 1 in ascending column order, so the
//     returned kernel basis is a deterministic function of the input matrix.
//
// The public surface returns errors, never panics, for caller mistakes
// (shape, bounds, nil). Panics are reserved for internal invariant
// violations, which indicate implementation bugs and must fail loudly.
package ratmat
