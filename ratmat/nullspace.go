// SPDX-License-Identifier: MIT
// Package ratmat — exact nullspace extraction.
//
// Purpose:
//   - Reduce a square rational matrix to reduced row-echelon form (RREF)
//     with exact row operations only, and read rank, nullity and an explicit
//     kernel basis off the reduced form.
//
// Determinism (documented tie-breaks, load-bearing for reproducibility):
//   - Columns are scanned left-to-right; the pivot for a column is the FIRST
//     row at or below the current pivot row with an exactly nonzero entry.
//   - Free variables are assigned value 1 in ascending column order; all
//     other free variables are 0 in that basis vector.
//
// With exact arithmetic there is no numerical-stability reason to prefer any
// other pivot; only the tie-break's reproducibility matters. Canonicalization
// downstream (package canon) removes even this residual basis dependence.

package ratmat

import (
	"fmt"
	"math/big"
)

// Nullspace computes the exact kernel of square matrix a.
// It returns the nullity (dim ker a) and one basis vector per free column;
// every returned vector satisfies a·v = 0 with exact equality, verifiable by
// direct substitution through MatVec.
//
// Stage 1 (Validate): non-nil, square input (ErrNonSquare otherwise).
// Stage 2 (Execute): RREF on a working clone; the input is never mutated.
// Stage 3 (Finalize): back-substitution-free basis extraction from the RREF.
//
// Rank accounting is an internal invariant: a mismatch between pivot count
// and pivot-row count indicates an implementation bug and panics loudly
// rather than degrading to a wrong answer.
//
// Complexity: O(n³) exact row operations; entry bit-length can grow during
// elimination (fractions stay reduced after every operation, which is the
// standard mitigation).
func Nullspace(a *Dense) (int, []Vector, error) {
	// Validate the input shape.
	if err := validateSquare(a); err != nil {
		return 0, nil, matErrorf(opNullspace, err)
	}

	// Work on a clone; Nullspace must not mutate its argument.
	work := a.Clone()
	n := work.r

	// pivots[i] is the column of the pivot owned by (post-swap) row i.
	pivots := make([]int, 0, n)
	scratch := new(big.Rat)
	factor := new(big.Rat)
	pivotRow := 0

	for col := 0; col < n && pivotRow < n; col++ {
		// Pivot search: first exactly-nonzero entry at or below pivotRow.
		found := -1
		for r := pivotRow; r < n; r++ {
			if work.at(r, col).Sign() != 0 {
				found = r
				break
			}
		}
		if found == -1 {
			continue // free column; no pivot here
		}

		// Move the pivot row into place (pointer swaps only).
		work.swapRows(pivotRow, found)

		// Scale the pivot row so the pivot becomes exactly 1.
		// Entries left of col in this row are already zero.
		factor.Inv(work.at(pivotRow, col))
		for c := col; c < n; c++ {
			e := work.at(pivotRow, c)
			e.Mul(e, factor)
		}

		// Eliminate the column everywhere else (full RREF, above and below).
		for r := 0; r < n; r++ {
			if r == pivotRow {
				continue
			}
			lead := work.at(r, col)
			if lead.Sign() == 0 {
				continue
			}
			factor.Set(lead)
			for c := col; c < n; c++ {
				scratch.Mul(factor, work.at(pivotRow, c))
				e := work.at(r, c)
				e.Sub(e, scratch)
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	// Internal invariant: every recorded pivot consumed exactly one row.
	if len(pivots) != pivotRow {
		panic(fmt.Sprintf("ratmat: pivot accounting broken: %d pivots, %d rows", len(pivots), pivotRow))
	}

	rank := len(pivots)
	nullity := n - rank
	if nullity == 0 {
		return 0, nil, nil // trivial kernel; no basis vectors to build
	}

	// Mark pivot columns; everything else is free.
	isPivot := make([]bool, n)
	for _, col := range pivots {
		isPivot[col] = true
	}

	// One basis vector per free column, ascending order: set the free
	// variable to 1, all other free variables to 0, and read the pivot
	// variables directly off the RREF (v[pivotCol] = −work[row][free]).
	basis := make([]Vector, 0, nullity)
	for free := 0; free < n; free++ {
		if isPivot[free] {
			continue
		}
		vec, err := NewVector(n)
		if err != nil {
			return 0, nil, matErrorf(opNullspace, err)
		}
		vec[free].SetInt64(1)
		for row, pivotCol := range pivots {
			vec[pivotCol].Neg(work.at(row, free))
		}
		basis = append(basis, vec)
	}

	return nullity, basis, nil
}
