// SPDX-License-Identifier: MIT
// Package canon — canonical forms and digests.
//
// Purpose:
//   - Map solver output (basis-dependent) to representatives that depend only
//     on the kernel as a subspace.
//   - Serialize deterministically and hash with SHA-256 for cross-run checks.

package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/katalvlaran/dipole/ratmat"
)

// zeroToken is the serialization of the exactly-zero vector.
const zeroToken = "zero"

// Canonicalize returns the canonical representative of v's ray: the unique
// scalar multiple with integer entries, content 1, and a positive first
// nonzero entry. The zero vector canonicalizes to itself. v is not mutated.
//
// Stage 1: clear denominators (multiply by the LCM over nonzero entries).
// Stage 2: divide out the integer content (GCD of the entries).
// Stage 3: flip sign so the first nonzero entry is positive.
//
// Idempotent: a canonical vector has denominators 1, content 1 and a positive
// leading entry, so every stage is the identity on a second pass.
// Complexity: O(n) big-integer gcd/mul operations.
func Canonicalize(v ratmat.Vector) ratmat.Vector {
	out := v.Clone()
	if out.IsZero() {
		return out
	}

	// Stage 1: LCM of denominators over nonzero entries.
	lcm := big.NewInt(1)
	gcd := new(big.Int)
	for _, x := range out {
		if x.Sign() == 0 {
			continue
		}
		d := x.Denom() // always > 0 for a reduced big.Rat
		gcd.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, d)
		lcm.Div(lcm, gcd)
	}
	scale := new(big.Rat).SetInt(lcm)
	for _, x := range out {
		x.Mul(x, scale)
	}

	// Stage 2: integer content (GCD of absolute numerators).
	content := new(big.Int)
	abs := new(big.Int)
	for _, x := range out {
		if x.Sign() == 0 {
			continue
		}
		abs.Abs(x.Num())
		content.GCD(nil, nil, content, abs)
	}
	if content.CmpAbs(big.NewInt(1)) > 0 {
		scale.SetFrac(big.NewInt(1), content)
		for _, x := range out {
			x.Mul(x, scale)
		}
	}

	// Stage 3: fixed sign convention — first nonzero entry positive.
	if out[out.FirstNonzero()].Sign() < 0 {
		for _, x := range out {
			x.Neg(x)
		}
	}

	return out
}

// Digest returns the SHA-256 hex digest of the canonical serialization of v:
// Canonicalize(v) rendered as comma-joined decimal integers; the zero vector
// serializes to the literal "zero". Deterministic across runs and
// implementations; used only for equality checking, never for control flow.
// Complexity: O(n) serialization + one hash.
func Digest(v ratmat.Vector) string {
	c := Canonicalize(v)
	if c.IsZero() {
		return hexSum(zeroToken)
	}

	// Canonical entries are integers (denominator 1); serialize numerators.
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = x.Num().String()
	}

	return hexSum(strings.Join(parts, ","))
}

// Basis returns the canonical basis of span(vs): the nonzero rows of the
// reduced row-echelon form of the vectors, each canonicalized, ordered by
// leading index. The RREF of a subspace is unique, so the result does not
// depend on solver tie-breaks, vector order, or basis mixing. Linearly
// dependent inputs collapse: the output length equals dim span(vs).
//
// Errors: ErrEmptyBasis for no vectors, ErrRaggedBasis for unequal lengths.
// Complexity: O(r²·n) exact row operations for r vectors of length n.
func Basis(vs []ratmat.Vector) ([]ratmat.Vector, error) {
	// Validate the input shape.
	if len(vs) == 0 {
		return nil, ErrEmptyBasis
	}
	n := len(vs[0])
	rows := make([]ratmat.Vector, len(vs))
	for i, v := range vs {
		if len(v) != n {
			return nil, ErrRaggedBasis
		}
		rows[i] = v.Clone() // RREF works in place on private copies
	}

	// RREF over the rows: first-nonzero pivoting, full elimination.
	scratch := new(big.Rat)
	factor := new(big.Rat)
	pivotRow := 0
	for col := 0; col < n && pivotRow < len(rows); col++ {
		found := -1
		for r := pivotRow; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				found = r
				break
			}
		}
		if found == -1 {
			continue
		}
		rows[pivotRow], rows[found] = rows[found], rows[pivotRow]

		// Scale the pivot row to a leading 1.
		factor.Inv(rows[pivotRow][col])
		for c := col; c < n; c++ {
			rows[pivotRow][c].Mul(rows[pivotRow][c], factor)
		}
		// Eliminate the column in every other row.
		for r := range rows {
			if r == pivotRow || rows[r][col].Sign() == 0 {
				continue
			}
			factor.Set(rows[r][col])
			for c := col; c < n; c++ {
				scratch.Mul(factor, rows[pivotRow][c])
				rows[r][c].Sub(rows[r][c], scratch)
			}
		}
		pivotRow++
	}

	// Keep the nonzero rows (0..pivotRow−1) in canonical per-vector form;
	// RREF already orders them by ascending leading index.
	out := make([]ratmat.Vector, 0, pivotRow)
	for i := 0; i < pivotRow; i++ {
		out = append(out, Canonicalize(rows[i]))
	}

	return out, nil
}

// BasisDigests canonicalizes the span of vs and digests each canonical
// basis vector, in order. The digest list is the durable artifact a
// verification run publishes.
func BasisDigests(vs []ratmat.Vector) ([]string, error) {
	basis, err := Basis(vs)
	if err != nil {
		return nil, err
	}
	digests := make([]string, len(basis))
	for i, v := range basis {
		digests[i] = Digest(v)
	}

	return digests, nil
}

// MatrixDigest digests a matrix by flattening it row-major and clearing
// denominators with the LCM over nonzero entries — and nothing more. Unlike
// vector digests, matrices are identity-checked, not ray-checked: content and
// sign stay in the serialization so that M and c·M digest differently.
// Shortened to 32 hex characters for table display; collision resistance is
// still far beyond what cross-run checking needs.
func MatrixDigest(m *ratmat.Dense) (string, error) {
	if m == nil {
		return "", ratmat.ErrNilMatrix
	}
	flat := make(ratmat.Vector, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			x, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			flat = append(flat, x)
		}
	}
	if flat.IsZero() {
		return hexSum(zeroToken)[:32], nil
	}

	// LCM of denominators over nonzero entries.
	lcm := big.NewInt(1)
	gcd := new(big.Int)
	for _, x := range flat {
		if x.Sign() == 0 {
			continue
		}
		d := x.Denom()
		gcd.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, d)
		lcm.Div(lcm, gcd)
	}
	scale := new(big.Rat).SetInt(lcm)
	parts := make([]string, len(flat))
	scaled := new(big.Rat)
	for i, x := range flat {
		scaled.Mul(x, scale)
		parts[i] = scaled.Num().String()
	}

	return hexSum(strings.Join(parts, ","))[:32], nil
}

// hexSum returns the SHA-256 hex digest of s.
func hexSum(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}
