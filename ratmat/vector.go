// SPDX-License-Identifier: MIT
// Package ratmat — Vector type for exact kernel elements.

package ratmat

import (
	"math/big"
	"strings"
)

// Vector is a length-N ordered sequence of exact rationals, representing a
// candidate or kernel basis element. Entries are never nil after NewVector.
type Vector []*big.Rat

// NewVector returns a zero-initialized Vector of length n.
// Returns ErrBadShape for n <= 0.
// Complexity: O(n).
func NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v, nil
}

// VectorFromInt64 builds a Vector from integer components.
// Handy in tests and for the alternating rigidity witness.
// Complexity: O(n).
func VectorFromInt64(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}

	return v
}

// Clone returns a deep copy of the vector.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// IsZero reports whether every component is exactly zero.
// Exact sign tests only; no tolerance exists anywhere in this package.
// Complexity: O(n).
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact componentwise equality with w.
// Vectors of different lengths are never equal.
// Complexity: O(n).
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}

	return true
}

// FirstNonzero returns the index of the first nonzero component, or len(v)
// when the vector is exactly zero (the rigidity check reads this boundary).
// Complexity: O(n).
func (v Vector) FirstNonzero() int {
	for i, x := range v {
		if x.Sign() != 0 {
			return i
		}
	}

	return len(v)
}

// String renders the vector as "[a, b, c]" using RatString per entry.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		sb.WriteString(x.RatString())
		if i < len(v)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
