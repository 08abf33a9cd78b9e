// SPDX-License-Identifier: MIT
// Package koopman — operator matrix construction.
//
// Purpose:
//   - Assemble M_N row by row from the finite-difference formula, consuming
//     the pure leaf services (dynamics.Map, binomial.Engine).
//   - Respect the truncation contract: only indices < N are summed/expanded.
//   - Keep assembly deterministic: fixed row→k→column loop order.

package koopman

import (
	"math/big"

	"github.com/katalvlaran/dipole/binomial"
	"github.com/katalvlaran/dipole/dynamics"
	"github.com/katalvlaran/dipole/ratmat"
)

// Builder constructs truncated Koopman matrices for one dynamical map.
// The zero value is not usable; construct via NewBuilder or NewBuilderForMap.
// A Builder may be reused across many N; its leaf caches (map images,
// binomial coefficients) warm up across builds.
//
// OnRow, when non-nil, is invoked after each completed row with
// (completed, total); long builds report progress through it. It must be
// fast and must not retain the builder. Nil disables reporting.
type Builder struct {
	mapT  *dynamics.Map
	binom *binomial.Engine

	OnRow func(completed, total int)
}

// NewBuilder creates a Builder for a named map variant (Collatz or FiveX).
// Complexity: O(1).
func NewBuilder(v dynamics.Variant) (*Builder, error) {
	m, err := dynamics.NewVariant(v)
	if err != nil {
		return nil, err
	}

	return &Builder{mapT: m, binom: binomial.NewEngine()}, nil
}

// NewBuilderForMap creates a Builder around an existing dynamical map,
// sharing its memo across callers.
// Complexity: O(1).
func NewBuilderForMap(m *dynamics.Map) (*Builder, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	return &Builder{mapT: m, binom: binomial.NewEngine()}, nil
}

// Map returns the underlying dynamical map.
func (b *Builder) Map() *dynamics.Map {
	return b.mapT
}

// Build assembles the N×N operator matrix M_N.
// Stage 1 (Validate): N > 0 (ErrBadSize otherwise, fail fast).
// Stage 2 (Execute): for each row m and each j ≤ m, accumulate
// (−1)^{m−j}·C(m,j)·C(T(j), col) into columns col ≤ min(T(j), N−1);
// C(T(j), col) = 0 beyond T(j), so the column loop stops there.
// Stage 3 (Finalize): return the read-only-by-convention matrix.
//
// Every entry is exact (an integer-valued rational); the result is a
// deterministic function of (N, map).
// Complexity: O(N³)-ish exact binomial operations; the dominant cost driver.
func (b *Builder) Build(n int) (*ratmat.Dense, error) {
	// Validate the truncation size before any allocation.
	if n <= 0 {
		return nil, ErrBadSize
	}

	// Allocate the zero matrix once; assembly only ever adds into it.
	out, err := ratmat.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	coeff := new(big.Int)
	prod := new(big.Int)
	term := new(big.Rat)
	for row := 0; row < n; row++ {
		for j := 0; j <= row; j++ {
			// C(row, j), exact.
			c, err := b.binom.Coeff(row, j)
			if err != nil {
				return nil, err
			}
			// Alternating sign of the finite difference: (−1)^{row−j}.
			if (row-j)%2 == 1 {
				coeff.Neg(c)
			} else {
				coeff.Set(c)
			}

			// Image under the map; the only dynamical input to this entry.
			img, err := b.mapT.Apply(j)
			if err != nil {
				return nil, err
			}

			// Truncation contract: expand only columns < n, and C(img, col)
			// vanishes for col > img, so cap at min(img, n−1).
			top := img
			if top > n-1 {
				top = n - 1
			}
			for col := 0; col <= top; col++ {
				cb, err := b.binom.Coeff(img, col)
				if err != nil {
					return nil, err
				}
				if cb.Sign() == 0 {
					continue
				}
				prod.Mul(coeff, cb)
				term.SetInt(prod)
				if err = out.AddAt(row, col, term); err != nil {
					return nil, err
				}
			}
		}
		// Progress hook for long builds (row granularity).
		if b.OnRow != nil {
			b.OnRow(row+1, n)
		}
	}

	return out, nil
}

// BuildPower assembles M_N and raises it to the exact p-th power via binary
// exponentiation (the positive control computes ker(I − M^p) at the known
// cycle length p).
// Stage 1 (Validate): N > 0 and p >= 1, fail fast before the O(N³) build.
// Stage 2 (Execute): Build(n) then ratmat.Pow.
// Complexity: build cost + O(N³·log p) exact multiply-adds.
func (b *Builder) BuildPower(n, p int) (*ratmat.Dense, error) {
	// Validate both arguments before any expensive work.
	if n <= 0 {
		return nil, ErrBadSize
	}
	if p < 1 {
		return nil, ErrBadPower
	}

	m, err := b.Build(n)
	if err != nil {
		return nil, err
	}

	return ratmat.Pow(m, p)
}
