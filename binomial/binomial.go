// SPDX-License-Identifier: MIT
// Package binomial — memoized exact coefficients.
//
// Purpose:
//   - Provide C(x, n) as *big.Int (and *big.Rat for matrix assembly) exactly.
//   - Keep evaluation deterministic: multiplicative formula with a fixed loop
//     order; each partial product is divisible by the step divisor (invariant
//     of the rising construction), so Div is always exact.
//   - Guarantee safety at the public surface: errors instead of panics.

package binomial

import (
	"math/big"
	"sync"
)

// key identifies a memoized coefficient.
type key struct{ x, n int }

// Engine is a memoizing calculator for exact binomial coefficients.
// The zero value is not usable; construct via NewEngine.
// Safe for concurrent use: read-mostly cache behind an RWMutex.
type Engine struct {
	mu    sync.RWMutex
	cache map[key]*big.Int
}

// NewEngine creates an Engine with an empty memo.
// Complexity: O(1).
func NewEngine() *Engine {
	return &Engine{cache: make(map[key]*big.Int)}
}

// Coeff returns C(x, n) exactly for x ≥ 0, n ≥ 0.
// Stage 1 (Validate): reject negative arguments.
// Stage 2 (Execute): memo lookup under RLock; multiplicative formula on miss,
// with the symmetry reduction n → x−n when n > x/2.
// Stage 3 (Finalize): store a private copy and return a caller-owned copy.
// Edge cases: C(x, 0) = 1 for all x; C(x, n) = 0 for 0 ≤ x < n.
// Complexity: O(min(n, x−n)) big-integer steps on a miss, O(1) on a hit.
func (e *Engine) Coeff(x, n int) (*big.Int, error) {
	// Validate domain: all Mahler evaluation points here are non-negative.
	if x < 0 || n < 0 {
		return nil, ErrNegativeArgument
	}
	// Truncation convention: C(x, n) = 0 when the falling factorial hits zero.
	if n > x {
		return big.NewInt(0), nil
	}
	// Boundary: C(x, 0) = C(x, x) = 1.
	if n == 0 || n == x {
		return big.NewInt(1), nil
	}
	// Symmetry reduction keeps the loop short.
	if n > x/2 {
		n = x - n
	}

	// Fast path: memo hit under read lock.
	k := key{x: x, n: n}
	e.mu.RLock()
	if v, ok := e.cache[k]; ok {
		e.mu.RUnlock()
		return new(big.Int).Set(v), nil // copy: callers may mutate
	}
	e.mu.RUnlock()

	// Multiplicative formula: result starts at 1 and absorbs (x−i)/(i+1)
	// step by step; each intermediate product is divisible by (i+1).
	result := big.NewInt(1)
	num := new(big.Int)
	den := new(big.Int)
	for i := 0; i < n; i++ {
		num.SetInt64(int64(x - i))
		den.SetInt64(int64(i + 1))
		result.Mul(result, num)
		result.Div(result, den) // exact by construction
	}

	// Store a private copy under write lock; duplicate stores are idempotent.
	e.mu.Lock()
	e.cache[k] = new(big.Int).Set(result)
	e.mu.Unlock()

	return result, nil
}

// Rat returns C(x, n) as a reduced *big.Rat (denominator 1).
// Thin facade over Coeff for exact matrix assembly.
func (e *Engine) Rat(x, n int) (*big.Rat, error) {
	c, err := e.Coeff(x, n)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).SetInt(c), nil
}
