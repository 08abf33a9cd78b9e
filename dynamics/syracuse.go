// SPDX-License-Identifier: MIT
// Package dynamics — Map construction and evaluation.
//
// Purpose:
//   - Provide the memoized qx+1 map used by the Koopman matrix builder.
//   - Guarantee safety at the public surface: Apply/Orbit return errors, never panic.
//   - Keep evaluation deterministic and exact (integer division only on even operands).

package dynamics

import "sync"

// Variant selects a named multiplier for the accelerated map family.
type Variant int

const (
	// Collatz is the 3x+1 (Syracuse) map: T(k) = k/2 or (3k+1)/2.
	Collatz Variant = 3
	// FiveX is the 5x+1 map: T(k) = k/2 or (5k+1)/2; carries the 5-cycle {1,3,8,4,2}.
	FiveX Variant = 5
)

// Map is a memoized accelerated qx+1 map with odd multiplier a ≥ 3.
// The zero value is not usable; construct via NewMap or NewVariant.
// A Map is safe for concurrent use: the cache is guarded by an RWMutex and
// reads dominate after warm-up (read-mostly access pattern).
type Map struct {
	a     int // odd multiplier, a >= 3
	mu    sync.RWMutex
	cache map[int]int // memoized k -> T(k)
}

// NewMap creates a Map with the given odd multiplier a ≥ 3.
// Stage 1 (Validate): reject even or too-small multipliers.
// Stage 2 (Prepare): allocate the memo cache.
// Complexity: O(1).
func NewMap(a int) (*Map, error) {
	// Validate the multiplier: the acceleration (a·k+1)/2 needs a odd.
	if a < 3 || a%2 == 0 {
		return nil, ErrBadMultiplier
	}

	// Return the initialized map with an empty cache.
	return &Map{a: a, cache: make(map[int]int)}, nil
}

// NewVariant creates a Map for a named Variant (Collatz or FiveX).
// Thin alias of NewMap with an intention-revealing name.
func NewVariant(v Variant) (*Map, error) {
	return NewMap(int(v))
}

// Multiplier reports the odd multiplier a of the map.
// Complexity: O(1).
func (m *Map) Multiplier() int {
	return m.a // immutable after construction; no lock needed
}

// Apply evaluates T(k) = k/2 for even k, (a·k+1)/2 for odd k.
// Stage 1 (Validate): reject negative k.
// Stage 2 (Execute): consult the memo under RLock, compute on miss.
// Stage 3 (Finalize): store under Lock and return.
// Exact for every non-negative k; T(0) = 0 by the even branch.
// Complexity: O(1) amortized.
func (m *Map) Apply(k int) (int, error) {
	// Validate domain: the map is defined on non-negative integers only.
	if k < 0 {
		return 0, ErrNegativeInput
	}

	// Fast path: memo hit under read lock.
	m.mu.RLock()
	if v, ok := m.cache[k]; ok {
		m.mu.RUnlock()
		return v, nil
	}
	m.mu.RUnlock()

	// Compute the image exactly; both branches divide an even integer by 2.
	var v int
	if k%2 == 0 {
		v = k / 2
	} else {
		v = (m.a*k + 1) / 2
	}

	// Store under write lock. Duplicate writes are idempotent (pure map).
	m.mu.Lock()
	m.cache[k] = v
	m.mu.Unlock()

	return v, nil
}

// Orbit returns the forward orbit [k, T(k), T²(k), …] of length steps+1.
// Used by the resonance control to display known cycles.
// Stage 1 (Validate): reject negative k or steps.
// Stage 2 (Execute): iterate Apply with a fixed loop order.
// Complexity: O(steps) map evaluations.
func (m *Map) Orbit(k, steps int) ([]int, error) {
	// Validate inputs before any allocation.
	if k < 0 {
		return nil, ErrNegativeInput
	}
	if steps < 0 {
		return nil, ErrBadSteps
	}

	// Allocate the full orbit once; index 0 is the seed itself.
	orbit := make([]int, steps+1)
	orbit[0] = k
	for i := 1; i <= steps; i++ {
		next, err := m.Apply(orbit[i-1])
		if err != nil {
			return nil, err // unreachable for valid seeds; kept for uniformity
		}
		orbit[i] = next
	}

	return orbit, nil
}
