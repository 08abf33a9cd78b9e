// SPDX-License-Identifier: MIT
// Package dynamics: sentinel error set.
// All constructors and operations MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.

package dynamics

import "errors"

var (
	// ErrBadMultiplier is returned by NewMap when the multiplier is even or
	// smaller than 3; only odd a ≥ 3 yields a well-defined accelerated map.
	ErrBadMultiplier = errors.New("dynamics: multiplier must be odd and >= 3")

	// ErrNegativeInput is returned by Apply and Orbit for k < 0; the maps are
	// defined on the non-negative integers only.
	ErrNegativeInput = errors.New("dynamics: input must be non-negative")

	// ErrBadSteps is returned by Orbit when the requested step count is negative.
	ErrBadSteps = errors.New("dynamics: step count must be non-negative")
)
