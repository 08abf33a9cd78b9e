// SPDX-License-Identifier: MIT
// Package binomial: sentinel error set.

package binomial

import "errors"

// ErrNegativeArgument is returned by Coeff and Rat when x < 0 or n < 0;
// the Mahler evaluation points in this module are always non-negative.
var ErrNegativeArgument = errors.New("binomial: arguments must be non-negative")
