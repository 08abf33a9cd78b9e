// SPDX-License-Identifier: MIT
// Package canon: sentinel error set.

package canon

import "errors"

var (
	// ErrEmptyBasis is returned by Basis when no vectors are supplied.
	ErrEmptyBasis = errors.New("canon: empty basis")

	// ErrRaggedBasis is returned by Basis when vectors have unequal lengths.
	ErrRaggedBasis = errors.New("canon: basis vectors have unequal lengths")
)
