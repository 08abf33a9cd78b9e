// SPDX-License-Identifier: MIT
// Package koopman: sentinel error set.

package koopman

import "errors"

var (
	// ErrBadSize is returned by Build and BuildPower for truncation size N <= 0.
	// A degenerate matrix is never produced; the violation fails fast.
	ErrBadSize = errors.New("koopman: truncation size must be > 0")

	// ErrBadPower is returned by BuildPower for operator powers k <= 0.
	ErrBadPower = errors.New("koopman: operator power must be >= 1")

	// ErrNilMap is returned by NewBuilderForMap when the dynamical map is nil.
	ErrNilMap = errors.New("koopman: dynamical map is nil")
)
