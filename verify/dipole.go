// SPDX-License-Identifier: MIT
// Package verify — dipole conjecture run.

package verify

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dipole/canon"
	"github.com/katalvlaran/dipole/dynamics"
	"github.com/katalvlaran/dipole/koopman"
	"github.com/katalvlaran/dipole/ratmat"
)

// ExpectedNullity is the conjectured kernel dimension of I − M_N for the
// 3x+1 map: the constant function and the parity dipole, and nothing else.
const ExpectedNullity = 2

// Progress reports completed rows during operator assembly; nil disables it.
type Progress func(completed, total int)

// DipoleReport is the outcome of one dipole verification at truncation N.
// Basis holds the canonical kernel basis (RREF of the kernel, per-vector
// canonical form); Digests are its SHA-256 artifacts, index-aligned.
type DipoleReport struct {
	N        int
	Nullity  int
	Basis    []ratmat.Vector
	Digests  []string
	Verified bool // Nullity == ExpectedNullity
}

// Dipole builds M_N for the 3x+1 map, extracts ker(I − M_N) exactly, and
// canonicalizes the result. Nullity and basis are produced atomically: any
// failure returns no partial report.
// Cost: the O(N³)-ish build plus O(N³) exact elimination; N=100 is
// interactive, N=500 runs for hours.
func Dipole(n int, progress Progress) (*DipoleReport, error) {
	builder, err := koopman.NewBuilder(dynamics.Collatz)
	if err != nil {
		return nil, errors.Wrap(err, "creating operator builder")
	}
	builder.OnRow = progress

	m, err := builder.Build(n)
	if err != nil {
		return nil, errors.Wrapf(err, "building M_%d", n)
	}

	a, err := ratmat.SubFromIdentity(m)
	if err != nil {
		return nil, errors.Wrap(err, "forming I − M")
	}

	nullity, basis, err := ratmat.Nullspace(a)
	if err != nil {
		return nil, errors.Wrap(err, "extracting kernel")
	}

	report := &DipoleReport{N: n, Nullity: nullity, Verified: nullity == ExpectedNullity}
	if nullity > 0 {
		if report.Basis, err = canon.Basis(basis); err != nil {
			return nil, errors.Wrap(err, "canonicalizing kernel basis")
		}
		report.Digests = make([]string, len(report.Basis))
		for i, v := range report.Basis {
			report.Digests[i] = canon.Digest(v)
		}
	}

	return report, nil
}
