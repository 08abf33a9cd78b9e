// SPDX-License-Identifier: MIT
// Package verify — 2/3-rigidity boundary check.

package verify

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/dipole/dynamics"
	"github.com/katalvlaran/dipole/koopman"
	"github.com/katalvlaran/dipole/ratmat"
)

// RigidityResult is the outcome of one 2/3-rigidity check at truncation N:
// the residual (I − M_N)·v for v = [0, 1, −1, 1, −1, …] must vanish exactly
// at every index below ⌊2N/3⌋.
type RigidityResult struct {
	N            int
	Threshold    int // ⌊2N/3⌋
	FirstNonzero int // first index with a nonzero residual; N when all-zero
	Verified     bool
}

// Rigidity runs the boundary check at one truncation size.
// The threshold comes from the expansion factor of the odd branch:
// T(k) = (3k+1)/2 ≈ (3/2)k, so truncation first bites near k ≈ 2N/3.
func Rigidity(n int) (*RigidityResult, error) {
	builder, err := koopman.NewBuilder(dynamics.Collatz)
	if err != nil {
		return nil, errors.Wrap(err, "creating operator builder")
	}

	m, err := builder.Build(n)
	if err != nil {
		return nil, errors.Wrapf(err, "building M_%d", n)
	}

	a, err := ratmat.SubFromIdentity(m)
	if err != nil {
		return nil, errors.Wrap(err, "forming I − M")
	}

	// The alternating witness [0, 1, −1, 1, −1, …].
	alt, err := ratmat.NewVector(n)
	if err != nil {
		return nil, errors.Wrap(err, "allocating witness vector")
	}
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			alt[i].SetInt64(1)
		} else {
			alt[i].SetInt64(-1)
		}
	}

	residual, err := ratmat.MatVec(a, alt)
	if err != nil {
		return nil, errors.Wrap(err, "computing residual")
	}

	first := residual.FirstNonzero()
	threshold := 2 * n / 3

	return &RigidityResult{
		N:            n,
		Threshold:    threshold,
		FirstNonzero: first,
		Verified:     first >= threshold,
	}, nil
}

// RigiditySweep runs the boundary check across several truncation sizes,
// in the given order.
func RigiditySweep(ns []int) ([]*RigidityResult, error) {
	if len(ns) == 0 {
		return nil, errors.New("verify: empty rigidity sweep")
	}
	results := make([]*RigidityResult, 0, len(ns))
	for _, n := range ns {
		res, err := Rigidity(n)
		if err != nil {
			return nil, errors.Wrapf(err, "rigidity at N=%d", n)
		}
		results = append(results, res)
	}

	return results, nil
}
