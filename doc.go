// Package dipole verifies the Dipole Conjecture for accelerated Collatz-type
// maps — dim ker(I − M_N) = 2 — using exact arithmetic end to end.
//
// 🚀 What is dipole?
//
//	A deterministic, exact-arithmetic toolkit that brings together:
//		• Syracuse-type dynamics: T(k) = k/2 (even), (a·k+1)/2 (odd), a ∈ {3, 5, …}
//		• Mahler basis machinery: exact binomial coefficients C(x, n)
//		• Koopman truncation: the N×N operator matrix M_N in the Mahler basis
//		• Exact kernels: rational RREF, rank/nullity, explicit kernel bases
//		• Reproducibility: canonical kernel vectors + SHA-256 digests
//
// ✨ Why choose dipole?
//
//   - No floating point, ever – every entry is a reduced big.Rat
//   - Deterministic – fixed loop orders, documented pivot tie-breaks
//   - Verifiable – kernel vectors check against (I−M)·v = 0 by substitution
//   - Comparable – canonical digests match across runs and implementations
//
// Under the hood, everything is organized under focused subpackages:
//
//	dynamics/ — the qx+1 integer maps (memoized, pure)
//	binomial/ — exact generalized binomial coefficients (memoized)
//	ratmat/   — dense rational matrices, exact algebra, RREF & nullspace
//	koopman/  — the truncated operator builder M_N and its exact powers
//	canon/    — canonical forms and digests for kernel bases
//	verify/   — dipole sweep, 5x+1 resonance control, 2/3-rigidity check
//	cmd/      — the dipole CLI (verify, control, rigidity)
//
// Quick sketch of the pipeline:
//
//	N, variant ──▶ koopman.Build ──▶ ratmat.Nullspace(I−M) ──▶ canon.Basis
//	                                          │
//	                                   nullity, kernel basis, digests
//
// Runtime grows superlinearly with N (exact fractions grow during
// elimination); N=100 is interactive, N=500 is an overnight job.
//
//	go get github.com/katalvlaran/dipole
package dipole
