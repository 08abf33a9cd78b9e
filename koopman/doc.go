// Package koopman builds the truncated Koopman operator matrix M_N of a
// qx+1 map in the Mahler basis, and its exact powers.
//
// The Koopman operator acts on functions by composition, (Kf)(x) = f(T(x)).
// In the Mahler basis φ_n(x) = C(x, n) its matrix entries follow from the
// finite-difference expansion
//
//	M[m, n] = Σ_{j=0}^{m} (−1)^{m−j} · C(m, j) · C(T(j), n),
//
// truncated to the top-left N×N block: no index ≥ N is ever summed or
// expanded. Every entry is an exact rational (in fact an integer) and the
// matrix is a deterministic function of (N, map, power).
//
// Cost: a build is O(N³)-ish exact binomial evaluations — the dominant
// runtime driver of the whole verification; the design deliberately trades
// runtime for the exactness downstream kernel detection requires.
//
// See examples in example_test.go.
package koopman
