// Package binomial computes exact generalized binomial coefficients
// C(x, n) = x(x−1)…(x−n+1) / n! — the Mahler basis functions φ_n(x) = C(x, n)
// evaluated at non-negative integer points.
//
// Conventions (load-bearing for operator truncation):
//
//   - C(x, 0) = 1 for every x ≥ 0
//   - C(x, n) = 0 whenever 0 ≤ x < n
//
// All arithmetic is exact over math/big integers; downstream kernel detection
// relies on exact zero tests, so no floating point appears anywhere.
//
// An Engine memoizes coefficients keyed by (x, n) behind an RWMutex; the memo
// is a pure performance optimization with no observable effect on results.
// An Engine is safe for concurrent use.
package binomial
