// Package dynamics implements the accelerated qx+1 integer maps whose
// Koopman operators the rest of the module studies.
//
// The map family is
//
//	T(k) = k / 2            if k is even,
//	T(k) = (a·k + 1) / 2    if k is odd,
//
// for a configurable odd multiplier a ≥ 3. Two variants matter here:
//
//   - Collatz (a = 3): the Syracuse map; conjectured to have no cycles
//     besides the trivial ones — the system under test.
//   - FiveX (a = 5): the 5x+1 map with the known 5-cycle {1, 3, 8, 4, 2} —
//     the positive control that validates the spectral method.
//
// Maps are pure and exact on non-negative integers; Apply memoizes results
// behind an RWMutex because matrix construction queries the same small k
// across every row. A Map is safe for concurrent use.
//
// See examples in example_test.go.
package dynamics
