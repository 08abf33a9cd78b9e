// Package verify orchestrates the three verification experiments the module
// exists for, returning plain report structs for the CLI (or any caller) to
// render and compare:
//
//   - Dipole: dim ker(I − M_N) for the 3x+1 map, conjectured to be exactly 2
//     for every N, with canonical digests of the kernel basis as the durable
//     cross-run artifact.
//   - Resonance/Control: the positive control, run by contrast on both maps.
//     For the 5x+1 map with its known 5-cycle {1, 3, 8, 4, 2},
//     dim ker(I − M^k) stays 2 for k = 1..4 and jumps to 6 at k = 5; for the
//     cycle-free 3x+1 map the kernel stays at the baseline everywhere. The
//     spike on one map and its absence on the other is what validates the
//     spectral method.
//   - Rigidity: the 2/3 boundary property. For the alternating vector
//     v = [0, 1, −1, 1, −1, …], the residual (I − M_N)·v vanishes exactly
//     below index ⌊2N/3⌋.
//
// Each run is pure and independent; callers may sweep N concurrently with
// separate calls. Reference-digest comparison is a caller concern (the CLI
// reads expected digests from its config).
package verify
