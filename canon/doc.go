// Package canon normalizes kernel vectors and bases into reproducible
// canonical forms and produces digests for cross-run verification.
//
// Two layers of normalization:
//
//   - Canonicalize: one vector → the unique primitive-integer representative
//     of its ray (denominators cleared, integer content divided out, first
//     nonzero entry positive). Idempotent by construction.
//   - Basis: a set of vectors → the RREF of their span. The reduced
//     row-echelon form of a subspace is unique, so the result is independent
//     of whichever basis the solver happened to return (pivot tie-breaks,
//     free-column ordering, basis mixing all normalize away).
//
// Digests are SHA-256 over a fixed serialization (comma-joined decimal
// entries of the canonical form; the zero vector hashes the literal "zero").
// They are a verification aid for cross-run and cross-implementation
// comparison — never a security mechanism and never an input to numeric
// decisions.
package canon
