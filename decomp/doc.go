// SPDX-License-Identifier: MIT

// Package decomp wraps the dense decompositions the Procrustes solvers
// consume: singular value decomposition and symmetric eigendecomposition,
// plus the diagonalizability check guarding the latter.
//
// The wrappers are thin by design — gonum does the numerical work — but
// they normalize two things the solvers rely on:
//
//   - Ordering: singular values and eigenvalues are always returned in
//     descending order, with the vector matrix reordered to match.
//   - Failure surface: non-convergence propagates as ErrDecompFailed
//     wrapped with the failing operation and shape, never as a panic.
//
// All functions are deterministic and side-effect free; inputs are never
// mutated.
package decomp
