// SPDX-License-Identifier: MIT

// Package kopt implements the k-opt (greedy) heuristic that polishes
// permutation-constrained Procrustes solutions.
//
// Permutation-constrained problems have no closed form: relaxed continuous
// solutions must be snapped to a true permutation matrix and then locally
// improved. This package performs that local search. Starting from an
// initial permutation matrix, every subset of k distinct indices and every
// non-identity arrangement of that subset defines a candidate reordering;
// any strictly improving candidate is accepted immediately
// (first-improvement, not best-improvement) and the scan restarts from the
// new state. The search stops at a local optimum — a full pass with no
// improving move — or the instant the objective drops to the exact-match
// tolerance.
//
// The neighborhood has C(n,k)·k! candidates per pass, exponential in k, so
// k is expected to be small (2 or 3). This is explicitly a local, not
// global, optimizer: it polishes an already-good initial permutation, it
// does not solve assignment from scratch.
//
// Determinism: subsets are enumerated in lexicographic order and subset
// arrangements in gonum combin's fixed generation order, so results are
// reproducible for fixed inputs and k. The search is inherently sequential
// (each move depends on the previous accepted state); it is not run in
// parallel internally, which would change the accept-first semantics.
package kopt
