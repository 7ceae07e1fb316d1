// SPDX-License-Identifier: MIT

// Package core provides the fundamental shared types of the procrustes
// library: the immutable Result container produced by every solver and the
// single Frobenius-norm objective used to score candidate transformations.
//
// Every solver in this module — the generic least-squares solver, the k-opt
// combinatorial refiner, the two-sided orthogonal solver — evaluates
// candidates through core.FrobeniusError and reports its outcome through
// core.Result. Centralizing both guarantees that "error" means exactly the
// same quantity everywhere: the squared Frobenius norm of the residual.
//
// Design principles:
//   - Deterministic, side-effect-free functions; inputs are never mutated.
//   - Strict sentinel errors only (see types.go); matched via errors.Is.
//   - No logging, no global state; each call is independent.
package core
