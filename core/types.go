// SPDX-License-Identifier: MIT

// Package core: sentinel error set and the shared Result container.
//
// Every message is prefixed with "core: ..." so failures can be traced to the
// originating package when wrapped at solver facades. Algorithms MUST return
// these sentinels (optionally wrapped via fmt.Errorf("Op: %w", err)) and
// tests MUST check them via errors.Is. No function panics on user input.
package core

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed where a value
	// is required.
	ErrNilMatrix = errors.New("core: nil matrix")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. the residual left·A·right − B cannot be formed.
	ErrShapeMismatch = errors.New("core: matrix shape mismatch")
)

// Result holds the outcome of a Procrustes solver.
//
// A Result is created once per solver call and never mutated afterwards;
// callers must treat all fields as read-only. NewA and NewB are the inputs
// after preprocessing (the matrices the reported Error refers to), not the
// raw caller inputs.
type Result struct {
	// Error is the squared Frobenius norm of the residual, a non-negative
	// real number. Error == 0 iff the constrained transformation reproduces
	// NewB exactly.
	Error float64

	// NewA is the post-preprocessing subject matrix A.
	NewA *mat.Dense

	// NewB is the post-preprocessing reference matrix B.
	NewB *mat.Dense

	// T is the transformation applied on the right-hand side of A (A·T),
	// or the single transformation U of a two-sided single-transformation
	// problem (Uᵀ·A·U).
	T *mat.Dense

	// S is the secondary (left-hand side) transformation of a two-sided
	// problem (S·A·T), or nil for one-sided problems.
	S *mat.Dense
}

// NewResult assembles a Result value. The secondary transformation s may be
// nil for one-sided problems.
func NewResult(err float64, newA, newB, t, s *mat.Dense) Result {
	return Result{Error: err, NewA: newA, NewB: newB, T: t, S: s}
}
