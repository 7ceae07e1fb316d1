// SPDX-License-Identifier: MIT

// Package kopt: sentinel errors, the injected Objective type, and refiner
// Options with documented defaults.
package kopt

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultTol is the early-stop threshold: the search returns the instant
// the objective value drops to ≤ DefaultTol, treating the candidate as an
// exact match.
const DefaultTol = 1e-8

// DefaultK is the default neighborhood order (3-index reorderings).
const DefaultK = 3

var (
	// ErrNilObjective indicates that no objective function was given.
	ErrNilObjective = errors.New("kopt: nil objective function")

	// ErrNilMatrix indicates that a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("kopt: nil matrix")

	// ErrNonSquare signals that an initial permutation matrix is not square.
	ErrNonSquare = errors.New("kopt: permutation matrix is not square")

	// ErrShapeMismatch indicates that A, B and the permutation matrices are
	// not conformable for the declared single/double-sided mode.
	ErrShapeMismatch = errors.New("kopt: matrix shape mismatch")

	// ErrKOutOfRange is returned when k < 2 or k exceeds the permutation
	// matrix dimension.
	ErrKOutOfRange = errors.New("kopt: k must satisfy 2 <= k <= matrix dimension")
)

// Objective is the injected function the refiner minimizes. It receives a
// candidate permutation matrix and returns its score; candidates must not
// be mutated or retained. A typical objective wraps core.FrobeniusError
// with the other problem matrices captured in the closure.
type Objective func(p mat.Matrix) (float64, error)

// Options configures the k-opt search.
//
// Fields:
//   - K   — neighborhood order: candidates reorder K distinct rows/columns
//     at a time. Must satisfy 2 ≤ K ≤ n; the neighborhood grows as
//     C(n,K)·K!, so keep K small.
//   - Tol — early-stop threshold; the search returns immediately once the
//     objective is ≤ Tol. A negative Tol never triggers, which effectively
//     disables early stopping.
type Options struct {
	K   int
	Tol float64
}

// DefaultOptions returns the documented defaults: K=3, Tol=1e-8.
func DefaultOptions() Options {
	return Options{K: DefaultK, Tol: DefaultTol}
}
