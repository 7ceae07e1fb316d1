// SPDX-License-Identifier: MIT

// Package orthogonal: sentinel errors, the Method enumeration, and solver
// Options with documented defaults.
package orthogonal

import "errors"

// DefaultTol is the early-stop threshold for the exact sign search: a trial
// transformation scoring below it is accepted without trying the remaining
// sign combinations.
const DefaultTol = 1e-12

// symTol bounds the allowed asymmetry |a_ij − a_ji| of the inputs.
const symTol = 1e-10

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("orthogonal: nil matrix")

	// ErrShapeMismatch indicates that A and B do not share a shape after
	// preprocessing.
	ErrShapeMismatch = errors.New("orthogonal: matrix shape mismatch")

	// ErrNonSquare signals that the two-sided single-transformation problem
	// requires square matrices.
	ErrNonSquare = errors.New("orthogonal: matrix is not square")

	// ErrAsymmetric signals that A or B violates the symmetry requirement
	// of the single-transformation analysis.
	ErrAsymmetric = errors.New("orthogonal: matrix is not symmetric")

	// ErrUnknownMethod is returned for an unrecognized Method value.
	ErrUnknownMethod = errors.New("orthogonal: unknown method")
)

// Method selects how TwoSidedSingle computes the transformation.
type Method int

const (
	// MethodExact enumerates all 2ⁿ diagonal ±1 sign matrices S and keeps
	// the best U = U_A·S·U_Bᵀ. Exact over that family but exponential in n;
	// the default.
	MethodExact Method = iota

	// MethodUmeyama uses the Umeyama heuristic: the element-wise absolute
	// eigenvector product |U_A| ∘ |U_B|ᵀ projected to the nearest orthogonal
	// matrix. Polynomial cost, approximate result.
	MethodUmeyama
)

// String returns the stable textual name of the method.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodUmeyama:
		return "umeyama"
	default:
		return "unknown"
	}
}

// Options configures TwoSidedSingle.
//
// Fields:
//   - Translate — center both matrices at the origin before solving.
//   - Scale     — normalize both matrices to unit Frobenius norm.
//   - Method    — MethodExact (default) or MethodUmeyama.
//   - Tol       — early-stop threshold for the exact sign search.
type Options struct {
	Translate bool
	Scale     bool
	Method    Method
	Tol       float64
}

// DefaultOptions returns the documented defaults: exact search with
// Tol = 1e-12, no translation or scaling.
func DefaultOptions() Options {
	return Options{Method: MethodExact, Tol: DefaultTol}
}
