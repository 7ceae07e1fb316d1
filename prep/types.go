// SPDX-License-Identifier: MIT

// Package prep: sentinel errors, the PadMode enumeration, and the pipeline
// Options with documented defaults.
package prep

import "errors"

// TrimTol is the magnitude below which an entry counts as zero padding:
// a trailing row/column is removed only if every |entry| ≤ TrimTol.
const TrimTol = 1e-8

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("prep: nil matrix")

	// ErrShapeMismatch indicates incompatible dimensions between a matrix
	// and its reference (e.g. differing column counts in Translate).
	ErrShapeMismatch = errors.New("prep: matrix shape mismatch")

	// ErrZeroNorm signals a degenerate input: a matrix with zero Frobenius
	// norm cannot be scaled.
	ErrZeroNorm = errors.New("prep: zero Frobenius norm")

	// ErrBadPadMode is returned when an unrecognized PadMode is given.
	ErrBadPadMode = errors.New("prep: unknown padding mode")

	// ErrWeightLength indicates that len(Weight) differs from the row count
	// of A after unpadding.
	ErrWeightLength = errors.New("prep: weight length does not match rows of A")

	// ErrNegativeWeight indicates a negative entry in the weight vector.
	ErrNegativeWeight = errors.New("prep: negative weight")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required
	// (CheckFinite policy).
	ErrNaNInf = errors.New("prep: NaN or Inf encountered")
)

// PadMode selects which axes Pad equalizes between the two matrices.
type PadMode int

const (
	// PadRows pads the matrix with fewer rows so both have the same number
	// of rows; column counts are left untouched.
	PadRows PadMode = iota

	// PadCols pads the matrix with fewer columns so both have the same
	// number of columns; row counts are left untouched.
	PadCols

	// PadRowCol pads rows and columns independently so both matrices end up
	// with the same shape. The result is not necessarily square.
	PadRowCol

	// PadSquare pads both matrices to a common square size equal to the
	// maximum over all four dimensions.
	PadSquare
)

// String returns the stable textual name of the mode.
func (m PadMode) String() string {
	switch m {
	case PadRows:
		return "row"
	case PadCols:
		return "col"
	case PadRowCol:
		return "row-col"
	case PadSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Options configures the Setup pipeline.
//
// Fields:
//   - Translate   — center both matrices at the origin (columns of each
//     matrix will have mean zero) before solving.
//   - Scale       — normalize both matrices to unit Frobenius norm.
//   - UnpadRows   — strip trailing near-zero rows before anything else.
//   - UnpadCols   — strip trailing near-zero columns before anything else.
//   - Pad         — zero-pad to a matching shape after the other stages
//     (required by solvers needing equal shapes; default true).
//   - CheckFinite — reject NaN/±Inf entries up front (default true).
//   - Weight      — optional per-row weights of A, applied as a row scaling
//     of A only (A → diag(Weight)·A). Must be non-negative and sized to A's
//     row count after unpadding.
type Options struct {
	Translate   bool
	Scale       bool
	UnpadRows   bool
	UnpadCols   bool
	Pad         bool
	CheckFinite bool
	Weight      []float64
}

// DefaultOptions returns the documented defaults: padding and finiteness
// checking enabled, every other stage opt-in.
func DefaultOptions() Options {
	return Options{Pad: true, CheckFinite: true}
}
