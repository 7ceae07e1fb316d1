// SPDX-License-Identifier: MIT

// Package prep - the Setup facade composing the preprocessing stages in the
// one order the solvers mandate.
package prep

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Setup prepares the subject matrix a and the reference matrix b for a
// solver, applying the configured stages in the fixed order
//
//	unpad → translate → weight → scale → pad(row-col)
//
// Each stage runs only when its Options flag is set; padding uses PadRowCol
// so both outputs share a shape when opts.Pad is true. The weight stage
// scales the rows of a only (A → diag(Weight)·A) and runs after translation
// but before scaling, so the unit-norm constraint reflects the weighted
// matrix.
//
// Contracts:
//   - a and b must be non-nil (ErrNilMatrix).
//   - With CheckFinite, any NaN/±Inf entry fails with ErrNaNInf.
//   - Weight, when given, must be non-negative (ErrNegativeWeight) and sized
//     to a's row count after unpadding (ErrWeightLength).
//
// All validation happens before any stage output escapes; the inputs are
// never mutated.
//
// Complexity: O(r·c) per stage.
func Setup(a, b mat.Matrix, opts Options) (*mat.Dense, *mat.Dense, error) {
	if a == nil || b == nil {
		return nil, nil, ErrNilMatrix
	}
	if opts.CheckFinite {
		if !allFinite(a) || !allFinite(b) {
			return nil, nil, ErrNaNInf
		}
		for _, w := range opts.Weight {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, nil, ErrNaNInf
			}
		}
	}

	// Stage 1: strip pre-existing zero padding (important for translation:
	// padding rows would drag the centroid toward the origin).
	newA, err := TrimPadding(a, opts.UnpadRows, opts.UnpadCols)
	if err != nil {
		return nil, nil, err
	}
	newB, err := TrimPadding(b, opts.UnpadRows, opts.UnpadCols)
	if err != nil {
		return nil, nil, err
	}

	// Weight length is checked against the unpadded row count, before any
	// further stage runs (fail fast, nothing partial observable).
	if opts.Weight != nil {
		ar, _ := newA.Dims()
		if len(opts.Weight) != ar {
			return nil, nil, ErrWeightLength
		}
		for _, w := range opts.Weight {
			if w < 0 {
				return nil, nil, ErrNegativeWeight
			}
		}
	}

	// Stage 2: translate both matrices to the origin.
	if opts.Translate {
		if newA, _, err = Translate(newA, nil); err != nil {
			return nil, nil, err
		}
		if newB, _, err = Translate(newB, nil); err != nil {
			return nil, nil, err
		}
	}

	// Stage 3: row-weighting of A only.
	if opts.Weight != nil {
		newA = scaleRows(newA, opts.Weight)
	}

	// Stage 4: normalize both matrices to unit Frobenius norm.
	if opts.Scale {
		if newA, _, err = Scale(newA, nil); err != nil {
			return nil, nil, err
		}
		if newB, _, err = Scale(newB, nil); err != nil {
			return nil, nil, err
		}
	}

	// Stage 5: padding runs last so its zeros survive the stages above.
	if opts.Pad {
		if newA, newB, err = Pad(newA, newB, PadRowCol); err != nil {
			return nil, nil, err
		}
	}

	return newA, newB, nil
}

// scaleRows returns diag(w)·m as a fresh matrix; len(w) == rows(m) was
// validated by the caller.
func scaleRows(m *mat.Dense, w []float64) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, w[i]*m.At(i, j))
		}
	}

	return out
}

// allFinite reports whether every entry of m is finite (no NaN, no ±Inf).
func allFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
