// SPDX-License-Identifier: MIT

// Package prep - removal of trailing zero padding.
package prep

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TrimPadding returns m with its zero padding removed: trailing rows (from
// the bottom up) and, when cols is set, trailing columns (from the right
// inward) whose entries are all ≤ TrimTol in magnitude. Scanning stops at
// the first non-zero row/column, so all relevant information is assumed to
// live in the upper-left block.
//
// The rows and cols flags select which axes are trimmed; with both false the
// result is a plain copy. If every row (or every retained column) is near
// zero, the empty matrix (Dims 0,0) is returned.
//
// Contracts:
//   - m must be non-nil (ErrNilMatrix).
//   - m is never mutated; the result is freshly allocated.
//
// Complexity: O(r·c) time, O(r′·c′) space for the trimmed copy.
func TrimPadding(m mat.Matrix, rows, cols bool) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()

	// Stage 1: trailing zero rows, scanned bottom-up.
	er := r
	if rows {
		for er > 0 && rowNearZero(m, er-1, c) {
			er--
		}
	}

	// Stage 2: trailing zero columns of the row-trimmed block, right-to-left.
	ec := c
	if cols {
		for ec > 0 && colNearZero(m, ec-1, er) {
			ec--
		}
	}

	if er == 0 || ec == 0 {
		// Everything was padding; the empty Dense is the canonical result.
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(er, ec, nil)
	var i, j int
	for i = 0; i < er; i++ {
		for j = 0; j < ec; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	return out, nil
}

// TrimPaddingVec returns v with trailing near-zero entries (|x| ≤ TrimTol)
// removed. The input slice is never mutated.
func TrimPaddingVec(v []float64) []float64 {
	n := len(v)
	for n > 0 && math.Abs(v[n-1]) <= TrimTol {
		n--
	}
	out := make([]float64, n)
	copy(out, v[:n])

	return out
}

// rowNearZero reports whether every entry of row i (over c columns) is
// within TrimTol of zero.
func rowNearZero(m mat.Matrix, i, c int) bool {
	for j := 0; j < c; j++ {
		if math.Abs(m.At(i, j)) > TrimTol {
			return false
		}
	}

	return true
}

// colNearZero reports whether every entry of column j (over the first r
// rows) is within TrimTol of zero.
func colNearZero(m mat.Matrix, j, r int) bool {
	for i := 0; i < r; i++ {
		if math.Abs(m.At(i, j)) > TrimTol {
			return false
		}
	}

	return true
}
