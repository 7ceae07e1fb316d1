// SPDX-License-Identifier: MIT

// Package prep - Frobenius-norm scaling.
package prep

import (
	"gonum.org/v1/gonum/mat"
)

// Scale returns m divided by its Frobenius norm, together with the scale
// factor that was applied. With a non-nil ref, m is instead scaled by
// ‖ref‖_F / ‖m‖_F so that its norm matches the reference's.
//
// Contracts:
//   - m must be non-nil (ErrNilMatrix).
//   - ‖m‖_F must be strictly positive (ErrZeroNorm) — an all-zero (or
//     empty) matrix cannot be normalized.
//
// Complexity: O(r·c) time and space.
func Scale(m mat.Matrix, ref mat.Matrix) (*mat.Dense, float64, error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, 0, ErrZeroNorm
	}

	nrm := mat.Norm(m, 2)
	if nrm == 0 {
		return nil, 0, ErrZeroNorm
	}
	factor := 1.0 / nrm
	if ref != nil {
		factor *= mat.Norm(ref, 2)
	}

	out := mat.NewDense(r, c, nil)
	out.Scale(factor, m)

	return out, factor, nil
}
