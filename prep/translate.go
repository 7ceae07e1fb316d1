// SPDX-License-Identifier: MIT

// Package prep - centroid translation.
package prep

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Translate returns m shifted so that its centroid (column-wise mean) sits
// at the origin, together with the translation vector that was added to
// every row. With a non-nil ref, m is instead shifted so that its centroid
// coincides with ref's centroid: the applied vector is
// centroid(ref) − centroid(m).
//
// Contracts:
//   - m must be non-nil (ErrNilMatrix).
//   - ref, when given, must have the same column count as m (ErrShapeMismatch).
//   - An empty m passes through unchanged with a zero-length vector.
//
// Complexity: O(r·c) time and space.
func Translate(m mat.Matrix, ref mat.Matrix) (*mat.Dense, []float64, error) {
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil, nil
	}

	// shift = −centroid(m) (+ centroid(ref) when aligning to a reference).
	shift := Centroid(m)
	floats.Scale(-1, shift)
	if ref != nil {
		rr, rc := ref.Dims()
		if rc != c || rr == 0 {
			return nil, nil, ErrShapeMismatch
		}
		floats.Add(shift, Centroid(ref))
	}

	out := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, m.At(i, j)+shift[j])
		}
	}

	return out, shift, nil
}

// Centroid returns the column-wise mean of m as a fresh slice of length
// cols(m). The mean is not a robust estimator of central location; outliers
// shift it, which is the intended behavior for Procrustes alignment.
func Centroid(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, c)
	if r == 0 {
		return out
	}
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		floats.Add(out, mat.Row(row, i, m))
	}
	floats.Scale(1/float64(r), out)

	return out
}
