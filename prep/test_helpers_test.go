// SPDX-License-Identifier: MIT
// Package prep_test shared helpers: compact matrix construction and
// equality assertion with a numeric tolerance.
package prep_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// dense builds a *mat.Dense from row-major rows.
func dense(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := len(rows[0])
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, rows[i][j])
		}
	}

	return out
}

// requireMatEqual asserts got ≈ want entry-wise within tol, including shape.
func requireMatEqual(t *testing.T, want [][]float64, got mat.Matrix, tol float64) {
	t.Helper()

	r, c := got.Dims()
	require.Equal(t, len(want), r, "row count")
	if r == 0 {
		return
	}
	require.Equal(t, len(want[0]), c, "column count")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDeltaf(t, want[i][j], got.At(i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}
