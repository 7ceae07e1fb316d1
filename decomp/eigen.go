// SPDX-License-Identifier: MIT

// Package decomp - symmetric eigendecomposition with a diagonalizability
// guard.
package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// IsDiagonalizable reports whether the square matrix m is diagonalizable.
//
// The check compares rank(U) against rank(M), where U comes from the SVD of
// m: when the ranks differ the (candidate) eigenvectors cannot span the
// vector space and the eigendecomposition cannot proceed. Zero padding is
// trimmed implicitly by the rank threshold.
//
// Contracts:
//   - m must be non-nil, non-empty and square (ErrNilMatrix, ErrEmptyMatrix,
//     ErrNonSquare).
//
// Complexity: two SVDs, O(n³).
func IsDiagonalizable(m mat.Matrix) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return false, ErrEmptyMatrix
	}
	if r != c {
		return false, ErrNonSquare
	}

	u, s, _, err := SVD(m)
	if err != nil {
		return false, err
	}
	rankM := rankFromValues(s, m)

	rankU, err := Rank(u)
	if err != nil {
		return false, err
	}

	return rankU == rankM, nil
}

// EigenSym returns the eigendecomposition of the symmetric matrix m such
// that M = V · diag(vals) · Vᵀ, with eigenvalues sorted in descending order
// and eigenvectors reordered to match.
//
// By default the eigenvectors are returned as the columns of the vector
// matrix. With arrangeRows set, the *rows* are reordered by the descending
// eigenvalue order instead — the arrangement required by two-sided
// single-transformation callers, which index eigenvectors per axis rather
// than per column.
//
// Only the lower triangle of m is referenced, so slight asymmetry from
// floating-point noise is tolerated.
//
// Contracts:
//   - m must be non-nil, non-empty and square (ErrNilMatrix, ErrEmptyMatrix,
//     ErrNonSquare).
//   - m must be diagonalizable (ErrNotDiagonalizable); the check runs first.
//   - Non-convergence surfaces as wrapped ErrDecompFailed.
//
// Complexity: O(n³).
func EigenSym(m mat.Matrix, arrangeRows bool) ([]float64, *mat.Dense, error) {
	ok, err := IsDiagonalizable(m)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrNotDiagonalizable
	}

	n, _ := m.Dims()

	// Symmetrize from the lower triangle (the eigh convention).
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, m.At(j, i))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("EigenSym %dx%d: %w", n, n, ErrDecompFailed)
	}

	asc := es.Values(nil)
	vecs := &mat.Dense{}
	es.VectorsTo(vecs)

	// gonum returns eigenvalues ascending; reverse into descending order and
	// permute the eigenvector matrix to match.
	vals := make([]float64, n)
	out := mat.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		src := n - 1 - i // descending position i takes ascending slot src
		vals[i] = asc[src]
		for j = 0; j < n; j++ {
			if arrangeRows {
				out.Set(i, j, vecs.At(src, j))
			} else {
				out.Set(j, i, vecs.At(j, src))
			}
		}
	}

	return vals, out, nil
}
