// SPDX-License-Identifier: MIT

// Package decomp - singular value decomposition wrapper.
package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// machEps is the double-precision machine epsilon used for rank thresholds.
const machEps = 2.220446049250313e-16

// SVD returns the full singular value decomposition of m such that
//
//	M = U · diag(s) · Vᵀ
//
// with the singular values s sorted in descending order (gonum's native
// ordering). U is r×r and V is c×c.
//
// Contracts:
//   - m must be non-nil (ErrNilMatrix) and non-empty (ErrEmptyMatrix).
//   - Non-convergence of the underlying factorization surfaces as
//     ErrDecompFailed wrapped with operation and shape context.
//
// Complexity: O(min(r,c)·r·c).
func SVD(m mat.Matrix) (u *mat.Dense, s []float64, v *mat.Dense, err error) {
	if m == nil {
		return nil, nil, nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil, ErrEmptyMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return nil, nil, nil, fmt.Errorf("SVD %dx%d: %w", r, c, ErrDecompFailed)
	}

	u = &mat.Dense{}
	v = &mat.Dense{}
	svd.UTo(u)
	svd.VTo(v)
	s = svd.Values(nil)

	return u, s, v, nil
}

// Rank returns the numerical rank of m: the number of singular values above
// the threshold max(r,c)·eps·s_max (the conventional default used by dense
// rank estimators).
func Rank(m mat.Matrix) (int, error) {
	_, s, _, err := SVD(m)
	if err != nil {
		return 0, err
	}

	return rankFromValues(s, m), nil
}

// rankFromValues counts the singular values of m above the default
// threshold. s must be sorted descending (SVD output order).
func rankFromValues(s []float64, m mat.Matrix) int {
	if len(s) == 0 {
		return 0
	}
	r, c := m.Dims()
	tol := float64(maxInt(r, c)) * machEps * s[0]

	rank := 0
	for _, sv := range s {
		if sv > tol {
			rank++
		}
	}

	return rank
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
