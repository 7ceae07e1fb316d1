// SPDX-License-Identifier: MIT

// Package core - the Frobenius-norm objective shared by every solver.
package core

import (
	"gonum.org/v1/gonum/mat"
)

// FrobeniusError returns the squared Frobenius norm of the residual
//
//	‖left · a · right − b‖²_F = Tr[(X − B)ᵀ(X − B)],  X = left·a·right,
//
// the single objective minimized or evaluated by every solver and by the
// k-opt refiner. A nil left or right factor is treated as the identity, so
//
//	FrobeniusError(a, b, nil, t)  scores the one-sided problem A·T ≈ B,
//	FrobeniusError(a, b, p, q)    scores the two-sided problem P·A·Q ≈ B,
//	FrobeniusError(a, b, nil, nil) measures the plain distance ‖A − B‖².
//
// Contracts:
//   - a and b must be non-nil (ErrNilMatrix).
//   - The factor chain must be conformable and the product must match b's
//     shape (ErrShapeMismatch). Validation is eager; no partial computation
//     is observable on failure.
//
// Complexity: O(m·n·p) for the products, O(m·n) for the residual scan.
func FrobeniusError(a, b, left, right mat.Matrix) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}

	ar, ac := a.Dims()
	br, bc := b.Dims()

	// Resulting shape of left·a·right, tracked without materializing anything.
	outR, outC := ar, ac

	// Stage 1: validate conformability of the optional factors.
	if right != nil {
		rr, rc := right.Dims()
		if rr != ac {
			return 0, ErrShapeMismatch
		}
		outC = rc
	}
	if left != nil {
		lr, lc := left.Dims()
		if lc != outR {
			return 0, ErrShapeMismatch
		}
		outR = lr
	}
	if outR != br || outC != bc {
		return 0, ErrShapeMismatch
	}

	// Stage 2: form X = left·a·right with the fewest multiplications.
	x := a
	if right != nil {
		xr := &mat.Dense{}
		xr.Mul(a, right)
		x = xr
	}
	if left != nil {
		xl := &mat.Dense{}
		xl.Mul(left, x)
		x = xl
	}

	// Stage 3: residual and its squared Frobenius norm.
	diff := &mat.Dense{}
	diff.Sub(x, b)
	nrm := mat.Norm(diff, 2)

	return nrm * nrm, nil
}
