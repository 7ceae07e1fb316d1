// SPDX-License-Identifier: MIT

// Package generic solves the generic one-sided Procrustes problem: given a
// subject matrix A (m×n) and a reference B with the same row count, find
// the unconstrained linear map T minimizing ‖A·T − B‖²_F.
//
// The optimal transformation follows from the normal equations,
//
//	T* = (AᵀA)⁺ · Aᵀ · B
//
// where ⁺ is the Moore-Penrose pseudo-inverse. Two numerically distinct
// drivers compute it (see Driver); the robust SVD-based one is the default.
//
// When m < n the system is underdetermined and T is not unique; Solve
// returns one valid minimizer (the minimum-norm one produced by the
// pseudo-inverse) and makes no attempt to special-case this.
package generic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/core"
	"github.com/katalvlaran/procrustes/decomp"
	"github.com/katalvlaran/procrustes/prep"
)

// machEps is the double-precision machine epsilon used for the
// pseudo-inverse cutoff.
const machEps = 2.220446049250313e-16

// Solve finds the least-squares optimal linear transformation T with
// A·T ≈ B and returns it inside a core.Result together with the
// preprocessed matrices and the residual error.
//
// Pipeline: prep.Setup runs first with the embedded options (unpad →
// translate → weight → scale → pad), then T* = (AᵀA)⁺AᵀB is computed with
// the selected driver and scored via core.FrobeniusError.
//
// Errors:
//   - ErrUnknownDriver for an unrecognized opts.Driver (checked first).
//   - prep sentinels from the preprocessing stages.
//   - ErrEmptyMatrix / ErrShapeMismatch on degenerate or misaligned shapes
//     after preprocessing.
//   - decomp.ErrDecompFailed (wrapped with context) if the pseudo-inverse
//     factorization does not converge.
//
// Complexity: O(m·n²) for the normal matrix, O(n³) for the pseudo-inverse.
func Solve(a, b mat.Matrix, opts Options) (core.Result, error) {
	// Eager validation: an unknown driver must fail before any work.
	switch opts.Driver {
	case DriverRobust, DriverFast:
	default:
		return core.Result{}, fmt.Errorf("Solve: driver %d: %w", int(opts.Driver), ErrUnknownDriver)
	}

	newA, newB, err := prep.Setup(a, b, opts.Options)
	if err != nil {
		return core.Result{}, err
	}

	ar, ac := newA.Dims()
	br, _ := newB.Dims()
	if ar == 0 || ac == 0 || br == 0 {
		return core.Result{}, ErrEmptyMatrix
	}
	if ar != br {
		return core.Result{}, ErrShapeMismatch
	}

	// Normal matrix G = AᵀA (n×n, symmetric positive semi-definite).
	g := &mat.Dense{}
	g.Mul(newA.T(), newA)

	pinv, err := pseudoInverse(g, opts.Driver)
	if err != nil {
		return core.Result{}, err
	}

	// T = G⁺ · Aᵀ · B.
	atb := &mat.Dense{}
	atb.Mul(newA.T(), newB)
	t := &mat.Dense{}
	t.Mul(pinv, atb)

	eOpt, err := core.FrobeniusError(newA, newB, nil, t)
	if err != nil {
		return core.Result{}, err
	}

	return core.NewResult(eOpt, newA, newB, t, nil), nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse of the symmetric
// matrix g with the selected driver. Singular values (or eigenvalue
// magnitudes) below n·eps·max are treated as zero, the conventional
// least-squares cutoff.
func pseudoInverse(g *mat.Dense, driver Driver) (*mat.Dense, error) {
	if driver == DriverFast {
		return pinvEigenSym(g)
	}

	return pinvSVD(g)
}

// pinvSVD is the robust driver: full SVD of g, reciprocal of the singular
// values above the cutoff, G⁺ = V·diag(1/s)·Uᵀ.
func pinvSVD(g *mat.Dense) (*mat.Dense, error) {
	u, s, v, err := decomp.SVD(g)
	if err != nil {
		return nil, fmt.Errorf("pinv (robust): %w", err)
	}
	n, _ := g.Dims()

	tol := 0.0
	if len(s) > 0 {
		tol = float64(n) * machEps * s[0]
	}

	// W = V · diag(s⁺): scale V's columns by the reciprocal singular values.
	w := mat.NewDense(n, n, nil)
	var i, j int
	for j = 0; j < n; j++ {
		inv := 0.0
		if s[j] > tol {
			inv = 1.0 / s[j]
		}
		for i = 0; i < n; i++ {
			w.Set(i, j, v.At(i, j)*inv)
		}
	}

	out := &mat.Dense{}
	out.Mul(w, u.T())

	return out, nil
}

// pinvEigenSym is the fast driver: since g = AᵀA is symmetric, its
// pseudo-inverse is Q·diag(λ⁺)·Qᵀ from the symmetric eigendecomposition.
// g is diagonalizable by construction, so no diagonalizability guard runs
// here — that is exactly what makes this driver the faster one.
func pinvEigenSym(g *mat.Dense) (*mat.Dense, error) {
	n, _ := g.Dims()

	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, g.At(j, i))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("pinv (fast) %dx%d: %w", n, n, decomp.ErrDecompFailed)
	}
	vals := es.Values(nil)
	q := &mat.Dense{}
	es.VectorsTo(q)

	amax := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > amax {
			amax = a
		}
	}
	tol := float64(n) * machEps * amax

	// W = Q · diag(λ⁺).
	w := mat.NewDense(n, n, nil)
	for j = 0; j < n; j++ {
		inv := 0.0
		if math.Abs(vals[j]) > tol {
			inv = 1.0 / vals[j]
		}
		for i = 0; i < n; i++ {
			w.Set(i, j, q.At(i, j)*inv)
		}
	}

	out := &mat.Dense{}
	out.Mul(w, q.T())

	return out, nil
}
