// SPDX-License-Identifier: MIT

// Package orthogonal solves the two-sided orthogonal Procrustes problem
// restricted to a single transformation: given symmetric n×n matrices A
// and B, find an orthogonal U minimizing
//
//	‖Uᵀ · A · U − B‖²_F.
//
// From the eigendecompositions A = U_A·Λ_A·U_Aᵀ and B = U_B·Λ_B·U_Bᵀ the
// optimum has the form U = U_A·S·U_Bᵀ where S is diagonal with ±1 entries.
// MethodExact tries all 2ⁿ sign matrices; MethodUmeyama approximates U by
// the element-wise absolute eigenvector product |U_A| ∘ |U_B|ᵀ projected to
// the nearest orthogonal matrix (via SVD, U ≈ Ũ·Ṽᵀ).
//
// The selected method is an explicit Options field and everything the caller
// needs comes back in the core.Result; nothing is written to stdout.
package orthogonal

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/core"
	"github.com/katalvlaran/procrustes/decomp"
	"github.com/katalvlaran/procrustes/prep"
)

// umeZeroTol zeroes near-noise entries of the projected Umeyama transform.
const umeZeroTol = 1e-8

// TwoSidedSingle finds the single orthogonal transformation U aligning the
// symmetric matrix A to the symmetric reference B under Uᵀ·A·U.
//
// Preprocessing: zero padding is always trimmed; translation and scaling
// run per the Options flags; the matrices are then padded back to a common
// shape. Both must end up square and symmetric within 1e-10.
//
// The returned Result carries U in T and Uᵀ in S, so that S·NewA·T is the
// transformed matrix the Error refers to.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrShapeMismatch, ErrAsymmetric,
// ErrUnknownMethod, prep sentinels, and wrapped decomp failures.
//
// Complexity: MethodExact is O(2ⁿ·n²) after two O(n³) decompositions —
// callers must keep n small; MethodUmeyama is O(n³).
func TwoSidedSingle(a, b mat.Matrix, opts Options) (core.Result, error) {
	switch opts.Method {
	case MethodExact, MethodUmeyama:
	default:
		return core.Result{}, ErrUnknownMethod
	}
	if a == nil || b == nil {
		return core.Result{}, ErrNilMatrix
	}

	popts := prep.DefaultOptions()
	popts.UnpadRows = true
	popts.UnpadCols = true
	popts.Translate = opts.Translate
	popts.Scale = opts.Scale
	newA, newB, err := prep.Setup(a, b, popts)
	if err != nil {
		return core.Result{}, err
	}

	if err = validateSymmetricPair(newA, newB); err != nil {
		return core.Result{}, err
	}

	var u *mat.Dense
	if opts.Method == MethodExact {
		u, err = bestSignCombination(newA, newB, opts.Tol)
	} else {
		u, err = umeyamaApprox(newA, newB)
	}
	if err != nil {
		return core.Result{}, err
	}

	ut := mat.DenseCopyOf(u.T())
	eOpt, err := core.FrobeniusError(newA, newB, ut, u)
	if err != nil {
		return core.Result{}, err
	}

	return core.NewResult(eOpt, newA, newB, u, ut), nil
}

// bestSignCombination enumerates all 2ⁿ diagonal ±1 matrices S in binary
// counting order (bit i of the counter flips the sign of diagonal entry i)
// and returns the trial U = U_A·S·U_Bᵀ with the smallest two-sided error.
// The scan stops early once a trial scores below tol.
func bestSignCombination(a, b *mat.Dense, tol float64) (*mat.Dense, error) {
	ua, _, _, err := decomp.SVD(a)
	if err != nil {
		return nil, err
	}
	ub, _, _, err := decomp.SVD(b)
	if err != nil {
		return nil, err
	}
	n, _ := a.Dims()

	var (
		bestU   *mat.Dense
		bestErr = math.Inf(1)
		scaled  = mat.NewDense(n, n, nil) // U_A with sign-flipped columns
		trial   = &mat.Dense{}
		i, j    int
	)
	for mask := 0; mask < 1<<uint(n); mask++ {
		for j = 0; j < n; j++ {
			sign := 1.0
			if mask&(1<<uint(j)) != 0 {
				sign = -1.0
			}
			for i = 0; i < n; i++ {
				scaled.Set(i, j, sign*ua.At(i, j))
			}
		}
		trial.Mul(scaled, ub.T())

		e, ferr := core.FrobeniusError(a, b, trial.T(), trial)
		if ferr != nil {
			return nil, ferr
		}
		if e < bestErr {
			bestU = mat.DenseCopyOf(trial)
			bestErr = e
			if bestErr < tol {
				break
			}
		}
	}

	return bestU, nil
}

// umeyamaApprox builds the Umeyama heuristic transformation: row-arranged
// eigendecompositions of both matrices, element-wise |U_A| ∘ |U_B|ᵀ, then
// projection to the nearest orthogonal matrix via SVD. Entries below
// umeZeroTol are snapped to zero, matching the reference treatment of
// numerical noise.
func umeyamaApprox(a, b *mat.Dense) (*mat.Dense, error) {
	_, ua, err := decomp.EigenSym(a, true)
	if err != nil {
		return nil, err
	}
	_, ub, err := decomp.EigenSym(b, true)
	if err != nil {
		return nil, err
	}
	n, _ := a.Dims()

	ume := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			ume.Set(i, j, math.Abs(ua.At(i, j))*math.Abs(ub.At(j, i)))
		}
	}

	// Nearest orthogonal matrix: SVD of the (non-orthogonal) Umeyama
	// estimate and recomposition without the singular values.
	uu, _, vv, err := decomp.SVD(ume)
	if err != nil {
		return nil, err
	}
	out := &mat.Dense{}
	out.Mul(uu, vv.T())

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.Abs(out.At(i, j)) < umeZeroTol {
				out.Set(i, j, 0)
			}
		}
	}

	return out, nil
}

// validateSymmetricPair enforces the contracts of the single-transformation
// analysis: both matrices square, same shape, symmetric within symTol.
func validateSymmetricPair(a, b *mat.Dense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != ac || br != bc {
		return ErrNonSquare
	}
	if ar != br {
		return ErrShapeMismatch
	}
	if ar == 0 {
		return ErrShapeMismatch
	}
	if !isSymmetric(a) || !isSymmetric(b) {
		return ErrAsymmetric
	}

	return nil
}

// isSymmetric reports whether |m_ij − m_ji| ≤ symTol for all i < j.
func isSymmetric(m *mat.Dense) bool {
	n, _ := m.Dims()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > symTol {
				return false
			}
		}
	}

	return true
}
