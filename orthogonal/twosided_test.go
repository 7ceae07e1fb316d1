// SPDX-License-Identifier: MIT
// Package orthogonal_test exercises the two-sided single-transformation
// solver: exact recovery of planted rotations, the Umeyama approximation, and
// the symmetry/validation contracts.
package orthogonal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/decomp"
	"github.com/katalvlaran/procrustes/orthogonal"
)

// dense builds a *mat.Dense from row slices.
func dense(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	out := mat.NewDense(r, c, nil)
	for i, row := range rows {
		for j, v := range row {
			out.Set(i, j, v)
		}
	}

	return out
}

// givens returns the n×n rotation by theta in the (i,j) coordinate plane.
func givens(n, i, j int, theta float64) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		out.Set(k, k, 1)
	}
	c, s := math.Cos(theta), math.Sin(theta)
	out.Set(i, i, c)
	out.Set(j, j, c)
	out.Set(i, j, -s)
	out.Set(j, i, s)

	return out
}

// conjugate returns Rᵀ·A·R.
func conjugate(a, r *mat.Dense) *mat.Dense {
	ra := &mat.Dense{}
	ra.Mul(r.T(), a)
	out := &mat.Dense{}
	out.Mul(ra, r)

	return out
}

// requireOrthogonal asserts UᵀU ≈ I within tol.
func requireOrthogonal(t *testing.T, u *mat.Dense, tol float64) {
	t.Helper()
	n, c := u.Dims()
	require.Equal(t, n, c)
	utu := &mat.Dense{}
	utu.Mul(u.T(), u)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDeltaf(t, want, utu.At(i, j), tol, "UᵀU entry (%d,%d)", i, j)
		}
	}
}

func TestTwoSidedSingle_ExactRecoversRotation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a    *mat.Dense
		rot  *mat.Dense
	}{
		{
			// Eigenvalues (5±√5)/2 — distinct magnitudes, so the sign search
			// can reconstruct the planted rotation exactly.
			name: "2x2 single plane",
			a:    dense([][]float64{{2, 1}, {1, 3}}),
			rot:  givens(2, 0, 1, 0.3),
		},
		{
			name: "3x3 composed planes",
			a: dense([][]float64{
				{4, 1, 0},
				{1, 3, 1},
				{0, 1, 2},
			}),
			rot: func() *mat.Dense {
				r := &mat.Dense{}
				r.Mul(givens(3, 0, 1, 0.4), givens(3, 1, 2, 0.2))

				return r
			}(),
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := conjugate(tc.a, tc.rot)

			res, err := orthogonal.TwoSidedSingle(tc.a, b, orthogonal.DefaultOptions())
			require.NoError(t, err)
			require.InDelta(t, 0, res.Error, 1e-10)
			requireOrthogonal(t, res.T, 1e-10)

			// S must be exactly Tᵀ, so S·NewA·T reproduces NewB.
			n, _ := res.T.Dims()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.Equal(t, res.T.At(i, j), res.S.At(j, i), "S is the transpose of T")
				}
			}
		})
	}
}

func TestTwoSidedSingle_IdenticalInputs(t *testing.T) {
	t.Parallel()

	a := dense([][]float64{{2, 1}, {1, 3}})
	res, err := orthogonal.TwoSidedSingle(a, a, orthogonal.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 0, res.Error, 1e-12)
}

func TestTwoSidedSingle_ExactWithScaling(t *testing.T) {
	t.Parallel()

	// Conjugation by an orthogonal matrix preserves the Frobenius norm, so
	// unit-norm scaling must not disturb the exact recovery.
	a := dense([][]float64{{2, 1}, {1, 3}})
	b := conjugate(a, givens(2, 0, 1, 0.7))

	opts := orthogonal.DefaultOptions()
	opts.Scale = true
	res, err := orthogonal.TwoSidedSingle(a, b, opts)
	require.NoError(t, err)
	require.InDelta(t, 0, res.Error, 1e-10)
}

func TestTwoSidedSingle_Umeyama(t *testing.T) {
	t.Parallel()

	a := dense([][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	b := conjugate(a, givens(3, 0, 2, 0.25))

	opts := orthogonal.DefaultOptions()
	opts.Method = orthogonal.MethodUmeyama
	res, err := orthogonal.TwoSidedSingle(a, b, opts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Error, 0.0)
	require.False(t, math.IsNaN(res.Error))

	// The heuristic transform is the SVD projection of a non-orthogonal
	// estimate with small entries snapped to zero, so orthogonality holds to
	// a looser tolerance than the exact path.
	requireOrthogonal(t, res.T, 1e-6)
}

func TestTwoSidedSingle_UmeyamaRejectsDefectiveInput(t *testing.T) {
	t.Parallel()

	// Rank-deficient symmetric input fails the diagonalizability guard inside
	// the eigendecomposition the heuristic depends on.
	a := dense([][]float64{{1, 2}, {2, 4}})
	opts := orthogonal.DefaultOptions()
	opts.Method = orthogonal.MethodUmeyama
	_, err := orthogonal.TwoSidedSingle(a, a, opts)
	require.ErrorIs(t, err, decomp.ErrNotDiagonalizable)
}

func TestTwoSidedSingle_Validation(t *testing.T) {
	t.Parallel()

	sym := dense([][]float64{{2, 1}, {1, 3}})

	t.Run("unknown method fails before any work", func(t *testing.T) {
		t.Parallel()

		opts := orthogonal.DefaultOptions()
		opts.Method = orthogonal.Method(9)
		_, err := orthogonal.TwoSidedSingle(nil, nil, opts)
		require.ErrorIs(t, err, orthogonal.ErrUnknownMethod)
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()

		_, err := orthogonal.TwoSidedSingle(nil, sym, orthogonal.DefaultOptions())
		require.ErrorIs(t, err, orthogonal.ErrNilMatrix)
	})

	t.Run("non-square input", func(t *testing.T) {
		t.Parallel()

		_, err := orthogonal.TwoSidedSingle(dense([][]float64{{1, 2, 3}, {4, 5, 6}}), sym, orthogonal.DefaultOptions())
		require.ErrorIs(t, err, orthogonal.ErrNonSquare)
	})

	t.Run("asymmetric input", func(t *testing.T) {
		t.Parallel()

		_, err := orthogonal.TwoSidedSingle(dense([][]float64{{1, 2}, {3, 4}}), sym, orthogonal.DefaultOptions())
		require.ErrorIs(t, err, orthogonal.ErrAsymmetric)
	})
}

func TestMethod_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "exact", orthogonal.MethodExact.String())
	require.Equal(t, "umeyama", orthogonal.MethodUmeyama.String())
}
