// SPDX-License-Identifier: MIT
// Package generic_test exercises the one-sided least-squares solver on
// exactly recoverable instances, the weighted variant, and the validation
// surface of both pseudo-inverse drivers.
package generic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrustes/generic"
	"github.com/katalvlaran/procrustes/prep"
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

// requireMatEqual asserts got ≈ want entry-wise within tol.
func requireMatEqual(t *testing.T, want [][]float64, got mat.Matrix, tol float64) {
	t.Helper()
	r, c := got.Dims()
	require.Equal(t, len(want), r, "row count")
	require.Equal(t, len(want[0]), c, "column count")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDeltaf(t, want[i][j], got.At(i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}

// subject is an invertible 4×4 matrix (det = 1), so B = A·T determines T
// uniquely and the solver must recover it to machine precision.
func subject() *mat.Dense {
	return dense([][]float64{
		{1, 5, 8, 4},
		{1, 5, 7, 2},
		{1, 6, 9, 3},
		{2, 7, 9, 4},
	})
}

func TestSolve_IdentityRecovery(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		driver generic.Driver
	}{
		{name: "robust", driver: generic.DriverRobust},
		{name: "fast", driver: generic.DriverFast},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := subject()
			opts := generic.DefaultOptions()
			opts.Driver = tc.driver

			res, err := generic.Solve(a, a, opts)
			require.NoError(t, err)
			require.InDelta(t, 0, res.Error, 1e-16)
			requireMatEqual(t, [][]float64{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			}, res.T, 1e-9)
		})
	}
}

func TestSolve_PermutationRecovery(t *testing.T) {
	t.Parallel()

	a := subject()
	// Column permutation 0→2, 1→0, 2→3, 3→1.
	pi := dense([][]float64{
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
	})
	b := &mat.Dense{}
	b.Mul(a, pi)

	for _, tc := range []struct {
		name   string
		driver generic.Driver
	}{
		{name: "robust", driver: generic.DriverRobust},
		{name: "fast", driver: generic.DriverFast},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := generic.DefaultOptions()
			opts.Driver = tc.driver

			res, err := generic.Solve(a, b, opts)
			require.NoError(t, err)
			require.InDelta(t, 0, res.Error, 1e-16)

			r, c := res.T.Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					require.InDeltaf(t, pi.At(i, j), res.T.At(i, j), 1e-8, "entry (%d,%d)", i, j)
				}
			}
		})
	}
}

// Weighting via Options.Weight must produce the same transformation as
// solving with the pre-multiplied subject diag(w)·A.
func TestSolve_WeightedMatchesPremultiplied(t *testing.T) {
	t.Parallel()

	a := dense([][]float64{
		{1, 2},
		{3, 1},
		{0, 4},
	})
	b := dense([][]float64{
		{2, 1},
		{1, 3},
		{4, 0},
	})
	w := []float64{2, 0.5, 1}

	weighted := generic.DefaultOptions()
	weighted.Weight = w
	resW, err := generic.Solve(a, b, weighted)
	require.NoError(t, err)

	wa := dense([][]float64{
		{2, 4},
		{1.5, 0.5},
		{0, 4},
	})
	resP, err := generic.Solve(wa, b, generic.DefaultOptions())
	require.NoError(t, err)

	require.InDelta(t, resP.Error, resW.Error, 1e-12)
	r, c := resP.T.Dims()
	gr, gc := resW.T.Dims()
	require.Equal(t, r, gr)
	require.Equal(t, c, gc)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDeltaf(t, resP.T.At(i, j), resW.T.At(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// With fewer rows than columns the system is consistent but underdetermined;
// the minimum-norm solution still reproduces B exactly.
func TestSolve_Underdetermined(t *testing.T) {
	t.Parallel()

	a := dense([][]float64{{1, 2}})
	b := dense([][]float64{{3, 4}})

	opts := generic.Options{
		Options: prep.Options{CheckFinite: true},
		Driver:  generic.DriverRobust,
	}
	res, err := generic.Solve(a, b, opts)
	require.NoError(t, err)
	require.InDelta(t, 0, res.Error, 1e-12)

	at := &mat.Dense{}
	at.Mul(a, res.T)
	requireMatEqual(t, [][]float64{{3, 4}}, at, 1e-12)
}

func TestSolve_Validation(t *testing.T) {
	t.Parallel()

	t.Run("unknown driver fails before any work", func(t *testing.T) {
		t.Parallel()

		opts := generic.DefaultOptions()
		opts.Driver = generic.Driver(42)
		_, err := generic.Solve(nil, nil, opts)
		require.ErrorIs(t, err, generic.ErrUnknownDriver)
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()

		_, err := generic.Solve(nil, dense([][]float64{{1}}), generic.DefaultOptions())
		require.ErrorIs(t, err, prep.ErrNilMatrix)
	})

	t.Run("row mismatch without padding", func(t *testing.T) {
		t.Parallel()

		opts := generic.Options{
			Options: prep.Options{CheckFinite: true},
			Driver:  generic.DriverRobust,
		}
		_, err := generic.Solve(
			dense([][]float64{{1, 2}, {3, 4}, {5, 6}}),
			dense([][]float64{{1, 2}, {3, 4}}),
			opts,
		)
		require.ErrorIs(t, err, generic.ErrShapeMismatch)
	})

	t.Run("empty input without padding", func(t *testing.T) {
		t.Parallel()

		opts := generic.Options{
			Options: prep.Options{CheckFinite: true},
			Driver:  generic.DriverRobust,
		}
		_, err := generic.Solve(&mat.Dense{}, &mat.Dense{}, opts)
		require.ErrorIs(t, err, generic.ErrEmptyMatrix)
	})
}

func TestDriver_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "robust", generic.DriverRobust.String())
	require.Equal(t, "fast", generic.DriverFast.String())
}
