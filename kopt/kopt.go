// SPDX-License-Identifier: MIT

// Package kopt - first-improvement k-opt search engines (single and
// double-sided).
//
// Single performs deterministic first-improvement hill-climbing over
// k-column reorderings of one permutation matrix against an injected
// objective. Double applies the identical neighborhood search to the left
// permutation P (row reorderings) and the right permutation Q (column
// reorderings) of the bilinear objective ‖P·A·Q − B‖², holding the other
// side fixed and alternating until a joint local optimum. The alternating
// single-axis scheme keeps each pass polynomial in n for fixed k; it
// deliberately avoids the nested product over both sides, whose
// neighborhood grows multiplicatively.
//
// Design:
//   - Deterministic scanning order (lexicographic subsets via gonum combin);
//     no RNG usage.
//   - Strict sentinel errors only (see types.go).
//   - First-improvement policy: accept any strictly better candidate and
//     restart the scan from the new state.
//   - Monotonicity: the objective value across accepted candidates is
//     non-increasing; "no improving move" is success, not an error.
//
// Complexity:
//   - One pass: C(n,k)·k! candidate evaluations, each costing one objective
//     call plus an O(n·k) candidate copy. Exponential in k; callers needing
//     bounded latency must cap k and/or n externally.
package kopt

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/procrustes/core"
)

// Single finds a locally-optimal permutation matrix for the injected
// objective, starting from p0, using first-improvement k-opt search over
// column reorderings.
//
// Contracts:
//   - fn must be non-nil (ErrNilObjective).
//   - p0 must be a non-nil square matrix (ErrNilMatrix, ErrNonSquare); row
//     and column reorderings preserve the permutation invariant, so any
//     candidate seen by fn is again a permutation matrix whenever p0 is.
//   - 2 ≤ opts.K ≤ n (ErrKOutOfRange).
//
// Returns the locally-optimal matrix (a fresh copy; p0 is never mutated),
// its objective value, and any error surfaced by validation or by fn.
// The initial state already scoring ≤ opts.Tol returns immediately.
func Single(fn Objective, p0 mat.Matrix, opts Options) (*mat.Dense, float64, error) {
	if fn == nil {
		return nil, 0, ErrNilObjective
	}
	if p0 == nil {
		return nil, 0, ErrNilMatrix
	}
	n, c := p0.Dims()
	if n != c {
		return nil, 0, ErrNonSquare
	}
	if opts.K < 2 || opts.K > n {
		return nil, 0, ErrKOutOfRange
	}

	cur := mat.DenseCopyOf(p0)
	best, err := fn(cur)
	if err != nil {
		return nil, 0, err
	}
	if best <= opts.Tol {
		return cur, best, nil
	}

	cur, best, _, err = climb(fn, cur, best, opts.K, opts.Tol, false)
	if err != nil {
		return nil, 0, err
	}

	return cur, best, nil
}

// Double finds locally-optimal two-sided permutation matrices (P, Q)
// minimizing ‖P·A·Q − B‖², starting from p and q (nil means identity).
// Row reorderings improve P and column reorderings improve Q; each side is
// climbed to a local optimum while the other is held fixed, alternating
// until neither side improves.
//
// Contracts:
//   - a and b must be non-nil with identical shapes (ErrNilMatrix,
//     ErrShapeMismatch): P is rows(A)×rows(A), Q is cols(A)×cols(A).
//   - p and q, when given, must be square with those dimensions.
//   - 2 ≤ opts.K ≤ min(rows(A), cols(A)) (ErrKOutOfRange).
//
// Returns the refined pair, the final error, and any validation error.
// The inputs are never mutated.
func Double(a, b mat.Matrix, p, q mat.Matrix, opts Options) (*mat.Dense, *mat.Dense, float64, error) {
	if a == nil || b == nil {
		return nil, nil, 0, ErrNilMatrix
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, nil, 0, ErrShapeMismatch
	}
	if ar == 0 || ac == 0 {
		return nil, nil, 0, ErrShapeMismatch
	}

	curP, err := permOrIdentity(p, ar)
	if err != nil {
		return nil, nil, 0, err
	}
	curQ, err := permOrIdentity(q, ac)
	if err != nil {
		return nil, nil, 0, err
	}

	minDim := ar
	if ac < minDim {
		minDim = ac
	}
	if opts.K < 2 || opts.K > minDim {
		return nil, nil, 0, ErrKOutOfRange
	}

	best, err := core.FrobeniusError(a, b, curP, curQ)
	if err != nil {
		return nil, nil, 0, err
	}

	// Alternate single-axis climbs until a joint local optimum: improve the
	// left side over row reorderings with Q fixed, then the right side over
	// column reorderings with P fixed.
	for best > opts.Tol {
		var impP, impQ bool

		leftFn := func(cand mat.Matrix) (float64, error) {
			return core.FrobeniusError(a, b, cand, curQ)
		}
		curP, best, impP, err = climb(leftFn, curP, best, opts.K, opts.Tol, true)
		if err != nil {
			return nil, nil, 0, err
		}
		if best <= opts.Tol {
			break
		}

		rightFn := func(cand mat.Matrix) (float64, error) {
			return core.FrobeniusError(a, b, curP, cand)
		}
		curQ, best, impQ, err = climb(rightFn, curQ, best, opts.K, opts.Tol, false)
		if err != nil {
			return nil, nil, 0, err
		}

		if !impP && !impQ {
			// Neither side found an improving move: joint local optimum.
			break
		}
	}

	return curP, curQ, best, nil
}

// climb runs the first-improvement k-opt hill-climb on cur against fn until
// a local optimum (or err ≤ tol). onRows selects row reorderings instead of
// column reorderings. seed is fn(cur), passed in so alternating callers do
// not re-evaluate.
//
// Candidates are enumerated deterministically: index subsets in
// lexicographic order (combin.Combinations), subset arrangements in combin's
// fixed permutation order, identity arrangement skipped. Any strictly
// improving candidate is accepted immediately and the scan restarts.
//
// Returns the final state, its value, and whether any move was accepted.
func climb(fn Objective, cur *mat.Dense, seed float64, k int, tol float64, onRows bool) (*mat.Dense, float64, bool, error) {
	n, _ := cur.Dims()
	best := seed
	accepted := false

	// The candidate sets are independent of the search state; enumerate once
	// and rescan after every accepted move.
	combs := combin.Combinations(n, k)
	arrs := combin.Permutations(k, k)

	for {
		improved := false

		for _, comb := range combs {
			for _, arr := range arrs {
				if isIdentityArrangement(arr) {
					continue
				}

				cand := reorder(cur, comb, arr, onRows)
				val, err := fn(cand)
				if err != nil {
					return nil, 0, false, err
				}
				if val >= best {
					continue // not strictly improving
				}

				// First-improvement: adopt the candidate and restart the scan.
				cur, best = cand, val
				accepted = true
				improved = true

				if best <= tol {
					// Exact-match stop condition.
					return cur, best, accepted, nil
				}

				break
			}
			if improved {
				break
			}
		}

		if !improved {
			// Full pass with no improving move: local optimum reached.
			return cur, best, accepted, nil
		}
	}
}

// reorder returns a copy of m with the k rows (or columns) named by comb
// re-ordered by arr: destination comb[t] receives source comb[arr[t]].
func reorder(m *mat.Dense, comb, arr []int, onRows bool) *mat.Dense {
	out := mat.DenseCopyOf(m)
	r, c := m.Dims()

	var t, i int
	for t = range comb {
		dst := comb[t]
		src := comb[arr[t]]
		if dst == src {
			continue
		}
		if onRows {
			for i = 0; i < c; i++ {
				out.Set(dst, i, m.At(src, i))
			}
		} else {
			for i = 0; i < r; i++ {
				out.Set(i, dst, m.At(i, src))
			}
		}
	}

	return out
}

// isIdentityArrangement reports whether arr is the identity permutation of
// its own indices (the one candidate that would reproduce the current state).
func isIdentityArrangement(arr []int) bool {
	for i, v := range arr {
		if v != i {
			return false
		}
	}

	return true
}

// permOrIdentity validates a caller-supplied initial permutation matrix or
// builds the n×n identity when m is nil.
func permOrIdentity(m mat.Matrix, n int) (*mat.Dense, error) {
	if m == nil {
		out := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			out.Set(i, i, 1)
		}

		return out, nil
	}

	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r != n {
		return nil, ErrShapeMismatch
	}

	return mat.DenseCopyOf(m), nil
}
