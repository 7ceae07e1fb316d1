// SPDX-License-Identifier: MIT

// Package prep - zero-padding to a common shape.
package prep

import (
	"gonum.org/v1/gonum/mat"
)

// Pad zero-pads a and b along the axes selected by mode so they end up with
// matching shapes. Padding rows are appended at the bottom and padding
// columns on the right; the original matrix always occupies the upper-left
// block.
//
//   - PadRows:   equalize row counts only.
//   - PadCols:   equalize column counts only.
//   - PadRowCol: equalize rows and columns independently (not necessarily
//     square).
//   - PadSquare: pad both matrices to dim×dim, dim = max(r_a, c_a, r_b, c_b).
//
// If the shapes already match for the relevant axes the inputs are returned
// as fresh copies (padding is a no-op, never a trim).
//
// Contracts:
//   - a and b must be non-nil (ErrNilMatrix).
//   - mode must be a declared PadMode (ErrBadPadMode).
//
// Complexity: O(R·C) time and space for the padded copies.
func Pad(a, b mat.Matrix, mode PadMode) (*mat.Dense, *mat.Dense, error) {
	if a == nil || b == nil {
		return nil, nil, ErrNilMatrix
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()

	// Target shapes per matrix; start from the current ones.
	tar, tac := ar, ac
	tbr, tbc := br, bc

	switch mode {
	case PadRows:
		tar = maxInt(ar, br)
		tbr = tar
	case PadCols:
		tac = maxInt(ac, bc)
		tbc = tac
	case PadRowCol:
		tar = maxInt(ar, br)
		tbr = tar
		tac = maxInt(ac, bc)
		tbc = tac
	case PadSquare:
		dim := maxInt(maxInt(ar, ac), maxInt(br, bc))
		tar, tac = dim, dim
		tbr, tbc = dim, dim
	default:
		return nil, nil, ErrBadPadMode
	}

	return padTo(a, tar, tac), padTo(b, tbr, tbc), nil
}

// padTo returns an r×c zero matrix with m copied into its upper-left block.
// r and c are never smaller than m's dimensions by construction.
func padTo(m mat.Matrix, r, c int) *mat.Dense {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	mr, mc := m.Dims()
	out := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < mr; i++ {
		for j = 0; j < mc; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
