// SPDX-License-Identifier: MIT

// Package decomp: sentinel error set.
package decomp

import "errors"

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("decomp: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or columns, for
	// which no decomposition is defined.
	ErrEmptyMatrix = errors.New("decomp: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("decomp: matrix is not square")

	// ErrNotDiagonalizable signals that the eigenvectors cannot span the
	// vector space, so the symmetric eigendecomposition cannot proceed.
	ErrNotDiagonalizable = errors.New("decomp: matrix is not diagonalizable")

	// ErrDecompFailed indicates that the underlying decomposition failed to
	// converge. It is always wrapped with the operation and matrix shape,
	// e.g. "SVD 4x6: decomp: decomposition failed"; match with errors.Is.
	ErrDecompFailed = errors.New("decomp: decomposition failed")
)
