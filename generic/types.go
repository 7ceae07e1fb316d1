// SPDX-License-Identifier: MIT

// Package generic: sentinel errors, the pseudo-inverse Driver enumeration,
// and solver Options with documented defaults.
package generic

import (
	"errors"

	"github.com/katalvlaran/procrustes/prep"
)

var (
	// ErrUnknownDriver is returned when an unrecognized pseudo-inverse
	// driver is given.
	ErrUnknownDriver = errors.New("generic: unknown pseudo-inverse driver")

	// ErrShapeMismatch indicates that A and B do not have the same number
	// of rows after preprocessing.
	ErrShapeMismatch = errors.New("generic: row count mismatch after preprocessing")

	// ErrEmptyMatrix indicates that preprocessing left A or B with no rows
	// or columns (e.g. an all-zero input that was fully unpadded).
	ErrEmptyMatrix = errors.New("generic: empty matrix after preprocessing")
)

// Driver selects the numerical method used for the Moore-Penrose
// pseudo-inverse of AᵀA.
type Driver int

const (
	// DriverRobust computes the pseudo-inverse through a full singular
	// value decomposition. Slower than DriverFast but numerically the most
	// dependable; the default.
	DriverRobust Driver = iota

	// DriverFast exploits the symmetry of AᵀA and computes the
	// pseudo-inverse through a symmetric eigendecomposition. Faster, less
	// robust on ill-conditioned inputs.
	DriverFast
)

// String returns the stable textual name of the driver.
func (d Driver) String() string {
	switch d {
	case DriverRobust:
		return "robust"
	case DriverFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Options configures Solve. The embedded prep.Options controls the
// preprocessing pipeline (unpad → translate → weight → scale → pad);
// Driver selects the pseudo-inverse method.
type Options struct {
	prep.Options

	Driver Driver
}

// DefaultOptions returns the documented defaults: the prep defaults
// (padding and finiteness checking on) with the robust driver.
func DefaultOptions() Options {
	return Options{Options: prep.DefaultOptions(), Driver: DriverRobust}
}
