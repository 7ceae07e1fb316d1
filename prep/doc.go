// SPDX-License-Identifier: MIT

// Package prep provides the numerical preprocessing pipeline shared by all
// Procrustes solvers: trimming of zero padding, translation to the centroid,
// Frobenius-norm scaling, zero-padding to a common shape, and the Setup
// facade that composes them in the one order the solvers rely on:
//
//	unpad → translate → weight → scale → pad
//
// This order matters: translating before scaling ensures the scale factor
// reflects only shape, not position, and padding must come last so that the
// padding zeros are not corrupted by translation or scaling.
//
// All functions are pure: inputs are never mutated and every stage returns
// freshly allocated matrices. Validation is eager and fails fast with the
// sentinel errors from types.go; no partial transformation is observable.
package prep
