// Package procrustes is your toolbox for matrix alignment — solving
// Procrustes problems that transform one matrix to match a reference as
// closely as possible under the Frobenius norm.
//
// 🚀 What is procrustes?
//
//	A deterministic library built on gonum that brings together:
//		• Preprocessing: zero-padding, trimming, centroid translation, norm scaling
//		• Decompositions: SVD & symmetric eigendecomposition wrappers
//		• Generic solver: least-squares optimal linear map via pseudo-inverse
//		• K-opt refiner: local search polishing permutation matrices
//		• Two-sided single-transformation orthogonal alignment
//
// ✨ Why choose procrustes?
//
//   - Deterministic – fixed enumeration orders, reproducible results
//   - Side-effect free – inputs are never mutated; every stage returns fresh matrices
//   - Strict errors – sentinel errors per package, matched with errors.Is
//   - Composable – every solver consumes the same preprocessing pipeline and
//     scores candidates with the same Frobenius objective
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — shared Result container & the Frobenius error objective
//	prep/       — trimming, translation, scaling, padding + the Setup pipeline
//	decomp/     — SVD and symmetric eigendecomposition (with diagonalizability check)
//	generic/    — generic one-sided least-squares solver (pseudo-inverse)
//	kopt/       — k-opt combinatorial refiner for permutation matrices
//	orthogonal/ — two-sided orthogonal single-transformation solver
//
// Quick sketch:
//
//	    A ──(prep.Setup)──▶ A′ ──(generic.Solve)──▶ T
//	    B ──(prep.Setup)──▶ B′ ──────────────────▶ error = ‖A′T − B′‖²
//
// Intended users are computational scientists aligning point sets, molecular
// conformations, or feature matrices. Dive into the per-package docs for
// contracts, complexity notes and runnable examples.
//
//	go get github.com/katalvlaran/procrustes
package procrustes
