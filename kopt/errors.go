// Package kopt — sentinel errors shared by the k-opt improver and its
// collaborators (initializers, driver).
//
// Design: one sentinel per error kind named in the design's failure
// semantics; never wrap with fmt.Errorf where a sentinel suffices.
package kopt

import "errors"

var (
	// ErrInvalidParameter covers constructor-time misconfiguration: k<2,
	// passes<1, minCostImprovement<0, or a nil compute/initializer collaborator.
	ErrInvalidParameter = errors.New("kopt: invalid parameter")

	// ErrInvalidInput covers a graph or candidate tour that getTour/improveTour
	// cannot operate on: directed, incomplete, fewer than k vertices, a
	// NaN/infinite edge weight, or a non-Hamiltonian initializer result.
	ErrInvalidInput = errors.New("kopt: invalid input")

	// ErrDimensionMismatch flags shape inconsistencies in tour/permutation
	// helpers (wrong length, out-of-range vertex, duplicate vertex).
	ErrDimensionMismatch = errors.New("kopt: dimension mismatch")
)
