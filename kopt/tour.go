// Package kopt — tour utilities shared by the improver, initializers, and
// tests. Operates purely on position-space index sequences (not graph
// vertex IDs); Solver/Driver translate to and from actual vertex IDs at
// the boundary (see solve.go).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
package kopt

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces Hamiltonian-cycle invariants over position-space
// indices: len(tour)==n+1, tour[0]==tour[n], and tour[0:n] a permutation
// of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// CanonicalizeOrientationInPlace fixes the tour's traversal direction: if
// the right neighbor of position 0 is numerically greater than the left
// neighbor, the interior segment [1..n-1] is reversed in place. This gives
// a single canonical orientation per cyclic order, independent of which
// sequence of improving moves produced it.
//
// Requirements: len(tour) == n+1 and tour[0]==tour[n] (already closed).
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact.
//
// Contracts: the tour is closed (tour[0]==tour[n]); 1 <= i < k <= n-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	n := len(tour) - 1
	s := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", tour[i])
	}
	s += " | "
	s += fmt.Sprintf("%d", tour[n])
	s += "]"

	return s
}
