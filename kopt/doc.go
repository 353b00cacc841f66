// Package kopt implements a k-opt local-search solver for the symmetric
// Traveling Salesperson Problem: given an undirected complete weighted
// graph, repeatedly cut the current tour into k segments, consult the
// combcat catalog for every canonical way to splice the segments back
// together, and apply the best-improving recombination until none remains.
//
// # What & Why
//
// Given a graph.Graph of n vertices, kopt computes a Hamiltonian cycle
// (GraphPath) by:
//
//   - running an Initializer collaborator (nearest-neighbor, random, or a
//     caller-supplied tour) to produce a starting cycle per pass,
//   - improving it with the k-opt engine until no recombination of k
//     segments lowers total cost beyond MinCostImprovement,
//   - keeping the best result across Passes independent starts.
//
// # Algorithm & Complexity
//
//	k-opt improvement loop (Improver.improve)
//	  Per scan: enumerate every strictly increasing k-subset of tour
//	  positions (cut-index vectors), consult combcat.Normalized(k) for
//	  every non-identity recombination, track the single best-improving
//	  move across the whole scan, apply it, repeat.
//	  Time: O(C(n,k) * |Normalized(k)|) per scan; scans continue until a
//	  local optimum is reached. k=2 degenerates to classical 2-opt.
//
//	Driver (the "incremental" runner)
//	  Runs 2-opt, 3-opt, ..., maxK-opt in sequence over a shared TourState,
//	  each stage starting from the previous stage's local optimum.
//
// # Determinism & Stability
//
//   - No time-based randomness; RandomTour and the random-start variant of
//     NearestNeighbor take an explicit *rand.Rand (see rng.go).
//   - Tie-breaks in NearestNeighbor use the graph's own vertex iteration
//     order (lowest-iteration-order neighbor wins strict ties).
//   - Costs are rounded to 1e-9 (round1e9) to avoid cross-platform FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction so equal cyclic
//     orders compare equal regardless of which 2-opt/k-opt move produced them.
//
// # Input Requirements
//
//	The graph must be undirected (symmetric weights), complete (every
//	off-diagonal weight finite), have at least k vertices, and carry no
//	negative, NaN, or infinite edge weight. Violations surface as
//	ErrInvalidInput from GetTour / ImproveTour.
//
// # Options
//
//	type Options struct {
//	    K                  int         // segment count, k>=2
//	    Passes             int         // independent initializations, >=1 (default 1)
//	    MinCostImprovement float64     // acceptance threshold, >=0 (default 1e-8)
//	    Initializer        Initializer // required; see NearestNeighbor / RandomTour
//	}
//
//	func DefaultOptions(k int) Options
//
// # Errors (strict sentinels)
//
//	ErrInvalidParameter, ErrInvalidInput, ErrDimensionMismatch.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	graph.GraphPath{ Vertices []int, Weight float64 } — Vertices has length
//	n+1 with Vertices[0]==Vertices[n]; Weight is the sum of consecutive
//	edges as computed by the graph's BuildPath (not rounded by round1e9).
package kopt
