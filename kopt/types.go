package kopt

import "github.com/vectorpath/koptsolver/graph"

// DefaultMinCostImprovement is the default acceptance threshold below which
// a cost delta is treated as noise rather than a genuine improvement.
const DefaultMinCostImprovement = 1e-8

// Initializer produces a Hamiltonian cycle of g, expressed as a closed
// vertex-ID sequence (length n+1, first==last). The solver consumes exactly
// this interface; NearestNeighbor and RandomTour are the two collaborators
// this package provides, but any caller-supplied implementation works.
type Initializer interface {
	ComputeTour(g graph.Graph) ([]int, error)
}

// Options configures a Solver. Zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// K is the segment count for the k-opt neighborhood. Must be >= 2.
	K int

	// Passes is the number of independent initializations to run; the best
	// result across all passes is returned. Must be >= 1. Default 1.
	Passes int

	// MinCostImprovement is the acceptance threshold: a candidate move is
	// applied only if its cost delta is strictly less than
	// -MinCostImprovement. Must be >= 0. Default DefaultMinCostImprovement.
	MinCostImprovement float64

	// Initializer produces the starting tour for each pass. Required.
	Initializer Initializer
}

// DefaultOptions returns Options with k, a single pass, the default
// improvement threshold, and no initializer set (the caller must supply
// one — there is no safe default collaborator to assume).
func DefaultOptions(k int) Options {
	return Options{
		K:                  k,
		Passes:             1,
		MinCostImprovement: DefaultMinCostImprovement,
	}
}

// validate checks internal consistency of Options without touching a graph.
func (o Options) validate() error {
	if o.K < 2 {
		return ErrInvalidParameter
	}
	if o.Passes < 1 {
		return ErrInvalidParameter
	}
	if o.MinCostImprovement < 0 {
		return ErrInvalidParameter
	}
	if o.Initializer == nil {
		return ErrInvalidParameter
	}

	return nil
}

// TourState is the borrowed, read-only context shared by every Improver
// acting on one solver invocation: vertex count, the flattened distance
// matrix (position-indexed, not graph vertex IDs), and the improvement
// threshold. Composition replaces the source's field inheritance between a
// 2-opt class and its k-opt descendant (see package driver.go): a TourState
// value is passed to each Improver by reference instead of being embedded.
type TourState struct {
	n              int
	w              []float64 // flat n*n matrix; w[u*n+v] is the weight of position-edge (u,v)
	minImprovement float64
}

func newTourState(w []float64, n int, minImprovement float64) *TourState {
	return &TourState{n: n, w: w, minImprovement: minImprovement}
}

// weight returns the edge weight between tour positions u and v.
func (s *TourState) weight(u, v int) float64 {
	return s.w[u*s.n+v]
}

// cost sums the weight of every consecutive edge in a closed position-space
// tour (length n+1, tour[0]==tour[n]) and stabilizes the result via round1e9.
func (s *TourState) cost(tour []int) float64 {
	var sum float64
	for i := 0; i < s.n; i++ {
		sum += s.weight(tour[i], tour[i+1])
	}

	return round1e9(sum)
}
