// Package kopt — graph validation shared by Solver and Driver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n^2) worst case, no hidden allocations beyond the returned buffers.
package kopt

import (
	"math"

	"github.com/vectorpath/koptsolver/graph"
)

// symTol is the structural tolerance used to decide whether a graph's
// weights are symmetric (undirected). Independent of MinCostImprovement,
// which governs acceptance of local-search moves, not input validation.
const symTol = 1e-12

// validateGraph verifies g is a complete, undirected, finite-weighted graph
// with at least k vertices, and returns a stable vertex list (g.Vertices(),
// verbatim) alongside the flattened, position-indexed weight matrix
// w[i*n+j] == weight between verts[i] and verts[j].
//
// Complexity: O(n^2).
func validateGraph(g graph.Graph, k int) (verts []int, w []float64, err error) {
	if g == nil {
		return nil, nil, ErrInvalidInput
	}

	verts = g.Vertices()
	n := len(verts)
	if n != g.NumVertices() {
		return nil, nil, ErrInvalidInput
	}
	if n < k {
		return nil, nil, ErrInvalidInput
	}

	w = make([]float64, n*n)

	var (
		i, j int
		x    float64
		werr error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x, werr = g.Weight(verts[i], verts[j])
			if werr != nil {
				return nil, nil, ErrInvalidInput
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, nil, ErrInvalidInput
			}
			if x < 0 {
				return nil, nil, ErrInvalidInput
			}
			w[i*n+j] = x
		}
	}

	// Undirected requirement: weights must be symmetric. An asymmetric
	// matrix is the only signal this interface can observe for "directed".
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := w[i*n+j] - w[j*n+i]
			if d < 0 {
				d = -d
			}
			if d > symTol {
				return nil, nil, ErrInvalidInput
			}
		}
	}

	return verts, w, nil
}
