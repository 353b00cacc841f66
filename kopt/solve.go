// Package kopt - Solver: the public entry point for a fixed segment count k.
//
// Design principles:
//   - Deterministic: no hidden time-based randomness.
//   - Strict sentinels: only errors from errors.go.
//   - Position-space internally: the improver and tour helpers operate on
//     indices [0..n-1], never on graph vertex IDs directly. Solver/Driver
//     translate at the boundary (toPositionTour / toVertexTour) so the
//     core engine is agnostic to whatever identity a graph.Graph uses for
//     its vertices.
package kopt

import "github.com/vectorpath/koptsolver/graph"

// Solver runs the k-opt improvement loop for one fixed k, per Options.
type Solver struct {
	opts Options
}

// NewSolver validates opts and constructs a Solver. Graph-dependent state
// (distance matrix, vertex count) is built lazily in GetTour/ImproveTour,
// since it depends on the graph passed in at call time, not at construction.
func NewSolver(opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Solver{opts: opts}, nil
}

// GetTour validates g, runs Options.Passes independent initializations via
// Options.Initializer, improves each to a k-opt local optimum, and returns
// the best result as a GraphPath.
func (s *Solver) GetTour(g graph.Graph) (graph.GraphPath, error) {
	verts, w, err := validateGraph(g, s.opts.K)
	if err != nil {
		return graph.GraphPath{}, err
	}
	n := len(verts)

	state := newTourState(w, n, s.opts.MinCostImprovement)
	im, err := newImprover(s.opts.K, state)
	if err != nil {
		return graph.GraphPath{}, err
	}

	vertexToPos := indexVertices(verts)

	var best []int
	bestCost := 0.0
	haveBest := false

	for p := 0; p < s.opts.Passes; p++ {
		rawTour, ierr := s.opts.Initializer.ComputeTour(g)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}
		posTour, ierr := toPositionTour(rawTour, vertexToPos, n)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}

		improved, ierr := im.improve(posTour)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}

		cost := state.cost(improved)
		if !haveBest || cost < bestCost {
			best = improved
			bestCost = cost
			haveBest = true
		}
	}

	return g.BuildPath(toVertexTour(best, verts))
}

// ImproveTour validates g and initial (an existing Hamiltonian cycle
// expressed in g's vertex IDs), runs the improvement loop once to a local
// optimum, and returns the result as a GraphPath.
func (s *Solver) ImproveTour(g graph.Graph, initial []int) (graph.GraphPath, error) {
	verts, w, err := validateGraph(g, s.opts.K)
	if err != nil {
		return graph.GraphPath{}, err
	}
	n := len(verts)

	state := newTourState(w, n, s.opts.MinCostImprovement)
	im, err := newImprover(s.opts.K, state)
	if err != nil {
		return graph.GraphPath{}, err
	}

	posTour, err := toPositionTour(initial, indexVertices(verts), n)
	if err != nil {
		return graph.GraphPath{}, err
	}

	improved, err := im.improve(posTour)
	if err != nil {
		return graph.GraphPath{}, err
	}

	return g.BuildPath(toVertexTour(improved, verts))
}

// indexVertices builds the inverse of verts: vertex ID -> position index.
func indexVertices(verts []int) map[int]int {
	idx := make(map[int]int, len(verts))
	for i, v := range verts {
		idx[v] = i
	}

	return idx
}

// toPositionTour translates a closed vertex-ID tour into position space and
// validates it is a genuine Hamiltonian cycle over vertexToPos's domain.
func toPositionTour(vertexTour []int, vertexToPos map[int]int, n int) ([]int, error) {
	if len(vertexTour) != n+1 || vertexTour[0] != vertexTour[n] {
		return nil, ErrInvalidInput
	}

	pos := make([]int, n+1)
	for i := 0; i < n; i++ {
		p, ok := vertexToPos[vertexTour[i]]
		if !ok {
			return nil, ErrInvalidInput
		}
		pos[i] = p
	}
	pos[n] = pos[0]

	if err := ValidateTour(pos, n); err != nil {
		return nil, ErrInvalidInput
	}

	return pos, nil
}

// toVertexTour translates a closed position-space tour back to vertex IDs.
func toVertexTour(posTour []int, verts []int) []int {
	out := make([]int, len(posTour))
	for i, p := range posTour {
		out[i] = verts[p]
	}

	return out
}
