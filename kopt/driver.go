package kopt

import "github.com/vectorpath/koptsolver/graph"

// DriverOptions configures a Driver: the incremental runner that applies
// 2-opt, 3-opt, ..., MaxK-opt in sequence over one shared TourState (see
// the design note on composition replacing the source's 2-opt/k-opt
// inheritance).
type DriverOptions struct {
	// MaxK is the highest segment count to run; the driver builds one
	// Improver per k in [2, MaxK]. Must be >= 2.
	MaxK int

	// Passes is the number of independent initializations; the best result
	// across all passes (after the full 2..MaxK sequence) is returned.
	Passes int

	// MinCostImprovement is the shared acceptance threshold for every
	// stage. Must be >= 0.
	MinCostImprovement float64

	// Initializer produces the starting tour for each pass.
	Initializer Initializer
}

// DefaultDriverOptions returns DriverOptions for k in [2, maxK], a single
// pass, and the default improvement threshold.
func DefaultDriverOptions(maxK int) DriverOptions {
	return DriverOptions{
		MaxK:               maxK,
		Passes:             1,
		MinCostImprovement: DefaultMinCostImprovement,
	}
}

func (o DriverOptions) validate() error {
	if o.MaxK < 2 {
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

// Driver runs 2-opt through MaxK-opt in sequence: each stage starts from
// the previous stage's local optimum, so k-opt never has to rediscover
// improvements already found by (k-1)-opt.
type Driver struct {
	opts      DriverOptions
	improvers []*Improver
	state     *TourState
}

// NewDriver validates opts but defers graph-dependent construction
// (TourState, per-k Improvers) to GetTour, since those depend on n.
func NewDriver(opts DriverOptions) (*Driver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Driver{opts: opts}, nil
}

// GetTour validates g, runs Passes independent initializations, runs each
// through the 2..MaxK improver sequence, and returns the best result.
func (d *Driver) GetTour(g graph.Graph) (graph.GraphPath, error) {
	verts, w, err := validateGraph(g, d.opts.MaxK)
	if err != nil {
		return graph.GraphPath{}, err
	}
	n := len(verts)

	state := newTourState(w, n, d.opts.MinCostImprovement)
	improvers := make([]*Improver, 0, d.opts.MaxK-1)
	for k := 2; k <= d.opts.MaxK; k++ {
		im, ierr := newImprover(k, state)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}
		improvers = append(improvers, im)
	}

	vertexToPos := indexVertices(verts)

	var best []int
	bestCost := 0.0
	haveBest := false

	for p := 0; p < d.opts.Passes; p++ {
		rawTour, ierr := d.opts.Initializer.ComputeTour(g)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}
		posTour, ierr := toPositionTour(rawTour, vertexToPos, n)
		if ierr != nil {
			return graph.GraphPath{}, ierr
		}

		cur := posTour
		for _, im := range improvers {
			cur, ierr = im.improve(cur)
			if ierr != nil {
				return graph.GraphPath{}, ierr
			}
		}

		cost := state.cost(cur)
		if !haveBest || cost < bestCost {
			best = cur
			bestCost = cost
			haveBest = true
		}
	}

	return g.BuildPath(toVertexTour(best, verts))
}
