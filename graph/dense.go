package graph

import "fmt"

// Dense is a square, row-major, flat-backed Graph: n vertices, weights
// stored in an n*n slice for cache-friendly lookups, with bounds-checked
// access. It is the reference Graph implementation used throughout this
// module.
//
// Dense does not itself enforce symmetry, non-negativity, or finiteness —
// those are solver-level (kopt) concerns, because a Graph implementation
// that violates them is exactly what the rejection-test scenarios in the
// spec need to construct.
type Dense struct {
	n    int
	data []float64 // flat, row-major, length n*n
}

// NewDense builds a Dense graph from a square weight matrix. Rows need not
// be individually allocated beyond n entries; ragged rows are rejected.
func NewDense(weights [][]float64) (*Dense, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	data := make([]float64, n*n)
	for i, row := range weights {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		copy(data[i*n:(i+1)*n], row)
	}

	return &Dense{n: n, data: data}, nil
}

// NumVertices returns n.
func (d *Dense) NumVertices() int { return d.n }

// Vertices returns 0..n-1 in ascending order — the stable iteration order
// every NearestNeighbor/RandomTour call relies on for reproducibility.
func (d *Dense) Vertices() []int {
	out := make([]int, d.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Weight returns the stored weight for (u,v), bounds-checked.
func (d *Dense) Weight(u, v int) (float64, error) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return 0, ErrIndexOutOfRange
	}

	return d.data[u*d.n+v], nil
}

// BuildPath sums weights along a closed vertex sequence and returns the
// resulting GraphPath. order must be closed (order[0] == order[last]) and
// every intermediate index must be in range; BuildPath does not otherwise
// validate that order is Hamiltonian (that is kopt.ValidateTour's job).
func (d *Dense) BuildPath(order []int) (GraphPath, error) {
	if len(order) < 2 {
		return GraphPath{}, ErrDimensionMismatch
	}
	if order[0] != order[len(order)-1] {
		return GraphPath{}, ErrDimensionMismatch
	}

	var total float64
	for i := 0; i < len(order)-1; i++ {
		w, err := d.Weight(order[i], order[i+1])
		if err != nil {
			return GraphPath{}, err
		}
		total += w
	}

	return GraphPath{Vertices: append([]int(nil), order...), Weight: total}, nil
}

// String implements fmt.Stringer for debugging (grounded on matrix.Dense.String).
func (d *Dense) String() string {
	s := ""
	for i := 0; i < d.n; i++ {
		s += "["
		for j := 0; j < d.n; j++ {
			s += fmt.Sprintf("%g", d.data[i*d.n+j])
			if j < d.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
