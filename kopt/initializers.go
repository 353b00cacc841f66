package kopt

import (
	"math"
	"math/rand"

	"github.com/vectorpath/koptsolver/graph"
)

// nearestNeighborInitializer builds a greedy nearest-neighbor tour. Exactly
// one of starts or rng drives the start vertex selection per call:
//   - starts non-empty: cycle through it in order across successive calls
//     (one call per Solver pass), so NearestNeighborStarts(a,b,c) with
//     Passes=3 tries all three starts.
//   - rng set: pick a uniformly random start (via the graph's own vertex
//     iteration order) on every call.
//   - neither: always start at the first vertex in iteration order.
type nearestNeighborInitializer struct {
	starts []int
	rng    *rand.Rand
	next   int
}

// NearestNeighbor returns an Initializer that always starts at the given
// vertex.
func NearestNeighbor(start int) Initializer {
	return &nearestNeighborInitializer{starts: []int{start}}
}

// NearestNeighborStarts returns an Initializer that cycles through starts,
// one per call, wrapping around once exhausted.
func NearestNeighborStarts(starts ...int) Initializer {
	cp := make([]int, len(starts))
	copy(cp, starts)

	return &nearestNeighborInitializer{starts: cp}
}

// NearestNeighborRandom returns an Initializer that picks a uniformly
// random start vertex (via rng) on every call.
func NearestNeighborRandom(rng *rand.Rand) Initializer {
	return &nearestNeighborInitializer{rng: rng}
}

// ComputeTour runs greedy nearest-neighbor from the selected start,
// breaking ties by lowest graph-iteration-order neighbor: candidates are
// scanned in g.Vertices() order and a candidate only replaces the current
// best on a strictly smaller weight, so the first minimum encountered wins.
func (nn *nearestNeighborInitializer) ComputeTour(g graph.Graph) ([]int, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrInvalidInput
	}

	var start int
	switch {
	case len(nn.starts) > 0:
		start = nn.starts[nn.next%len(nn.starts)]
		nn.next++
	case nn.rng != nil:
		start = verts[nn.rng.Intn(n)]
	default:
		start = verts[0]
	}

	visited := make(map[int]bool, n)
	tour := make([]int, 0, n+1)
	cur := start
	visited[cur] = true
	tour = append(tour, cur)

	for len(tour) < n {
		best := -1
		bestW := math.Inf(1)
		for _, v := range verts {
			if visited[v] {
				continue
			}
			w, err := g.Weight(cur, v)
			if err != nil {
				return nil, ErrInvalidInput
			}
			if w < bestW {
				bestW = w
				best = v
			}
		}
		if best == -1 {
			return nil, ErrInvalidInput
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}

	tour = append(tour, start)

	return tour, nil
}

// randomTourInitializer returns a uniformly random Hamiltonian cycle via
// Fisher-Yates shuffle of the graph's vertex list. Each call derives an
// independent RNG stream from the base rng (via deriveRNG), so successive
// calls across a Solver/Driver's multi-start Passes loop produce
// decorrelated restarts instead of replaying the same permutation.
type randomTourInitializer struct {
	rng   *rand.Rand
	calls uint64
}

// RandomTour returns an Initializer producing a uniformly random
// Hamiltonian cycle. A nil rng falls back to the deterministic default
// stream (see deriveRNG).
func RandomTour(rng *rand.Rand) Initializer {
	return &randomTourInitializer{rng: rng}
}

func (rt *randomTourInitializer) ComputeTour(g graph.Graph) ([]int, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrInvalidInput
	}

	stream := deriveRNG(rt.rng, rt.calls)
	rt.calls++

	perm, err := permRange(n, stream)
	if err != nil {
		return nil, err
	}

	tour := make([]int, n+1)
	for i, p := range perm {
		tour[i] = verts[p]
	}
	tour[n] = tour[0]

	return tour, nil
}
