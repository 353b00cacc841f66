package kopt

import "github.com/vectorpath/koptsolver/combcat"

// Improver runs the k-opt improvement loop for a fixed k over a shared
// TourState. It holds no tour state of its own between calls to improve;
// the borrowed TourState (n, weights, threshold) is the only shared
// mutable-by-reference context, and it is read-only after construction.
type Improver struct {
	k     int
	state *TourState
}

// newImprover constructs an Improver for segment count k over state.
func newImprover(k int, state *TourState) (*Improver, error) {
	if k < 2 {
		return nil, ErrInvalidParameter
	}
	if state.n < k {
		return nil, ErrInvalidInput
	}

	return &Improver{k: k, state: state}, nil
}

// improve runs the improvement loop to a local optimum starting from tour
// (a closed position-space Hamiltonian cycle) and returns the result in
// canonical orientation.
//
// Each scan enumerates every cut-index vector once, evaluates every
// non-identity recombination from combcat.Normalized(k) against the
// baseline cost at that cut, and remembers the single best-improving move
// across the whole scan. If one was found, it is applied and scanning
// restarts; otherwise the tour is a k-opt local optimum.
func (im *Improver) improve(tour []int) ([]int, error) {
	catalog, err := combcat.Normalized(im.k)
	if err != nil {
		return nil, err
	}

	cur := CopyTour(tour)
	threshold := -im.state.minImprovement

	for {
		next, applied, err := im.scanOnce(cur, catalog, threshold)
		if err != nil {
			return nil, err
		}
		if !applied {
			break
		}
		cur = next
	}

	if err := CanonicalizeOrientationInPlace(cur); err != nil {
		return nil, err
	}

	return cur, nil
}

// scanOnce performs steps 1-2 of the improvement loop (enumerate I,
// compute B, baseline cost, and every non-identity recombination's cost)
// and, if a best-improving move was found, applies it (step 4).
func (im *Improver) scanOnce(cur []int, catalog []combcat.Combination, threshold float64) ([]int, bool, error) {
	n := im.state.n
	k := im.k

	bestDelta := threshold
	var bestCombination combcat.Combination
	var bestI []int

	B := make([]int, 2*k)
	enum := newCutIndexEnumerator(n, k)
	for enum.next() {
		I := enum.I
		for j := 0; j < k; j++ {
			B[2*j] = cur[I[j]]
			B[2*j+1] = cur[I[j]+1]
		}

		var baseCost float64
		for i := 0; i < k; i++ {
			baseCost += im.state.weight(B[2*i], B[2*i+1])
		}

		// catalog[0] is always the identity combination (combcat guarantees
		// this); skip it explicitly rather than re-deriving "is identity".
		for _, C := range catalog[1:] {
			var cost float64
			for i := 0; i < k; i++ {
				cost += im.state.weight(B[C[2*i]], B[C[2*i+1]])
			}

			delta := cost - baseCost
			if delta < bestDelta {
				bestDelta = delta
				bestCombination = C
				bestI = append(bestI[:0:0], I...)
			}
		}
	}

	if bestCombination == nil {
		return cur, false, nil
	}

	return applyMove(cur, n, bestI, bestCombination), true, nil
}

// applyMove translates bestCombination's canonical bound indices to tour
// positions via pos(b) = bestI[b>>1] + (b&1), then rebuilds the tour as
// k+1 inclusive segments: a prefix (0, pos(C[0])), a middle segment per
// consecutive pair of new edges, and a suffix (pos(C[2k-1]), n). Each
// segment (a,b) copies tour[a..b] forward if a<=b, reversed if a>b.
func applyMove(tour []int, n int, bestI []int, C combcat.Combination) []int {
	k := len(bestI)
	pos := func(b int) int { return bestI[b>>1] + (b & 1) }

	out := make([]int, n+1)
	w := 0

	w = copySegment(tour, out, w, 0, pos(C[0]))
	for i := 0; i <= k-2; i++ {
		a := pos(C[2*i+1])
		b := pos(C[2*i+2])
		w = copySegment(tour, out, w, a, b)
	}
	w = copySegment(tour, out, w, pos(C[2*k-1]), n)
	_ = w

	out[n] = out[0]

	return out
}

// copySegment copies tour[a..b] inclusive into out starting at out[w],
// forward if a<=b, reversed if a>b, and returns the next free write index.
func copySegment(tour, out []int, w, a, b int) int {
	if a <= b {
		for x := a; x <= b; x++ {
			out[w] = tour[x]
			w++
		}
	} else {
		for x := a; x >= b; x-- {
			out[w] = tour[x]
			w++
		}
	}

	return w
}
