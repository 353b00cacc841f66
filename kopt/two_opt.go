// Package kopt - standalone 2-opt reference implementation.
//
// TwoOptReference is a deterministic best-improvement 2-opt kept
// independent of the generalized k-opt engine, so the k=2 specialization of
// Improver can be checked against a hand-written implementation of
// classical 2-opt segment reversal. It scans every candidate move per pass
// and applies the single best-improving one before rescanning, matching
// Improver's scanOnce pivoting rule exactly.
//
// Classic segment reversal: Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), with
// a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// Design:
//   - Deterministic scanning order; best-improvement per pass, restart
//     after every accepted move.
//   - Strict sentinel errors only.
//   - Cost stabilized to 1e-9 via round1e9.
package kopt

// TwoOptReference runs deterministic best-improvement 2-opt starting from
// initTour over the flat weight matrix w (position-indexed, n*n). Returns
// the improved tour and its stabilized cost.
//
// Complexity: O(iter*n^2) time typical; O(1) extra space per accepted move.
func TwoOptReference(w []float64, n int, initTour []int, eps float64) ([]int, float64, error) {
	if err := ValidateTour(initTour, n); err != nil {
		return nil, 0, err
	}
	if eps < 0 {
		eps = 0
	}

	at := func(u, v int) float64 { return w[u*n+v] }

	cur := CopyTour(initTour)

	var cost float64
	for i := 0; i < n; i++ {
		cost += at(cur[i], cur[i+1])
	}

	for {
		bestDelta := -eps
		bestI, bestK := -1, -1

		for i := 1; i <= n-2; i++ {
			a := cur[i-1]
			b := cur[i]
			for k := i + 1; k <= n-1; k++ {
				c := cur[k]
				d := cur[k+1]

				delta := (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta < bestDelta {
					bestDelta = delta
					bestI, bestK = i, k
				}
			}
		}

		if bestI < 0 {
			break
		}
		if err := reverseArcInPlace(cur, bestI, bestK); err != nil {
			return nil, 0, err
		}
		cost += bestDelta
	}

	if err := CanonicalizeOrientationInPlace(cur); err != nil {
		return nil, 0, err
	}

	return cur, round1e9(cost), nil
}
