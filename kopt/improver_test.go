package kopt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func flatWeights(w [][]float64) []float64 {
	n := len(w)
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = w[i][j]
		}
	}

	return flat
}

// TestImprover_S1FourCitySymmetric covers scenario S1 directly against the
// Improver, bypassing Solver/graph translation: k=2 from the trivial ring
// must find the 97-cost optimum.
func TestImprover_S1FourCitySymmetric(t *testing.T) {
	w := [][]float64{
		{0, 20, 42, 35},
		{20, 0, 30, 34},
		{42, 30, 0, 12},
		{35, 34, 12, 0},
	}
	state := newTourState(flatWeights(w), 4, 1e-8)

	im, err := newImprover(2, state)
	require.NoError(t, err)

	ring := []int{0, 1, 2, 3, 0}
	out, err := im.improve(ring)
	require.NoError(t, err)
	require.InDelta(t, 97.0, state.cost(out), 1e-6)
}

// TestImprover_InvariantCostNeverIncreases covers invariant 3 across a
// handful of random symmetric instances and every k from 2 to 5.
func TestImprover_InvariantCostNeverIncreases(t *testing.T) {
	seeds := []int64{1, 2, 3, 17, 99}
	for _, seed := range seeds {
		rng := rngFromSeed(seed)
		n := 9
		w := make([][]float64, n)
		for i := range w {
			w[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				v := rng.Float64()*50 + 1
				w[i][j] = v
				w[j][i] = v
			}
		}
		state := newTourState(flatWeights(w), n, 1e-8)

		ring := make([]int, n+1)
		for i := 0; i < n; i++ {
			ring[i] = i
		}
		ring[n] = 0
		ringCost := state.cost(ring)

		for k := 2; k <= 5; k++ {
			im, err := newImprover(k, state)
			require.NoError(t, err)

			out, err := im.improve(ring)
			require.NoError(t, err)
			require.LessOrEqual(t, state.cost(out), ringCost+1e-6, "seed=%d k=%d", seed, k)
		}
	}
}

// TestImprover_InvariantValidHamiltonianCycle covers invariant 5: the
// improved tour is always a closed permutation of 0..n-1.
func TestImprover_InvariantValidHamiltonianCycle(t *testing.T) {
	n := 7
	rng := rngFromSeed(55)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64() * 100
			w[i][j] = v
			w[j][i] = v
		}
	}
	state := newTourState(flatWeights(w), n, 1e-8)

	ring := make([]int, n+1)
	for i := 0; i < n; i++ {
		ring[i] = i
	}
	ring[n] = 0

	for k := 2; k <= 4; k++ {
		im, err := newImprover(k, state)
		require.NoError(t, err)

		out, err := im.improve(ring)
		require.NoError(t, err)
		require.NoError(t, ValidateTour(out, n), "k=%d", k)
	}
}

// TestImprover_K2MatchesReference2Opt covers invariant 4: with k=2, the
// generalized Improver must reduce exactly to classical 2-opt segment
// reversal, matching the standalone reference implementation exactly.
func TestImprover_K2MatchesReference2Opt(t *testing.T) {
	n := 8
	rng := rngFromSeed(321)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64() * 40
			w[i][j] = v
			w[j][i] = v
		}
	}
	flat := flatWeights(w)
	state := newTourState(flat, n, 1e-8)

	ring := make([]int, n+1)
	for i := 0; i < n; i++ {
		ring[i] = i
	}
	ring[n] = 0

	im, err := newImprover(2, state)
	require.NoError(t, err)
	out, err := im.improve(ring)
	require.NoError(t, err)

	refTour, refCost, err := TwoOptReference(flat, n, ring, 1e-8)
	require.NoError(t, err)

	require.InDelta(t, refCost, state.cost(out), 1e-6)
	require.Equal(t, refTour, out)
}

// TestImprover_RejectsKLargerThanN covers newImprover's guards: k > n is
// ErrInvalidInput, k < 2 is ErrInvalidParameter.
func TestImprover_RejectsKLargerThanN(t *testing.T) {
	state := newTourState(flatWeights([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}), 3, 1e-8)

	_, err := newImprover(5, state)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = newImprover(1, state)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

// TestImprover_LocalOptimumIsStable checks that re-running improve on an
// already locally-optimal tour is a no-op (idempotence of the fixed point).
func TestImprover_LocalOptimumIsStable(t *testing.T) {
	w := [][]float64{
		{0, 20, 42, 35},
		{20, 0, 30, 34},
		{42, 30, 0, 12},
		{35, 34, 12, 0},
	}
	state := newTourState(flatWeights(w), 4, 1e-8)
	im, err := newImprover(2, state)
	require.NoError(t, err)

	ring := []int{0, 1, 2, 3, 0}
	once, err := im.improve(ring)
	require.NoError(t, err)

	twice, err := im.improve(once)
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestTourState_Weight(t *testing.T) {
	w := [][]float64{
		{0, 3},
		{3, 0},
	}
	state := newTourState(flatWeights(w), 2, 1e-8)
	require.Equal(t, 3.0, state.weight(0, 1))
	require.Equal(t, 0.0, state.weight(0, 0))
	require.False(t, math.IsNaN(state.cost([]int{0, 1, 0})))
}
