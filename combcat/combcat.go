package combcat

import (
	"sync"

	"github.com/vectorpath/koptsolver/cache"
)

// Combination is a 2k-length index sequence over the segment-bound vertex
// map B: even positions are where a new edge leaves B, odd positions are
// where it enters. C[0] is always 0 and C[2k-1] is always 2k-1, fixing
// segment 0's bounds to quotient out cyclic rotations.
type Combination []int

// buildNormalized constructs the full normalized catalog for k, identity
// first.
//
// Construction: start from the single partial combination [0]. For each of
// the k-1 extension rounds, extend every partial accumulated so far with
// every not-yet-used odd bound v in {1,3,...,2k-3}, in both orientations:
//
//	forward:  P ++ [v, v+1]   (segment kept in original orientation)
//	reversed: P ++ [v+1, v]   (segment reversed)
//
// After k-1 rounds every partial has length 2k-1; append 2k-1 to close it.
// Because rounds and bounds are scanned in ascending order and forward is
// tried before reversed, the very first combination produced is always
// the identity (0,1,2,...,2k-1).
func buildNormalized(k int) ([]Combination, error) {
	if k < 2 {
		return nil, ErrInvalidParameter
	}

	oddBounds := make([]int, 0, k-1)
	for v := 1; v <= 2*k-3; v += 2 {
		oddBounds = append(oddBounds, v)
	}

	partials := []Combination{{0}}
	for s := 1; s <= k-1; s++ {
		next := make([]Combination, 0, len(partials)*2*(k-s))
		for _, p := range partials {
			used := make(map[int]bool, len(p))
			for _, x := range p {
				used[x] = true
			}
			for _, v := range oddBounds {
				if used[v] {
					continue
				}
				fwd := make(Combination, len(p), len(p)+2)
				copy(fwd, p)
				fwd = append(fwd, v, v+1)

				rev := make(Combination, len(p), len(p)+2)
				copy(rev, p)
				rev = append(rev, v+1, v)

				next = append(next, fwd, rev)
			}
		}
		partials = next
	}

	out := make([]Combination, len(partials))
	for i, p := range partials {
		c := make(Combination, len(p), len(p)+1)
		copy(c, p)
		out[i] = append(c, 2*k-1)
	}

	if err := selfCheck(out, k); err != nil {
		return nil, err
	}

	return out, nil
}

// selfCheck validates a built catalog against its structural invariants:
// expected cardinality, and for every entry: length 2k, starts at 0, ends
// at 2k-1, and is a permutation of [0, 2k) (which subsumes "every odd
// bound 1..2k-3 appears exactly once" and "every even bound 2..2k-2
// appears exactly once", since a permutation of the full range with fixed
// endpoints forces exactly that).
func selfCheck(catalog []Combination, k int) error {
	want := expectedCardinality(k)
	if len(catalog) != want {
		return ErrInternalInvariantViolation
	}

	n := 2 * k
	for _, c := range catalog {
		if len(c) != n {
			return ErrInternalInvariantViolation
		}
		if c[0] != 0 || c[n-1] != n-1 {
			return ErrInternalInvariantViolation
		}
		seen := make([]bool, n)
		for _, x := range c {
			if x < 0 || x >= n || seen[x] {
				return ErrInternalInvariantViolation
			}
			seen[x] = true
		}
	}

	return nil
}

// expectedCardinality returns 2^(k-1) * (k-1)! = prod_{i=1}^{k-1} 2(k-i).
func expectedCardinality(k int) int {
	total := 1
	for i := 1; i <= k-1; i++ {
		total *= 2 * (k - i)
	}

	return total
}

// isPure reports whether every new edge of C differs from the original
// edge at the same position: |C[2i+1] - C[2i]| != 1 for all i in [0, k).
// The identity combination fails this test for every i (by construction
// every new edge equals the broken edge), so it is never present in the
// pure catalog — it is filtered out along with every other impure entry,
// not special-cased.
func isPure(c Combination, k int) bool {
	for i := 0; i < k; i++ {
		d := c[2*i+1] - c[2*i]
		if d == 1 || d == -1 {
			return false
		}
	}

	return true
}

// Process-wide catalog caches, lazily built on first use and kept for the
// lifetime of the process. Each is a distinct cache.Cache instance keyed by
// k; Pure's compute
// function calls back into Normalized for the same k, which is a call
// into a different Cache instance entirely, so there is no self-blocking
// to reason about.
var (
	normalizedOnce  sync.Once
	normalizedCache *cache.Cache[int, []Combination]

	pureOnce  sync.Once
	pureCache *cache.Cache[int, []Combination]
)

func normalizedCatalogCache() *cache.Cache[int, []Combination] {
	normalizedOnce.Do(func() {
		normalizedCache = cache.New[int, []Combination]()
	})

	return normalizedCache
}

func pureCatalogCache() *cache.Cache[int, []Combination] {
	pureOnce.Do(func() {
		pureCache = cache.New[int, []Combination]()
	})

	return pureCache
}

// Normalized returns the memoized normalized catalog for k: every
// canonical k-segment recombination, identity first. Safe for concurrent
// use; built at most once per k for the life of the process.
func Normalized(k int) ([]Combination, error) {
	if k < 2 {
		return nil, ErrInvalidParameter
	}

	return normalizedCatalogCache().Get(k, func() ([]Combination, error) {
		return buildNormalized(k)
	})
}

// Pure returns the memoized pure catalog for k: the subset of Normalized(k)
// whose every new edge differs from the original edge at the same
// position. No caller in this module consults it: kopt's Improver, and so
// every stage of the incremental Driver, scans Normalized(k).
func Pure(k int) ([]Combination, error) {
	if k < 2 {
		return nil, ErrInvalidParameter
	}

	return pureCatalogCache().Get(k, func() ([]Combination, error) {
		norm, err := Normalized(k)
		if err != nil {
			return nil, err
		}

		out := make([]Combination, 0, len(norm))
		for _, c := range norm {
			if isPure(c, k) {
				out = append(out, c)
			}
		}

		return out, nil
	})
}
