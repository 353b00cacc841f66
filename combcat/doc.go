// Package combcat builds the combination catalogs the k-opt improver
// consults once per cut-index vector: for a segment count k, every
// canonical way to cut a closed tour into k segments and splice them back
// together (reordering and per-segment reversal), encoded as 2k-length
// index sequences over the segment-bound vertex map B.
//
// Two catalogs exist per k:
//   - Normalized: every canonical recombination, identity first.
//   - Pure: the subset whose every new edge differs from the original
//     edge at the same position. The kopt improver and its incremental
//     driver scan Normalized, not Pure.
//
// Construction cost grows super-exponentially in k (|Normalized(k)| =
// 2^(k-1)*(k-1)!), so both catalogs are memoized process-wide through the
// cache package, keyed by k. Catalogs are immutable once built and safe to
// share across every solver instance and goroutine.
package combcat
