// Package graph defines the minimal surface the k-opt solver needs from a
// caller-supplied graph: vertex count, stable vertex iteration, edge-weight
// lookup, and a builder that turns a vertex sequence into a GraphPath.
//
// This is intentionally not a general-purpose graph ADT. Directed graphs,
// multi-edges, loops, and incomplete adjacency are out of scope here; the
// solver only ever consumes an undirected complete weighted graph with
// non-negative edge weights (see Dense, which is the reference
// implementation and the one every test in this module builds against).
package graph
