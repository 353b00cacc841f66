package graph

import "errors"

// Sentinel errors for the graph package. Kept minimal and strict: plain
// sentinel values rather than fmt.Errorf wrapping wherever a sentinel
// suffices.
var (
	// ErrNonSquare indicates the backing weight matrix is not square.
	ErrNonSquare = errors.New("graph: weight matrix is not square")

	// ErrDimensionMismatch indicates a malformed or empty shape.
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrIndexOutOfRange indicates a vertex index outside [0, NumVertices).
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")
)
