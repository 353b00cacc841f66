package combcat

import "errors"

var (
	// ErrInvalidParameter is returned for k < 2.
	ErrInvalidParameter = errors.New("combcat: k must be >= 2")

	// ErrInternalInvariantViolation is returned when a built catalog fails
	// its own self-check (expected cardinality, entry length, or bound
	// membership). This should never happen for correct construction code;
	// it exists so a future regression fails loudly instead of silently
	// feeding the k-opt improver a malformed neighborhood.
	ErrInternalInvariantViolation = errors.New("combcat: internal invariant violation")
)
