package bigraph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrIndexOutOfRange is returned by [Graph.AddEdge] and [Graph.HasEdge]
	// when a node index is negative or not smaller than the total node count.
	ErrIndexOutOfRange = errors.New("node index out of range")

	// ErrInvalidOrdering is returned by the crossing counters when the
	// supplied ordering is not a permutation of the free-layer index range:
	// wrong length, duplicate entries, or entries outside the free range.
	ErrInvalidOrdering = errors.New("invalid free-layer ordering")
)
