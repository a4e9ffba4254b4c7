package core

import "errors"

// Sentinel errors for core graph construction and validation.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge was added from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrAsymmetricAdjacency indicates an internal invariant violation: an
	// edge recorded at i has no matching entry at j. This can only happen
	// through misuse of the unexported mutation path and signals a bug.
	ErrAsymmetricAdjacency = errors.New("core: asymmetric adjacency detected")

	// ErrNotSimple indicates a multigraph where a simple graph is required.
	// No function in this package returns it: IsSimple reports a bool, and
	// graph6 encoding returns its own graph6.ErrNotSimple.
	ErrNotSimple = errors.New("core: graph is not simple")

	// ErrDisconnected indicates Validate was asked to require connectivity
	// (RequireConnected) and the graph has more than one component.
	ErrDisconnected = errors.New("core: graph is not connected")

	// ErrAlreadyValidated indicates AddEdge was called after Validate.
	ErrAlreadyValidated = errors.New("core: graph is already validated; construction is closed")
)
