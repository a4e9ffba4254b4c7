// Package limits holds the engine's compile-time capacity constants:
// ceilings the ingestion layer enforces before a graph ever reaches the
// core, not algorithmic knobs.
package limits

const (
	// MaxVertices is the largest vertex count any ingester will accept.
	MaxVertices = 4096

	// MaxEdges is the largest edge count any ingester will accept.
	MaxEdges = 1 << 20

	// MaxSubdivisionFactor is the largest k accepted by subdivide.KRegular.
	MaxSubdivisionFactor = 1000
)
