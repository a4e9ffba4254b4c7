package core

import "sync"

// Graph is an immutable-after-Validate undirected multigraph on the dense
// vertex set 0..n-1. Edges are stored as per-vertex neighbor slices (with
// repetition for parallel edges); self-loops are rejected at AddEdge time.
//
// Construction (NewGraph + AddEdge) happens once, guarded by mu. Validate
// freezes the graph: it checks the construction invariants, derives the
// adjacency-count matrix, and flips validated to true. Every read method
// below is safe to call concurrently once validated, since nothing mutates
// the graph after that point; mu is only ever contended during construction.
type Graph struct {
	mu sync.Mutex

	n         int     // number of vertices, labeled 0..n-1
	neighbors [][]int // neighbors[v] lists v's neighbors, one entry per incident edge

	validated  bool
	matrix     [][]int // adjacency-count matrix cache, populated by Validate
	edgeCount  int     // m = (Σ deg(i)) / 2, populated by Validate
	components [][]int // connected components (vertex IDs), populated by Validate
}

// NewGraph allocates an empty Graph on n vertices (no edges yet).
// Returns ErrNegativeVertexCount if n < 0.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	return &Graph{
		n:         n,
		neighbors: make([][]int, n),
	}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }
