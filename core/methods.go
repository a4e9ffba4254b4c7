package core

// Neighbors returns v's neighbor list, one entry per incident edge (so a
// vertex joined by k parallel edges appears k times). The returned slice
// aliases internal storage and must be treated as read-only.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	return g.neighbors[v]
}

// Degree returns the number of edges incident to v, counting multiplicity.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	return len(g.neighbors[v])
}

// EdgeCount returns m = (Σ deg(i)) / 2. Valid only after Validate.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// AdjacencyMatrix returns the cached adjacency-count matrix, A[i][j] being
// the number of edges between i and j (A[i][i] == 0 always). Valid only
// after Validate; the returned slices alias internal storage.
//
// Complexity: O(1).
func (g *Graph) AdjacencyMatrix() [][]int {
	return g.matrix
}

// IsSimple reports whether every entry of the adjacency matrix is 0 or 1,
// i.e. the graph has no parallel edges. Valid only after Validate.
//
// Complexity: O(n^2).
func (g *Graph) IsSimple() bool {
	for _, row := range g.matrix {
		for _, c := range row {
			if c > 1 {
				return false
			}
		}
	}

	return true
}

// Components returns the connected components computed by Validate, each a
// sorted slice of vertex IDs. Valid only after Validate.
func (g *Graph) Components() [][]int {
	return g.components
}

// IsConnected reports whether the graph has at most one connected
// component. Valid only after Validate.
func (g *Graph) IsConnected() bool {
	return len(g.components) <= 1
}

// Validated reports whether Validate has succeeded on this Graph.
func (g *Graph) Validated() bool {
	return g.validated
}
