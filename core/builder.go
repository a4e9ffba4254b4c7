package core

// AddEdge records an undirected edge between i and j, once at i's neighbor
// list and once at j's. Parallel edges are permitted (each call appends a
// fresh pair of entries); self-loops are rejected.
//
// AddEdge may only be called before Validate; calling it afterwards returns
// ErrAlreadyValidated, since the graph is meant to be read-only from that
// point on.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.validated {
		return ErrAlreadyValidated
	}
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return ErrVertexOutOfRange
	}
	if i == j {
		return ErrSelfLoop
	}

	g.neighbors[i] = append(g.neighbors[i], j)
	g.neighbors[j] = append(g.neighbors[j], i)

	return nil
}
