package core

import "sort"

// ValidateOption configures Validate's strictness.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	requireConnected bool
}

// RequireConnected makes Validate fail with ErrDisconnected when the graph
// has more than one connected component (n == 0 counts as connected).
func RequireConnected() ValidateOption {
	return func(c *validateConfig) { c.requireConnected = true }
}

// Validate checks the graph's construction invariants, materializes the
// adjacency-count matrix and component list, and freezes the graph against
// further AddEdge calls. It must be called after all edges have been added
// and before the graph is handed to burn/reduce/search. Calling it again on
// an already validated graph re-runs the checks with the new options; the
// CLI tools do this to apply RequireConnected to graphs that graph6.Decode
// or subdivide.KRegular have already validated.
//
// Invariants checked:
//   - every neighbor index is in [0, n)
//   - no vertex lists itself as a neighbor
//   - every edge (i,j) recorded at i has a matching entry at j (and vice
//     versa), i.e. the same multiplicity on both sides
//
// A failure of these invariant checks means the Graph was built through a
// bug, not through bad user input (AddEdge already rejects bad input); the distinction matters
// because by this point the caller has no input to blame.
//
// Complexity: O(n + m).
func (g *Graph) Validate(opts ...ValidateOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	counts := make([]map[int]int, g.n)
	for i := 0; i < g.n; i++ {
		counts[i] = make(map[int]int, len(g.neighbors[i]))
		for _, j := range g.neighbors[i] {
			if j < 0 || j >= g.n {
				return ErrVertexOutOfRange
			}
			if j == i {
				return ErrSelfLoop
			}
			counts[i][j]++
		}
	}
	for i := 0; i < g.n; i++ {
		for j, c := range counts[i] {
			if counts[j][i] != c {
				return ErrAsymmetricAdjacency
			}
		}
	}

	matrix := make([][]int, g.n)
	edges := 0
	for i := 0; i < g.n; i++ {
		matrix[i] = make([]int, g.n)
		for j, c := range counts[i] {
			matrix[i][j] = c
			edges += c
		}
	}
	g.matrix = matrix
	g.edgeCount = edges / 2

	g.components = connectedComponents(g.n, g.neighbors)
	if cfg.requireConnected && len(g.components) > 1 {
		return ErrDisconnected
	}

	g.validated = true

	return nil
}

// connectedComponents returns the connected components of the graph as
// slices of vertex IDs, each sorted ascending, ordered by smallest member.
func connectedComponents(n int, neighbors [][]int) [][]int {
	seen := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		var component []int
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			for _, w := range neighbors[v] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(component)
		components = append(components, component)
	}

	return components
}
