// Package subdivide implements k-regular edge subdivision: replacing every
// edge with a path of k edges through k-1 fresh degree-2 vertices. It
// exists to support the subdivision conjecture (does dgon(G) equal
// dgon(subdivide(G,k)) for all k?) from both the find_gonality and
// subdivision_conjecture CLI tools.
package subdivide

import (
	"errors"
	"fmt"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/internal/limits"
)

// ErrSubdivisionFactorOutOfRange is returned when k falls outside
// [2, limits.MaxSubdivisionFactor].
var ErrSubdivisionFactorOutOfRange = errors.New("subdivide: k out of range")

// KRegular returns a new graph in which every edge of g has been replaced
// by a path of k edges through k-1 fresh degree-2 vertices. The original
// graph's vertices 0..g.N()-1 keep their indices; new vertices are
// appended afterward, in the order their edges were originally stored.
//
// Complexity: O(n + m*k).
func KRegular(g *core.Graph, k int) (*core.Graph, error) {
	if k < 2 || k > limits.MaxSubdivisionFactor {
		return nil, fmt.Errorf("%w: k=%d", ErrSubdivisionFactorOutOfRange, k)
	}

	n := g.N()
	m := g.EdgeCount()
	newN := n + m*(k-1)

	out, err := core.NewGraph(newN)
	if err != nil {
		return nil, fmt.Errorf("subdivide: %w", err)
	}

	next := n
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if j < i {
				continue // each undirected edge subdivided once, from its lower endpoint
			}
			if err := subdivideOneEdge(out, i, j, k, &next); err != nil {
				return nil, fmt.Errorf("subdivide: %w", err)
			}
		}
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("subdivide: %w", err)
	}

	return out, nil
}

// subdivideOneEdge adds the k-edge path replacing edge (i,j), allocating
// k-1 fresh vertices starting at *next and advancing it.
func subdivideOneEdge(out *core.Graph, i, j, k int, next *int) error {
	prev := i
	for step := 1; step < k; step++ {
		mid := *next
		*next++
		if err := out.AddEdge(prev, mid); err != nil {
			return err
		}
		prev = mid
	}

	return out.AddEdge(prev, j)
}
