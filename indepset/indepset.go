package indepset

import (
	"math/rand"

	"github.com/gonality-tools/dgon/core"
)

// BoppanaHalldorsson returns an independent set of g found by trials random
// greedy passes, keeping the largest set seen. Each trial draws a fresh
// vertex ordering from a stream derived from rng, so results are
// deterministic for a fixed rng seed regardless of trials.
//
// A single pass walks the ordering left to right and keeps a vertex
// whenever none of its already-kept neighbors is in the running set; this
// is the "Clique Removal" greedy step applied to the complement graph,
// specialized to work directly against g's adjacency.
func BoppanaHalldorsson(g *core.Graph, rng *rand.Rand, trials int) []int {
	n := g.N()
	if n == 0 {
		return nil
	}
	if trials < 1 {
		trials = 1
	}

	best := greedyPass(g, permRange(n, rng))
	for t := 1; t < trials; t++ {
		cand := greedyPass(g, permRange(n, DeriveRNG(rng, uint64(t))))
		if len(cand) > len(best) {
			best = cand
		}
	}

	return best
}

// greedyPass walks order and keeps vertex v whenever no neighbor of v has
// already been kept, returning the kept vertices in increasing numeric
// order (not visitation order).
func greedyPass(g *core.Graph, order []int) []int {
	n := g.N()
	kept := make([]bool, n)
	for _, v := range order {
		blocked := false
		for _, w := range g.Neighbors(v) {
			if kept[w] {
				blocked = true
				break
			}
		}
		if !blocked {
			kept[v] = true
		}
	}

	set := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if kept[v] {
			set = append(set, v)
		}
	}

	return set
}
