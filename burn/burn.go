package burn

import "github.com/gonality-tools/dgon/core"

// Context owns the scratch buffers for repeated Burn calls against graphs
// of a fixed vertex count n: the burnt-edge counters, the burnt-vertex
// flags, and the BFS work queue. A Context is not safe for concurrent use;
// give each goroutine its own.
type Context struct {
	n          int
	burntEdges []int
	burnt      []bool
	queue      []int
	firingSet  []int // reused result buffer, overwritten by every Burn call
}

// NewContext allocates a Context sized for graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:          n,
		burntEdges: make([]int, n),
		burnt:      make([]bool, n),
		queue:      make([]int, 0, n),
		firingSet:  make([]int, 0, n),
	}
}

// Burn runs Dhar's algorithm from start against divisor d on g, and returns
// the set of vertices fire never reaches (the maximal legal firing set),
// ascending by vertex ID.
//
// The returned slice aliases Context-owned storage: it is only valid until
// the next call to Burn on the same Context. Callers that need to keep it
// (the search engine's accepted leaves, the reduction engine's final
// result) must copy it first.
//
// d[start] is never read: the starting vertex always burns regardless of
// its own chip count.
//
// Complexity: O(n + m).
func (c *Context) Burn(g *core.Graph, d divisorLike, start int) []int {
	for i := 0; i < c.n; i++ {
		c.burntEdges[i] = 0
		c.burnt[i] = false
	}
	c.queue = c.queue[:0]
	c.firingSet = c.firingSet[:0]

	c.burnt[start] = true
	c.queue = append(c.queue, start)

	for len(c.queue) > 0 {
		u := c.queue[0]
		c.queue = c.queue[1:]

		for _, v := range g.Neighbors(u) {
			c.burntEdges[v]++
			if !c.burnt[v] && c.burntEdges[v] > d[v] {
				c.burnt[v] = true
				c.queue = append(c.queue, v)
			}
		}
	}

	for v := 0; v < c.n; v++ {
		if !c.burnt[v] {
			c.firingSet = append(c.firingSet, v)
		}
	}

	return c.firingSet
}

// divisorLike is anything indexable like a []int, so this package does not
// need to import the divisor package just to read chip counts. The search
// and reduce packages pass their divisor.Divisor values here directly,
// since divisor.Divisor is defined as []int.
type divisorLike = []int
