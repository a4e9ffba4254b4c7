package reduce

import (
	"github.com/gonality-tools/dgon/burn"
	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/divisor"
	"github.com/gonality-tools/dgon/internal/fatal"
)

// Context owns the scratch state shared by Reduce, IsReduced, IsReducedAny
// and HasPositiveRank: a burn.Context, a working divisor buffer, and the
// can-reach flags used by HasPositiveRank. Not safe for concurrent use.
type Context struct {
	n        int
	burn     *burn.Context
	working  divisor.Divisor
	canReach []bool
}

// NewContext allocates a Context sized for graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:        n,
		burn:     burn.NewContext(n),
		working:  divisor.New(n),
		canReach: make([]bool, n),
	}
}

func (c *Context) checkSize(d divisor.Divisor) {
	fatal.Check(len(d) == c.n, "reduce: divisor has length %d, want %d", len(d), c.n)
}

// Reduce returns the unique v-reduced divisor linearly equivalent to d,
// where v is target. d is not modified; the result is a fresh copy.
//
// Complexity: bounded by the number of firing rounds until Burn returns the
// empty set, each round O(n + m). This always terminates for an effective
// starting divisor: every firing round strictly decreases the chips at
// target's neighborhood or the process has already reached a fixed point,
// so the loop cannot run forever.
func (c *Context) Reduce(g *core.Graph, d divisor.Divisor, target int) divisor.Divisor {
	result, _ := c.reduce(g, d, target, false)

	return result
}

// ReduceWithScript is Reduce plus the firing script: script[v] is the
// number of times v was fired during reduction (script[target] == 0
// always). The returned script is a fresh slice.
func (c *Context) ReduceWithScript(g *core.Graph, d divisor.Divisor, target int) (divisor.Divisor, []int) {
	return c.reduce(g, d, target, true)
}

func (c *Context) reduce(g *core.Graph, d divisor.Divisor, target int, withScript bool) (divisor.Divisor, []int) {
	c.checkSize(d)
	fatal.Check(target >= 0 && target < c.n, "reduce: target %d out of range", target)

	copy(c.working, d)

	var script []int
	if withScript {
		script = make([]int, c.n)
	}

	for {
		f := c.burn.Burn(g, c.working, target)
		if len(f) == 0 {
			break
		}
		c.working.Fire(g.Neighbors, f, script)
	}

	return c.working.Clone(), script
}

// IsReduced reports whether d is already v-reduced at target, i.e. whether
// Burn(g, d, target) returns the empty firing set.
func (c *Context) IsReduced(g *core.Graph, d divisor.Divisor, target int) bool {
	c.checkSize(d)
	fatal.Check(target >= 0 && target < c.n, "reduce: target %d out of range", target)

	return len(c.burn.Burn(g, d, target)) == 0
}

// IsReducedAny reports whether d is v-reduced for at least one vertex v.
// This is a debugging helper, never called from the search hot path.
func (c *Context) IsReducedAny(g *core.Graph, d divisor.Divisor) bool {
	c.checkSize(d)
	for v := 0; v < c.n; v++ {
		if c.IsReduced(g, d, v) {
			return true
		}
	}

	return false
}

// HasPositiveRank reports whether d has positive rank: for every vertex u,
// some effective divisor linearly equivalent to d places a chip on u.
//
// The can-reach memoization means each vertex triggers at most one
// burn/fire sequence across the whole u-loop, not one per u that doesn't
// yet have a chip; this is what keeps the predicate affordable inside the
// search engine's leaf test, which calls it at every accepted candidate.
//
// Complexity: O(n) burn calls in the worst case, each O(n + m).
func (c *Context) HasPositiveRank(g *core.Graph, d divisor.Divisor) bool {
	c.checkSize(d)

	copy(c.working, d)
	for v := 0; v < c.n; v++ {
		c.canReach[v] = c.working[v] > 0
	}

	for u := 0; u < c.n; u++ {
		for !c.canReach[u] {
			f := c.burn.Burn(g, c.working, u)
			if len(f) == 0 {
				return false
			}
			c.working.Fire(g.Neighbors, f, nil)
			for v := 0; v < c.n; v++ {
				if c.working[v] > 0 {
					c.canReach[v] = true
				}
			}
		}
	}

	return true
}
