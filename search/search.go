package search

import (
	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/divisor"
	"github.com/gonality-tools/dgon/internal/fatal"
	"github.com/gonality-tools/dgon/reduce"
)

// Context owns the scratch state for FindPositiveRankDivisor,
// FindAllPositiveRankV0ReducedDivisors and FindGonality: the reduce.Context
// used for the v0-reducedness and positive-rank checks, and the partial
// divisor buffer the recursion fills in. Not safe for concurrent use; give
// each goroutine its own, as cmd/brill_noether_geng's worker pool does.
type Context struct {
	n       int
	reduce  *reduce.Context
	partial divisor.Divisor
}

// NewContext allocates a Context sized for graphs on n vertices.
func NewContext(n int) *Context {
	return &Context{
		n:       n,
		reduce:  reduce.NewContext(n),
		partial: divisor.New(n),
	}
}

// FindPositiveRankDivisor reports whether some effective, degree-d,
// positive-rank divisor exists on g, returning a witness on success.
//
// Complexity: exponential in n and d by construction; this is a brute-force
// search, not a polynomial algorithm. No polynomial-time algorithm for
// divisorial gonality is known, so there is nothing faster to fall back to.
func (c *Context) FindPositiveRankDivisor(g *core.Graph, d int) (divisor.Divisor, bool) {
	fatal.Check(g.N() == c.n, "search: graph has %d vertices, context sized for %d", g.N(), c.n)
	fatal.Check(d >= 0, "search: degree %d is negative", d)

	if c.n == 0 {
		return nil, false
	}

	var found divisor.Divisor
	c.enumerate(g, d, func(cand divisor.Divisor) error {
		found = cand.Clone()

		return ErrStopEnumeration
	})

	return found, found != nil
}

// FindAllPositiveRankV0ReducedDivisors invokes callback once for every
// effective, degree-d, v0-reduced, positive-rank divisor on g, in the order
// the recursion discovers them (largest chip counts at low-index vertices
// first). callback may read but must not mutate its argument, which aliases
// the Context's partial-divisor buffer and is invalidated by the next
// callback invocation.
//
// If callback returns ErrStopEnumeration, enumeration stops and
// FindAllPositiveRankV0ReducedDivisors returns nil. Any other non-nil error
// from callback aborts enumeration and is returned as-is.
func (c *Context) FindAllPositiveRankV0ReducedDivisors(g *core.Graph, d int, callback func(divisor.Divisor) error) error {
	fatal.Check(g.N() == c.n, "search: graph has %d vertices, context sized for %d", g.N(), c.n)
	fatal.Check(d >= 0, "search: degree %d is negative", d)

	if c.n == 0 {
		return nil
	}

	err := c.enumerate(g, d, callback)
	if err == ErrStopEnumeration {
		return nil
	}

	return err
}

// enumerate runs the depth-first recursion and reports the first non-nil
// error returned by callback (including ErrStopEnumeration, which callers
// translate back to "stopped, not failed" as appropriate).
func (c *Context) enumerate(g *core.Graph, d int, callback func(divisor.Divisor) error) error {
	return c.search(g, 0, d, callback)
}

// search fills c.partial[pos:] with every way to spend the remaining
// budget, largest-first, and runs the acceptance predicate at each leaf.
func (c *Context) search(g *core.Graph, pos, remaining int, callback func(divisor.Divisor) error) error {
	if pos == c.n {
		return c.acceptLeaf(g, remaining, callback)
	}

	min := 0
	if pos == 0 {
		min = 1
	}
	for count := remaining; count >= min; count-- {
		c.partial[pos] = count
		if err := c.search(g, pos+1, remaining-count, callback); err != nil {
			return err
		}
	}
	c.partial[pos] = 0 // leave a clean buffer for the caller

	return nil
}

// acceptLeaf runs the four-test acceptance predicate, short-circuiting on
// the first failure, and invokes callback only if all four pass.
func (c *Context) acceptLeaf(g *core.Graph, remaining int, callback func(divisor.Divisor) error) error {
	if remaining != 0 {
		return nil
	}
	if c.partial[0] < 1 {
		return nil
	}
	if !c.reduce.IsReduced(g, c.partial, 0) {
		return nil
	}
	if !c.reduce.HasPositiveRank(g, c.partial) {
		return nil
	}

	return callback(c.partial)
}

// FindGonality returns the smallest d >= 1 for which an effective,
// positive-rank divisor of degree d exists on g, plus a witness. The outer
// loop is guaranteed to terminate by d == g.N() (every graph has gonality
// at most n).
func (c *Context) FindGonality(g *core.Graph) (int, divisor.Divisor) {
	fatal.Check(g.N() == c.n, "search: graph has %d vertices, context sized for %d", g.N(), c.n)
	fatal.Check(c.n > 0, "search: FindGonality requires at least one vertex")

	for d := 1; d <= c.n; d++ {
		if witness, ok := c.FindPositiveRankDivisor(g, d); ok {
			return d, witness
		}
	}

	// Unreachable for a connected graph: the all-ones divisor has positive
	// rank, and its v0-reduced form (degree n, at least one chip on v0) is
	// accepted at d == n at the latest.
	fatal.Fatalf("search: no positive-rank divisor found up to degree %d", c.n)

	return 0, nil
}
