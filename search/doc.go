// Package search enumerates effective divisors of a fixed degree that are
// v0-reduced and carries the resulting positive-rank test up into
// FindGonality's outer loop over increasing degree.
//
// The enumeration is a depth-first recursion over vertices 0..n-1 choosing
// each vertex's chip count from the remaining budget, largest value first.
// No subtree is pruned early: the tests below run only once every vertex
// has been assigned a chip count. A leaf is accepted
// only if, in this order: the full degree budget was
// spent, vertex 0 got at least one chip, the divisor is v0-reduced (cheap,
// via reduce.Context.IsReduced), and it has positive rank (expensive, via
// reduce.Context.HasPositiveRank) — the order matters, since 3 prunes away
// almost everything before 4 ever runs.
package search
