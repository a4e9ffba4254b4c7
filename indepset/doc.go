// Package indepset implements a randomized approximation to the maximum
// independent set problem, used by cmd/brill_noether_geng as a cheap
// upper-bound certificate for gonality: for an independent set S in g, the
// divisor that is 1 on every vertex outside S and 0 on S has positive rank
// and degree n - |S|, so dgon(g) <= n - |S| + 1.
//
// The algorithm is a simplified Boppana-Halldorsson "Clique Removal":
// repeatedly take a random vertex ordering, greedily grow an independent
// set by walking the ordering and keeping any vertex with no neighbor
// already kept, and retain the largest set seen over a bounded number of
// trials. It gives no approximation guarantee tighter than the trivial
// one; it exists to produce a cheap divisor, not to solve max independent
// set well.
package indepset
