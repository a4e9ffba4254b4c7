// Package burn implements Dhar's burning algorithm: given a graph, a
// divisor, and a starting vertex, it finds the maximal set of vertices fire
// does not reach. An empty result certifies that the divisor is reduced at
// the starting vertex.
//
// Burn is the hottest inner loop in the whole engine (reduce calls it once
// per firing round, search's positive-rank test calls it up to n times per
// candidate divisor), so Context exists purely to let repeated calls reuse
// their scratch slices instead of allocating a fresh BFS queue and flag
// array every time.
package burn
