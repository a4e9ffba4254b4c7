// Package core provides the in-memory multigraph representation shared by
// every piece of the gonality engine: vertices are the dense integer range
// 0..n-1, edges may repeat between the same pair of vertices (multi-edges),
// and self-loops are forbidden.
//
// A Graph is built once via NewGraph + AddEdge, finalized with Validate,
// and is read-only for the rest of its lifetime: the burning, reduction and
// search engines never mutate a Graph, only the divisors they carry.
//
// Validate populates an adjacency-count matrix cache (A[i][j] = number of
// edges between i and j) as a side effect, so repeated AdjacencyMatrix()
// calls after validation are O(1).
package core
