// Package graph6 encodes and decodes the nauty/gtools graph6 format: a
// compact ASCII representation of a simple undirected graph's upper
// triangular adjacency matrix, packed six bits at a time into bytes offset
// by 63 (the printable-ASCII convention the nauty suite uses).
//
// graph6 has no representation for parallel edges, so Encode rejects
// multigraphs outright (ErrNotSimple); Decode always produces a simple
// graph by construction.
package graph6
