// Package dgon is a divisorial gonality engine for finite multigraphs.
//
// dgon computes the divisorial gonality of a graph via Dhar's burning
// algorithm, v-reduced divisors, and a brute-force positive-rank search,
// and uses that machinery to probe two open questions: the subdivision
// conjecture (does gonality survive k-regular subdivision?) and the
// Brill-Noether bound for random graphs generated by nauty's geng.
//
// The engine lives in flat top-level packages:
//
//	core/      — the int-vertex multigraph model and its validation
//	divisor/   — integer-valued divisors and the firing operation
//	burn/      — Dhar's burning algorithm
//	reduce/    — v-reduced divisors, linear equivalence, positive rank
//	search/    — brute-force gonality search and divisor enumeration
//	plaintext/ — the "name; n m; edges" text graph format
//	graph6/    — the nauty/gtools graph6 byte encoding
//	subdivide/ — k-regular edge subdivision
//	indepset/  — a randomized independent-set approximation
//
// and five CLI entry points under cmd/: find_gonality,
// subdivision_conjecture, convert_to_graph6, convert_from_graph6, and
// Brill_Noether_geng.
package dgon
