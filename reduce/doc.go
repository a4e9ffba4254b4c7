// Package reduce implements the v-reduced canonicalization of a divisor
// (repeated Dhar burning + firing until nothing more can fire) and the two
// predicates built on top of it that the search engine relies on:
// IsReduced and HasPositiveRank.
//
// Every exported entry point takes a *Context so that repeated calls across
// many candidate divisors — the search engine's whole job — reuse their
// scratch buffers (the burn.Context, the working divisor copy, the
// can-reach flags) instead of allocating fresh ones per call.
package reduce
