// Package divisor defines the integer chip-count vector shared by the
// burning, reduction and search engines, plus the handful of pure
// operations (degree, effectiveness, firing) that do not need a work
// context of their own.
package divisor

// Divisor is an integer function on the vertex set 0..n-1: Divisor[v] is
// the chip count at vertex v. It may go negative as working state inside
// the reduction engine; an Effective Divisor never does.
type Divisor []int

// New returns a zero Divisor over n vertices.
func New(n int) Divisor {
	return make(Divisor, n)
}

// Clone returns an independent copy of d.
func (d Divisor) Clone() Divisor {
	out := make(Divisor, len(d))
	copy(out, d)

	return out
}

// Degree returns Σ d[v].
func (d Divisor) Degree() int {
	total := 0
	for _, c := range d {
		total += c
	}

	return total
}

// IsEffective reports whether every entry of d is non-negative.
func (d Divisor) IsEffective() bool {
	for _, c := range d {
		if c < 0 {
			return false
		}
	}

	return true
}

// Fire fires every vertex in set simultaneously against neighbors: for each
// v in set, for each neighbor w of v (with multiplicity), d[v] -= 1 and
// d[w] += 1. Firing one neighbor entry at a time rather than subtracting
// deg(v) in one step is what makes parallel edges count correctly: a vertex
// joined to v by two parallel edges receives two chips, one per entry in
// v's neighbor list.
//
// script, if non-nil, is incremented once per fired vertex (script[v]++ for
// each v in set); it must be sized len(d) and is otherwise left untouched.
func (d Divisor) Fire(neighbors func(v int) []int, set []int, script []int) {
	for _, v := range set {
		for _, w := range neighbors(v) {
			d[v]--
			d[w]++
		}
		if script != nil {
			script[v]++
		}
	}
}
