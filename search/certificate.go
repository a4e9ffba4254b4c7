package search

import "github.com/gonality-tools/dgon/divisor"

// CertificateDivisor builds the divisor that is 1 on every vertex not in
// independentSet and 0 on independentSet. When independentSet is an
// independent set of g, this divisor has positive rank and degree
// n - len(independentSet), giving a cheap upper bound on gonality without
// running the full search (see cmd/brill_noether_geng).
func CertificateDivisor(n int, independentSet []int) divisor.Divisor {
	d := divisor.New(n)
	for v := range d {
		d[v] = 1
	}
	for _, v := range independentSet {
		d[v] = 0
	}

	return d
}
