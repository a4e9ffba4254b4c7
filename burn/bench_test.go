package burn_test

import (
	"testing"

	"github.com/gonality-tools/dgon/burn"
	"github.com/gonality-tools/dgon/core"
)

// benchSink defeats dead-code elimination of the benchmarked call's result.
var benchSink []int

// BenchmarkBurn_Cycle1000 measures Burn on a 1000-vertex cycle with a
// divisor that burns every non-start vertex, exercising the full BFS
// sweep each call.
//
// Complexity: O(n) per call.
func BenchmarkBurn_Cycle1000(b *testing.B) {
	const n = 1000
	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			b.Fatal(err)
		}
	}
	if err := g.Validate(); err != nil {
		b.Fatal(err)
	}

	d := make([]int, n) // all zero: every neighbor's single incoming edge exceeds its chip count
	ctx := burn.NewContext(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = ctx.Burn(g, d, 0)
	}
}
