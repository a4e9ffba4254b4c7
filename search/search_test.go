package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/divisor"
	"github.com/gonality-tools/dgon/reduce"
	"github.com/gonality-tools/dgon/search"
)

func graphFromEdges(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Validate(core.RequireConnected()))

	return g
}

func completeGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return graphFromEdges(t, n, edges)
}

func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return graphFromEdges(t, n, edges)
}

func cycleGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return graphFromEdges(t, n, edges)
}

func completeBipartite(t *testing.T, p, q int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			edges = append(edges, [2]int{i, p + j})
		}
	}

	return graphFromEdges(t, p+q, edges)
}

func petersenGraph(t *testing.T) *core.Graph {
	t.Helper()
	// Outer 5-cycle 0..4, inner pentagram 5..9, spokes i -- i+5.
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 5})
		edges = append(edges, [2]int{i, i + 5})
		edges = append(edges, [2]int{5 + i, 5 + (i+2)%5})
	}

	return graphFromEdges(t, 10, edges)
}

// TestFindGonality_Scenarios covers the gonality values used throughout
// the literature as sanity checks: the complete graph K4, a path, a
// cycle, the complete bipartite graph K3,3, the Petersen graph, a single
// vertex, a star tree, and a 2-vertex multigraph with parallel edges.
func TestFindGonality_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		build   func(t *testing.T) *core.Graph
		n       int
		want    int
		witness divisor.Divisor // nil means "don't check the exact witness"
	}{
		{
			name:  "K4",
			build: func(t *testing.T) *core.Graph { return completeGraph(t, 4) },
			n:     4,
			want:  3,
		},
		{
			name:    "path5",
			build:   func(t *testing.T) *core.Graph { return pathGraph(t, 5) },
			n:       5,
			want:    1,
			witness: divisor.Divisor{1, 0, 0, 0, 0},
		},
		{
			name:  "cycle6",
			build: func(t *testing.T) *core.Graph { return cycleGraph(t, 6) },
			n:     6,
			want:  2,
		},
		{
			name:  "K3,3",
			build: func(t *testing.T) *core.Graph { return completeBipartite(t, 3, 3) },
			n:     6,
			want:  3,
		},
		{
			name:  "Petersen",
			build: petersenGraph,
			n:     10,
			want:  4,
		},
		{
			name: "single vertex",
			build: func(t *testing.T) *core.Graph {
				g, err := core.NewGraph(1)
				require.NoError(t, err)
				require.NoError(t, g.Validate())

				return g
			},
			n:    1,
			want: 1,
		},
		{
			name:  "star tree on 5 vertices",
			build: func(t *testing.T) *core.Graph { return graphFromEdges(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}) },
			n:     5,
			want:  1,
		},
		{
			name: "2-vertex multigraph with 5 parallel edges",
			build: func(t *testing.T) *core.Graph {
				g, err := core.NewGraph(2)
				require.NoError(t, err)
				for i := 0; i < 5; i++ {
					require.NoError(t, g.AddEdge(0, 1))
				}
				require.NoError(t, g.Validate(core.RequireConnected()))

				return g
			},
			n:    2,
			want: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			ctx := search.NewContext(tc.n)

			d, witness := ctx.FindGonality(g)
			assert.Equal(t, tc.want, d)
			assert.Equal(t, tc.want, witness.Degree())
			assert.True(t, witness.IsEffective())
			if tc.witness != nil {
				assert.Equal(t, tc.witness, witness)
			}
		})
	}
}

func TestFindPositiveRankDivisor_DegreeMonotone(t *testing.T) {
	g := completeGraph(t, 4)
	ctx := search.NewContext(4)

	_, ok2 := ctx.FindPositiveRankDivisor(g, 2)
	assert.False(t, ok2)

	for d := 3; d <= 4; d++ {
		_, ok := ctx.FindPositiveRankDivisor(g, d)
		assert.True(t, ok, "degree %d should succeed once degree 3 does", d)
	}
}

func TestFindAllPositiveRankV0ReducedDivisors_SoundAndComplete(t *testing.T) {
	g := completeGraph(t, 4)
	ctx := search.NewContext(4)

	var found []divisor.Divisor
	err := ctx.FindAllPositiveRankV0ReducedDivisors(g, 3, func(d divisor.Divisor) error {
		found = append(found, d.Clone())

		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, found)

	verify := reduce.NewContext(4)
	for _, d := range found {
		assert.Equal(t, 3, d.Degree())
		assert.GreaterOrEqual(t, d[0], 1)
		assert.True(t, verify.IsReduced(g, d, 0))
		assert.True(t, verify.HasPositiveRank(g, d))
	}
}

func TestFindAllPositiveRankV0ReducedDivisors_StopsEarly(t *testing.T) {
	g := completeGraph(t, 4)
	ctx := search.NewContext(4)

	calls := 0
	err := ctx.FindAllPositiveRankV0ReducedDivisors(g, 3, func(d divisor.Divisor) error {
		calls++

		return search.ErrStopEnumeration
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFindAllPositiveRankV0ReducedDivisors_PropagatesCallbackError(t *testing.T) {
	g := completeGraph(t, 4)
	ctx := search.NewContext(4)
	boom := errors.New("boom")

	err := ctx.FindAllPositiveRankV0ReducedDivisors(g, 3, func(d divisor.Divisor) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
