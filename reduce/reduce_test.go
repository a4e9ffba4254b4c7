package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/divisor"
	"github.com/gonality-tools/dgon/reduce"
)

func k4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Validate())

	return g
}

func cycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	require.NoError(t, g.Validate())

	return g
}

func TestReduce_Idempotent(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(4)

	d := divisor.Divisor{0, 0, 0, 6}
	once := ctx.Reduce(g, d, 0)
	twice := ctx.Reduce(g, once, 0)

	assert.Equal(t, once, twice)
}

func TestReduce_Canonicalizes_LinearlyEquivalentDivisors(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(4)

	d1 := divisor.Divisor{0, 0, 0, 6}
	// d2 is d1 after firing {3} once by hand: vertex 3 has degree 3.
	d2 := divisor.Divisor{1, 1, 1, 3}

	r1 := ctx.Reduce(g, d1, 0)
	r2 := ctx.Reduce(g, d2, 0)
	assert.Equal(t, r1, r2)
}

func TestReduce_PreservesDegree(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(4)

	d := divisor.Divisor{0, 0, 0, 6}
	r := ctx.Reduce(g, d, 0)
	assert.Equal(t, d.Degree(), r.Degree())
	assert.True(t, r.IsEffective())
}

func TestIsReduced_MatchesBurn(t *testing.T) {
	g := cycle(t, 4)
	ctx := reduce.NewContext(4)

	assert.True(t, ctx.IsReduced(g, divisor.Divisor{2, 0, 0, 0}, 0))
	assert.False(t, ctx.IsReduced(g, divisor.Divisor{0, 1, 0, 1}, 0))
}

// TestHasPositiveRank_Scenarios covers the boundary cases for the
// positive-rank test: a genuine K4 witness, one chip short of a witness,
// a higher-degree divisor that must stay positive-rank once a smaller one
// already is, and a degree-1 witness on a path graph.
func TestHasPositiveRank_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *core.Graph
		d     divisor.Divisor
		want  bool
	}{
		{
			name:  "K4 witness",
			build: k4,
			d:     divisor.Divisor{1, 1, 1, 0},
			want:  true,
		},
		{
			name:  "K4 too few chips",
			build: k4,
			d:     divisor.Divisor{1, 1, 0, 0},
			want:  false,
		},
		{
			name:  "K4 one extra chip stays positive rank",
			build: k4,
			d:     divisor.Divisor{1, 1, 1, 1},
			want:  true,
		},
		{
			name: "path5 degree-1 witness",
			build: func(t *testing.T) *core.Graph {
				g, err := core.NewGraph(5)
				require.NoError(t, err)
				for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}} {
					require.NoError(t, g.AddEdge(e[0], e[1]))
				}
				require.NoError(t, g.Validate())

				return g
			},
			d:    divisor.Divisor{1, 0, 0, 0, 0},
			want: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(t)
			ctx := reduce.NewContext(g.N())

			assert.Equal(t, tc.want, ctx.HasPositiveRank(g, tc.d))
		})
	}
}
