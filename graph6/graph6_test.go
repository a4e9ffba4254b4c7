package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/graph6"
)

func buildSimple(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Validate())

	return g
}

func TestRoundTrip_K4(t *testing.T) {
	g := buildSimple(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})

	s, err := graph6.Encode(g)
	require.NoError(t, err)

	g2, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, g.AdjacencyMatrix(), g2.AdjacencyMatrix())
}

func TestRoundTrip_EmptyGraphOnFourVertices(t *testing.T) {
	g := buildSimple(t, 4, nil)

	s, err := graph6.Encode(g)
	require.NoError(t, err)

	g2, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 0, g2.EdgeCount())
	assert.Equal(t, 4, g2.N())
}

func TestDecode_KnownString_K3(t *testing.T) {
	// K3: n=3 -> byte 3+63='B'; upper-triangle bits (0,1),(0,2),(1,2) all 1, padded to 111000 = 0x38 = 56 -> byte 56+63=119='w'.
	g, err := graph6.Decode("Bw")
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestEncode_RejectsMultigraph(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.Validate())

	_, err = graph6.Encode(g)
	assert.ErrorIs(t, err, graph6.ErrNotSimple)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := graph6.Decode("")
	assert.ErrorIs(t, err, graph6.ErrMalformed)
}

func TestRoundTrip_LargerThan62Vertices(t *testing.T) {
	n := 70
	var edges [][2]int
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildSimple(t, n, edges)

	s, err := graph6.Encode(g)
	require.NoError(t, err)

	g2, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, g.AdjacencyMatrix(), g2.AdjacencyMatrix())
}
