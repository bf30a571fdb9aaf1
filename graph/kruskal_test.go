package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/disjointset"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSpanningTree checks len == |V|-1, no cycles, and full coverage.
func assertSpanningTree(t *testing.T, vs []string, tree []edge) {
	t.Helper()
	require.Len(t, tree, len(vs)-1)
	f := disjointset.New[string]()
	for _, v := range vs {
		require.NoError(t, f.MakeSet(v))
	}
	for _, te := range tree {
		require.NoError(t, f.Union(te.From, te.To), "cycle through %v", te)
	}
	assert.Equal(t, 1, f.Count())
}

// bruteForceMST enumerates every (|V|-1)-subset of edges and returns the lightest spanning tree weight.
func bruteForceMST(vs []string, es []edge) float64 {
	best := math.Inf(1)
	k := len(vs) - 1
	var pick func(start int, chosen []edge)
	pick = func(start int, chosen []edge) {
		if len(chosen) == k {
			f := disjointset.New[string]()
			for _, v := range vs {
				_ = f.MakeSet(v)
			}
			for _, c := range chosen {
				if f.Union(c.From, c.To) != nil {
					return
				}
			}
			if w := graph.TotalWeight(chosen); w < best {
				best = w
			}
			return
		}
		for i := start; i < len(es); i++ {
			pick(i+1, append(chosen, es[i]))
		}
	}
	pick(0, nil)

	return best
}

// TestMST_Triangle pins the A-B-C scenario: {A-B, B-C}, total 3.
func TestMST_Triangle(t *testing.T) {
	g, edges := buildTriangle(t)
	tree, total, err := g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.ElementsMatch(t, []edge{edges[0], edges[1]}, tree)
}

// TestMST_Trivial covers empty and single-vertex graphs.
func TestMST_Trivial(t *testing.T) {
	g, err := graph.New[string, edge](nil, nil)
	require.NoError(t, err)
	tree, total, err := g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	g, err = graph.New([]string{"X"}, []edge{e("X", "X", 4)})
	require.NoError(t, err)
	tree, total, err = g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

// TestMST_Disconnected verifies ErrDisconnected (an ErrNoPathExists) instead of looping.
func TestMST_Disconnected(t *testing.T) {
	g, err := graph.New([]string{"A", "B", "C", "D"}, []edge{e("A", "B", 1), e("C", "D", 1), e("A", "A", 0)})
	require.NoError(t, err)
	_, _, err = g.MinimumSpanningTree()
	assert.ErrorIs(t, err, graph.ErrDisconnected)
	assert.ErrorIs(t, err, graph.ErrNoPathExists)

	g, err = graph.New[string, edge]([]string{"A", "B"}, nil)
	require.NoError(t, err)
	_, _, err = g.MinimumSpanningTree()
	assert.ErrorIs(t, err, graph.ErrDisconnected)
}

// TestMST_ParallelEdges picks the lighter of two parallel edges and ignores self-loops.
func TestMST_ParallelEdges(t *testing.T) {
	heavy := edge{ID: "heavy", From: "A", To: "B", Cost: 5}
	light := edge{ID: "light", From: "B", To: "A", Cost: 1}
	g, err := graph.New([]string{"A", "B"}, []edge{heavy, e("A", "A", 0), light})
	require.NoError(t, err)
	tree, total, err := g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Equal(t, []edge{light}, tree)
	assert.Equal(t, 1.0, total)
}

// TestMST_MatchesBruteForce compares against exhaustive search on small random graphs.
func TestMST_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(5)
		vs, es := randomConnected(r, n, r.Intn(6))
		g, err := graph.New(vs, es)
		require.NoError(t, err)

		tree, total, err := g.MinimumSpanningTree()
		require.NoError(t, err)
		assertSpanningTree(t, vs, tree)
		assert.Equal(t, graph.TotalWeight(tree), total)
		assert.Equal(t, bruteForceMST(vs, es), total, "round %d", round)
	}
}

// TestMST_LeavesWeightsUntouched reads weights before and after the query.
func TestMST_LeavesWeightsUntouched(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	vs, es := randomConnected(r, 30, 60)
	g, err := graph.New(vs, es)
	require.NoError(t, err)

	before := g.Edges()
	_, _, err = g.MinimumSpanningTree()
	require.NoError(t, err)
	_, _, err = g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, es, g.Edges())
}
