package graph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/graph"
)

// BenchmarkMinimumSpanningTree measures Kruskal on 500 vertices / 2000 edges.
func BenchmarkMinimumSpanningTree(b *testing.B) {
	vs, es := randomConnected(rand.New(rand.NewSource(42)), 500, 1501)
	g, err := graph.New(vs, es)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.MinimumSpanningTree()
	}
}

// BenchmarkShortestPathBetween measures Dijkstra between the first and last vertex.
func BenchmarkShortestPathBetween(b *testing.B) {
	vs, es := randomConnected(rand.New(rand.NewSource(42)), 500, 1501)
	g, err := graph.New(vs, es)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ShortestPathBetween(vs[0], vs[len(vs)-1])
	}
}
