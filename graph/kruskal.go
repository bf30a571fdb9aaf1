package graph

import (
	"github.com/katalvlaran/lvmaze/dheap"
	"github.com/katalvlaran/lvmaze/disjointset"
)

// MinimumSpanningTree returns the edges of a minimum spanning tree and its total weight.
// When several MSTs exist any one of them may be returned; the choice is
// deterministic for a given edge order.
//
// Steps:
//  1. |V| ≤ 1 → empty tree, weight 0.
//  2. Load every edge into a min-heap keyed by Weight.
//  3. Pop the cheapest edge; register unseen endpoints in the forest on first touch.
//  4. Endpoints in different components → accept the edge and union them;
//     same component (including self-loops) → discard as a cycle edge.
//  5. Stop at |V|-1 accepted edges. An exhausted heap before that → ErrDisconnected.
//
// Edges are never modified.
// Complexity: O(E log E) time, O(V + E) memory.
func (g *Graph[V, E]) MinimumSpanningTree() ([]E, float64, error) {
	// 1) Trivial trees.
	n := len(g.vertices)
	if n <= 1 {
		return []E{}, 0, nil
	}

	// 2) Heap of candidate edges.
	pq := dheap.New(byWeight[V, E], dheap.WithCapacity(len(g.edges)))
	for _, e := range g.edges {
		if err := pq.Insert(e); err != nil {
			return nil, 0, err
		}
	}

	forest := disjointset.New[V](disjointset.WithCapacity(n))
	var (
		mst   = make([]E, 0, n-1)
		total float64
	)

	// 3–5) Grow the forest until it spans every vertex.
	for len(mst) < n-1 {
		e, err := pq.RemoveMin()
		if err != nil {
			return nil, 0, ErrDisconnected
		}
		u, v := e.Vertex1(), e.Vertex2()
		ru, err := findOrMake(forest, u)
		if err != nil {
			return nil, 0, err
		}
		rv, err := findOrMake(forest, v)
		if err != nil {
			return nil, 0, err
		}
		if ru == rv {
			continue
		}
		if err = forest.Union(u, v); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
		total += e.Weight()
	}

	return mst, total, nil
}

// byWeight orders edges by ascending weight.
func byWeight[V comparable, E Edge[V]](a, b E) bool {
	return a.Weight() < b.Weight()
}

// findOrMake registers v on first touch and returns its representative id.
func findOrMake[V comparable](f *disjointset.Forest[V], v V) (int, error) {
	if !f.Contains(v) {
		if err := f.MakeSet(v); err != nil {
			return -1, err
		}
	}

	return f.FindSet(v)
}
