package graph

import (
	"fmt"
	"math"
)

// Graph is an immutable undirected weighted graph.
//
// adjacency[v] is the set of neighbors of v (both directions of every edge are recorded);
// incident[v] lists indexes into edges for every edge touching v (self-loops once).
type Graph[V comparable, E Edge[V]] struct {
	vertices  []V // distinct, first-seen order
	edges     []E // input order, parallel edges kept
	adjacency map[V]map[V]struct{}
	incident  map[V][]int
}

// New validates vertices and edges and builds the adjacency index.
//
// Steps:
//  1. Register every distinct vertex (duplicates in the input collapse).
//  2. For each edge: reject weight < 0 or NaN (ErrNegativeWeight) and endpoints
//     outside the vertex set (ErrVertexNotFound).
//  3. Record both directions in the adjacency index.
//
// The input slices are copied; later changes to them do not affect the Graph.
// Complexity: O(V + E).
func New[V comparable, E Edge[V]](vertices []V, edges []E) (*Graph[V, E], error) {
	g := &Graph[V, E]{
		vertices:  make([]V, 0, len(vertices)),
		edges:     make([]E, len(edges)),
		adjacency: make(map[V]map[V]struct{}, len(vertices)),
		incident:  make(map[V][]int, len(vertices)),
	}
	copy(g.edges, edges)

	// 1) Vertices.
	for _, v := range vertices {
		if _, ok := g.adjacency[v]; ok {
			continue
		}
		g.adjacency[v] = make(map[V]struct{})
		g.vertices = append(g.vertices, v)
	}

	// 2–3) Edges.
	for i, e := range g.edges {
		u, v, w := e.Vertex1(), e.Vertex2(), e.Weight()
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge #%d %v–%v weight=%g", ErrNegativeWeight, i, u, v, w)
		}
		if _, ok := g.adjacency[u]; !ok {
			return nil, fmt.Errorf("%w: edge #%d endpoint %v", ErrVertexNotFound, i, u)
		}
		if _, ok := g.adjacency[v]; !ok {
			return nil, fmt.Errorf("%w: edge #%d endpoint %v", ErrVertexNotFound, i, v)
		}
		g.adjacency[u][v] = struct{}{}
		g.adjacency[v][u] = struct{}{}
		g.incident[u] = append(g.incident[u], i)
		if u != v {
			g.incident[v] = append(g.incident[v], i)
		}
	}

	return g, nil
}

// FromSets builds a Graph from set-shaped inputs.
// Map iteration order is random, so edge order (and with it tie-breaking
// among equal weights) is unspecified.
func FromSets[V comparable, E Edge[V]](vertices map[V]struct{}, edges map[E]struct{}) (*Graph[V, E], error) {
	vs := make([]V, 0, len(vertices))
	for v := range vertices {
		vs = append(vs, v)
	}
	es := make([]E, 0, len(edges))
	for e := range edges {
		es = append(es, e)
	}

	return New(vs, es)
}

// NumVertices returns the number of distinct vertices. O(1).
func (g *Graph[V, E]) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges, counting parallel edges and self-loops. O(1).
func (g *Graph[V, E]) NumEdges() int { return len(g.edges) }

// HasVertex reports whether v belongs to the graph. O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Vertices returns a copy of the vertex list in first-seen order. O(V).
func (g *Graph[V, E]) Vertices() []V {
	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edge list in input order. O(E).
func (g *Graph[V, E]) Edges() []E {
	out := make([]E, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the distinct neighbors of v in order of first incident edge.
// A self-loop makes v its own neighbor.
//
// Errors: ErrVertexNotFound if v is not in the graph.
// Complexity: O(deg(v)).
func (g *Graph[V, E]) Neighbors(v V) ([]V, error) {
	set, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, 0, len(set))
	seen := make(map[V]struct{}, len(set))
	for _, i := range g.incident[v] {
		w := OtherVertex(g.edges[i], v)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out, nil
}
