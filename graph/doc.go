// Package graph provides an immutable, undirected, weighted graph over arbitrary
// comparable vertex and edge types, with minimum-spanning-tree and
// single-source shortest-path queries.
//
// What & Why
//
//   - Vertices are any comparable V (room structs, strings, ints, ...).
//   - Edges are any comparable E exposing Vertex1(), Vertex2() and a non-negative Weight().
//     Self-loops and parallel edges are allowed.
//   - A Graph is validated and indexed once in New and never mutated afterwards,
//     so any number of MST and path queries may run against it.
//
// Algorithms
//
//   - MinimumSpanningTree (Kruskal):
//     all edges are loaded into a 4-ary min-heap (package dheap) keyed by weight;
//     the cheapest edge is popped repeatedly and accepted when its endpoints live in
//     different components of a disjoint-set forest (package disjointset), which is
//     populated lazily as vertices are touched. The loop stops at |V|-1 accepted edges.
//     Complexity: O(E log E) time, O(V + E) memory.
//
//   - ShortestPathBetween (Dijkstra):
//     by default the frontier heap is keyed by the accumulated cost from the source
//     (FrontierPathCost, lazy decrease-key). WithFrontier(FrontierEdgeWeight) switches to
//     the legacy exploration order that keys candidate edges by their raw weight; it grows
//     a Prim-like tree from the source and may return non-minimal paths.
//     Complexity: O(E log E) time, O(V + E) memory.
//
// Errors
//
//	ErrInvalidArgument – base for rejected inputs:
//	    ErrNegativeWeight  – an edge weight is negative or NaN.
//	    ErrVertexNotFound  – an edge endpoint or a query vertex is not in the graph.
//	ErrNoPathExists    – the requested endpoints are not connected:
//	    ErrDisconnected    – MinimumSpanningTree on a graph with several components.
//
// Edge weights are read, never written: queries leave every edge exactly as it was.
//
// Concurrency: a Graph is read-only after New, but query methods are not
// documented as goroutine-safe; synchronize externally when sharing.
package graph
