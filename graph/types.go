package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidArgument is the base error for malformed inputs.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrNegativeWeight indicates an edge with a negative (or NaN) weight.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidArgument)

	// ErrVertexNotFound indicates a vertex that is not part of the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not in graph", ErrInvalidArgument)

	// ErrNoPathExists indicates that no route connects the requested vertices.
	ErrNoPathExists = errors.New("graph: no path exists")

	// ErrDisconnected indicates that a spanning tree cannot cover every vertex.
	ErrDisconnected = fmt.Errorf("%w: graph is disconnected", ErrNoPathExists)
)

// Edge is the constraint satisfied by graph edges.
//
// Vertex1/Vertex2 return the endpoints (equal for a self-loop); order carries no meaning.
// Weight must be ≥ 0 and must not change while the edge belongs to a Graph.
// Edges are ordered by Weight.
type Edge[V comparable] interface {
	comparable
	Vertex1() V
	Vertex2() V
	Weight() float64
}

// WeightedEdge is a ready-made Edge value.
// ID is optional and only serves to tell apart otherwise identical parallel edges.
type WeightedEdge[V comparable] struct {
	ID   string
	From V
	To   V
	Cost float64
}

// Vertex1 returns From.
func (e WeightedEdge[V]) Vertex1() V { return e.From }

// Vertex2 returns To.
func (e WeightedEdge[V]) Vertex2() V { return e.To }

// Weight returns Cost.
func (e WeightedEdge[V]) Weight() float64 { return e.Cost }

// NewEdge builds a WeightedEdge without an ID.
func NewEdge[V comparable](from, to V, cost float64) WeightedEdge[V] {
	return WeightedEdge[V]{From: from, To: to, Cost: cost}
}

// OtherVertex returns the endpoint of e opposite to v.
// For a self-loop, or when v is not an endpoint, Vertex1 side rules apply:
// v == Vertex1 → Vertex2, otherwise Vertex1.
func OtherVertex[V comparable, E Edge[V]](e E, v V) V {
	if e.Vertex1() == v {
		return e.Vertex2()
	}

	return e.Vertex1()
}

// TotalWeight sums the weights of edges.
func TotalWeight[E interface{ Weight() float64 }](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}

// FrontierPolicy selects the heap key used by ShortestPathBetween.
type FrontierPolicy int

const (
	// FrontierPathCost keys the frontier by accumulated cost from the source (textbook Dijkstra).
	FrontierPathCost FrontierPolicy = iota

	// FrontierEdgeWeight keys candidate edges by their own weight, reproducing the
	// legacy exploration order. Paths are valid but not guaranteed to be shortest.
	FrontierEdgeWeight
)

// String returns the policy name.
func (p FrontierPolicy) String() string {
	switch p {
	case FrontierPathCost:
		return "path-cost"
	case FrontierEdgeWeight:
		return "edge-weight"
	default:
		return fmt.Sprintf("FrontierPolicy(%d)", int(p))
	}
}

// PathOptions configures ShortestPathBetween.
type PathOptions struct {
	// Frontier selects the heap key; default FrontierPathCost.
	Frontier FrontierPolicy
}

// PathOption is a functional option for ShortestPathBetween.
type PathOption func(*PathOptions)

// WithFrontier selects the frontier policy.
func WithFrontier(p FrontierPolicy) PathOption {
	return func(o *PathOptions) {
		o.Frontier = p
	}
}

// DefaultPathOptions returns PathOptions{Frontier: FrontierPathCost}.
func DefaultPathOptions() PathOptions {
	return PathOptions{Frontier: FrontierPathCost}
}
