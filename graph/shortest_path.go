package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvmaze/dheap"
)

// ShortestPathBetween returns the edges of a path from start to end, ordered so
// that the first edge leaves start and the last edge reaches end.
//
// Behavior:
//   - start == end → empty path, no error, even when start is not in the graph.
//   - Default policy (FrontierPathCost): a minimum-total-weight path.
//   - WithFrontier(FrontierEdgeWeight): the path along the tree grown by always taking
//     the lightest edge leaving the finalized set (legacy exploration order).
//
// Errors:
//   - ErrVertexNotFound if start != end and either is not in the graph.
//   - ErrNoPathExists if end cannot be reached from start.
//   - ErrInvalidArgument for an unknown FrontierPolicy.
//
// Complexity: O(E log E) time, O(V + E) memory.
func (g *Graph[V, E]) ShortestPathBetween(start, end V, opts ...PathOption) ([]E, error) {
	// 1) Options.
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Trivial path, then endpoint validation.
	if start == end {
		return []E{}, nil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %v", ErrVertexNotFound, end)
	}

	// 3) Search.
	r := newPathRunner(g, start, end)
	switch cfg.Frontier {
	case FrontierPathCost:
		r.byPathCost()
	case FrontierEdgeWeight:
		r.byEdgeWeight()
	default:
		return nil, fmt.Errorf("%w: frontier policy %v", ErrInvalidArgument, cfg.Frontier)
	}

	// 4) Unreached end.
	if !r.done[end] || math.IsInf(r.cost[end], 1) {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPathExists, start, end)
	}

	return r.path(), nil
}

// pathRunner holds the mutable state of one search.
type pathRunner[V comparable, E Edge[V]] struct {
	g          *Graph[V, E]
	start, end V
	cost       map[V]float64 // tentative cost from start; +Inf until reached
	done       map[V]bool    // finalized vertices
	back       map[V]int     // edge index through which a vertex was finalized
}

func newPathRunner[V comparable, E Edge[V]](g *Graph[V, E], start, end V) *pathRunner[V, E] {
	n := len(g.vertices)
	r := &pathRunner[V, E]{
		g:     g,
		start: start,
		end:   end,
		cost:  make(map[V]float64, n),
		done:  make(map[V]bool, n),
		back:  make(map[V]int, n),
	}
	for _, v := range g.vertices {
		r.cost[v] = math.Inf(1)
	}
	r.cost[start] = 0

	return r
}

// costItem is a lazy frontier entry: vertex reached with cost via edge #via (-1 for the source).
type costItem[V comparable] struct {
	vertex V
	cost   float64
	via    int
}

// byPathCost runs textbook Dijkstra with lazy decrease-key: stale entries are
// skipped when popped because their vertex is already finalized.
func (r *pathRunner[V, E]) byPathCost() {
	pq := dheap.New(func(a, b costItem[V]) bool { return a.cost < b.cost })
	_ = pq.Insert(costItem[V]{vertex: r.start, cost: 0, via: -1}) // struct values are never nil

	for !pq.IsEmpty() {
		it, _ := pq.RemoveMin() // loop guard: heap not empty
		u := it.vertex
		if r.done[u] {
			continue
		}
		r.done[u] = true
		if it.via >= 0 {
			r.back[u] = it.via
		}
		if u == r.end {
			return
		}

		// Relax every edge leaving u.
		for _, i := range r.g.incident[u] {
			e := r.g.edges[i]
			v := OtherVertex(e, u)
			if v == u || r.done[v] {
				continue
			}
			nd := r.cost[u] + e.Weight()
			if nd >= r.cost[v] {
				continue
			}
			r.cost[v] = nd
			_ = pq.Insert(costItem[V]{vertex: v, cost: nd, via: i}) // struct values are never nil
		}
	}
}

// byEdgeWeight keeps a heap of undecided edge indexes keyed by raw edge weight.
// Each round it pushes the edges incident to the most recently finalized vertex,
// then finalizes the far endpoint of the lightest edge that still has one.
func (r *pathRunner[V, E]) byEdgeWeight() {
	edges := r.g.edges
	pq := dheap.New(func(a, b int) bool { return edges[a].Weight() < edges[b].Weight() })
	pushed := make(map[int]bool)
	frontier := map[V]struct{}{r.start: {}}
	r.done[r.start] = true

	next := r.start
	for len(frontier) > 0 && !r.done[r.end] {
		delete(frontier, next)

		// Discover edges around next and relax their far endpoints.
		for _, i := range r.g.incident[next] {
			if pushed[i] {
				continue
			}
			pushed[i] = true
			_ = pq.Insert(i) // ints are never nil

			e := edges[i]
			v := OtherVertex(e, next)
			if nd := r.cost[next] + e.Weight(); nd < r.cost[v] {
				r.cost[v] = nd
			}
			if !r.done[v] {
				frontier[v] = struct{}{}
			}
		}

		// Lightest edge with an unfinalized endpoint.
		chosen := -1
		for !pq.IsEmpty() {
			i, _ := pq.RemoveMin() // loop guard: heap not empty
			if !r.done[edges[i].Vertex1()] || !r.done[edges[i].Vertex2()] {
				chosen = i
				break
			}
		}
		if chosen < 0 {
			return
		}

		e := edges[chosen]
		v := e.Vertex1()
		if r.done[v] {
			v = e.Vertex2()
		}
		r.done[v] = true
		r.back[v] = chosen
		next = v
	}
}

// path walks back-pointers from end to start and reverses them.
func (r *pathRunner[V, E]) path() []E {
	var out []E
	for v := r.end; v != r.start; {
		e := r.g.edges[r.back[v]]
		out = append(out, e)
		v = OtherVertex(e, v)
	}
	slices.Reverse(out)

	return out
}
