package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmaze/graph"
)

// KruskalCarver removes the walls of a minimum spanning tree of the room graph
// under random exploration weights.
type KruskalCarver struct {
	rng *rand.Rand
}

var _ Carver = (*KruskalCarver)(nil)

// NewKruskalCarver returns a carver using the configured random source.
func NewKruskalCarver(opts ...CarverOption) *KruskalCarver {
	cfg := DefaultCarverOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := cfg.Rand
	if r == nil {
		r = rngFromSeed(cfg.Seed)
	}

	return &KruskalCarver{rng: r}
}

// exploration is a per-run copy of a wall carrying its random weight.
// index points back into the maze's wall list.
type exploration struct {
	wall   Wall
	weight float64
	index  int
}

func (e exploration) Vertex1() Room   { return e.wall.Room1 }
func (e exploration) Vertex2() Room   { return e.wall.Room2 }
func (e exploration) Weight() float64 { return e.weight }

// WallsToRemove returns the walls to knock down so that every room is reachable
// through exactly one route. The result holds |rooms|-1 walls.
//
// Steps:
//  1. Draw a weight in [0,1) for each wall, stored on a scratch copy.
//  2. Build a graph of rooms joined by the scratch walls.
//  3. Take its minimum spanning tree and map each tree edge back to the maze wall.
//
// m is not modified.
// Complexity: O(E log E).
func (c *KruskalCarver) WallsToRemove(m *Maze) ([]Wall, error) {
	// 1) Exploration weights.
	scratch := make([]exploration, len(m.walls))
	for i, w := range m.walls {
		scratch[i] = exploration{wall: w, weight: c.rng.Float64(), index: i}
	}

	// 2) Room graph.
	g, err := graph.New(m.rooms, scratch)
	if err != nil {
		return nil, fmt.Errorf("maze: build room graph: %w", err)
	}

	// 3) Spanning tree → walls.
	tree, _, err := g.MinimumSpanningTree()
	if err != nil {
		return nil, fmt.Errorf("maze: carve: %w", err)
	}
	out := make([]Wall, len(tree))
	for i, e := range tree {
		out[i] = m.walls[e.index]
	}

	return out, nil
}
