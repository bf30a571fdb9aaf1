package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/graph"
)

// Solve returns the rooms visited from `from` to `to`, both included, walking only
// through removed walls. Each passage costs its wall's Distance. opts select the
// search frontier; see graph.WithFrontier.
//
// Errors:
//   - ErrRoomNotFound if from, to, or an endpoint of a removed wall is not in m.
//   - graph.ErrNoPathExists (wrapped) if the rooms are not connected.
//
// Complexity: O(R log R) for R rooms.
func Solve(m *Maze, removed []Wall, from, to Room, opts ...graph.PathOption) ([]Room, error) {
	if !m.has(from) {
		return nil, fmt.Errorf("%w: from %+v", ErrRoomNotFound, from)
	}
	if !m.has(to) {
		return nil, fmt.Errorf("%w: to %+v", ErrRoomNotFound, to)
	}
	for _, w := range removed {
		if !m.has(w.Room1) || !m.has(w.Room2) {
			return nil, fmt.Errorf("%w: wall %+v", ErrRoomNotFound, w)
		}
	}

	g, err := graph.New(m.rooms, removed)
	if err != nil {
		return nil, fmt.Errorf("maze: build passage graph: %w", err)
	}
	walls, err := g.ShortestPathBetween(from, to, opts...)
	if err != nil {
		return nil, fmt.Errorf("maze: solve: %w", err)
	}

	rooms := make([]Room, 0, len(walls)+1)
	rooms = append(rooms, from)
	at := from
	for _, w := range walls {
		at = graph.OtherVertex(w, at)
		rooms = append(rooms, at)
	}

	return rooms, nil
}
