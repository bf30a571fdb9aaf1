package maze

import "fmt"

// neighborOffsets lists the forward orthogonal neighbors (E, S); every wall is
// created once from its upper-left room.
var neighborOffsets = [][2]int{{1, 0}, {0, 1}}

// Maze is an immutable rectangular grid of rooms and walls.
type Maze struct {
	width, height int
	rooms         []Room // row-major
	walls         []Wall
}

// NewGrid builds a width×height grid with a wall between every pair of
// orthogonally adjacent rooms.
//
// Errors: ErrEmptyGrid if width < 1 or height < 1.
// Complexity: O(W×H).
func NewGrid(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, width, height)
	}
	m := &Maze{
		width:  width,
		height: height,
		rooms:  make([]Room, 0, width*height),
		walls:  make([]Wall, 0, 2*width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.rooms = append(m.rooms, Room{ID: m.index(x, y), X: x, Y: y})
		}
	}
	for _, r := range m.rooms {
		for _, d := range neighborOffsets {
			nx, ny := r.X+d[0], r.Y+d[1]
			if !m.InBounds(nx, ny) {
				continue
			}
			m.walls = append(m.walls, Wall{Room1: r, Room2: m.rooms[m.index(nx, ny)], Distance: 1})
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Rooms returns a copy of the rooms in row-major order.
func (m *Maze) Rooms() []Room {
	out := make([]Room, len(m.rooms))
	copy(out, m.rooms)

	return out
}

// Walls returns a copy of all walls.
func (m *Maze) Walls() []Wall {
	out := make([]Wall, len(m.walls))
	copy(out, m.walls)

	return out
}

// InBounds reports whether (x,y) lies within the grid. O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// RoomAt returns the room at (x,y).
//
// Errors: ErrRoomNotFound if (x,y) is outside the grid.
func (m *Maze) RoomAt(x, y int) (Room, error) {
	if !m.InBounds(x, y) {
		return Room{}, fmt.Errorf("%w: (%d,%d)", ErrRoomNotFound, x, y)
	}

	return m.rooms[m.index(x, y)], nil
}

// Entrance returns the top-left room.
func (m *Maze) Entrance() Room { return m.rooms[0] }

// Exit returns the bottom-right room.
func (m *Maze) Exit() Room { return m.rooms[len(m.rooms)-1] }

// index maps (x,y) to the row-major index y*width + x.
func (m *Maze) index(x, y int) int { return y*m.width + x }

// has reports whether r is one of the maze's rooms.
func (m *Maze) has(r Room) bool {
	return m.InBounds(r.X, r.Y) && m.rooms[m.index(r.X, r.Y)] == r
}
