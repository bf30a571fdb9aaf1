package maze

import (
	"io"
	"strings"
)

// Render draws m as ASCII art. Walls listed in removed are drawn open; rooms on
// path are marked with '*'. Each room is three characters wide:
//
//	+---+---+
//	| * |   |
//	+   +---+
//	| *   * |
//	+---+---+
//
// Complexity: O(W×H).
func Render(w io.Writer, m *Maze, removed []Wall, path []Room) error {
	open := make(map[[2]int]bool, len(removed))
	for _, wall := range removed {
		open[pairKey(wall.Room1, wall.Room2)] = true
	}
	onPath := make(map[int]bool, len(path))
	for _, r := range path {
		onPath[r.ID] = true
	}

	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		// Top border of row y.
		for x := 0; x < m.width; x++ {
			sb.WriteByte('+')
			if y > 0 && open[pairKey(m.rooms[m.index(x, y-1)], m.rooms[m.index(x, y)])] {
				sb.WriteString("   ")
			} else {
				sb.WriteString("---")
			}
		}
		sb.WriteString("+\n")

		// Rooms of row y.
		for x := 0; x < m.width; x++ {
			if x > 0 && open[pairKey(m.rooms[m.index(x-1, y)], m.rooms[m.index(x, y)])] {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
			if onPath[m.index(x, y)] {
				sb.WriteString(" * ")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("+---", m.width))
	sb.WriteString("+\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// pairKey identifies the wall between two rooms regardless of orientation.
func pairKey(a, b Room) [2]int {
	if a.ID > b.ID {
		a, b = b, a
	}

	return [2]int{a.ID, b.ID}
}
