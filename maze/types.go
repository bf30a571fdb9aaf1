package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrRoomNotFound indicates coordinates or a room outside the maze.
	ErrRoomNotFound = errors.New("maze: room not in maze")
)

// Room is a single grid cell. ID is the row-major index Y*Width + X.
type Room struct {
	ID   int
	X, Y int
}

// Wall separates two orthogonally adjacent rooms.
// Distance is the center-to-center distance of the rooms (1 on a unit grid).
type Wall struct {
	Room1, Room2 Room
	Distance     float64
}

// Vertex1 returns Room1.
func (w Wall) Vertex1() Room { return w.Room1 }

// Vertex2 returns Room2.
func (w Wall) Vertex2() Room { return w.Room2 }

// Weight returns Distance.
func (w Wall) Weight() float64 { return w.Distance }

// Carver decides which walls of a maze to knock down.
type Carver interface {
	WallsToRemove(m *Maze) ([]Wall, error)
}

// CarverOptions configures a KruskalCarver.
//
// Seed – used when Rand is nil; 0 selects the fixed default seed.
// Rand – caller-owned random source; takes precedence over Seed.
type CarverOptions struct {
	Seed int64
	Rand *rand.Rand
}

// CarverOption is a functional option for NewKruskalCarver.
type CarverOption func(*CarverOptions)

// WithSeed derives the random source from seed.
func WithSeed(seed int64) CarverOption {
	return func(o *CarverOptions) {
		o.Seed = seed
	}
}

// WithRand uses r directly. r is not goroutine-safe; do not share it across carvers in parallel.
func WithRand(r *rand.Rand) CarverOption {
	return func(o *CarverOptions) {
		o.Rand = r
	}
}

// DefaultCarverOptions returns Seed = 0 (default seed), Rand = nil.
func DefaultCarverOptions() CarverOptions {
	return CarverOptions{}
}
