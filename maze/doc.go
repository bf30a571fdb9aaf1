// Package maze builds rectangular room grids and carves them into perfect mazes
// with Kruskal's algorithm on top of package graph.
//
// What:
//
//   - NewGrid lays out Width×Height rooms (row-major IDs) and one wall between every
//     pair of orthogonally adjacent rooms.
//   - KruskalCarver gives every wall a random exploration weight and removes exactly the
//     walls of a minimum spanning tree of the room graph: every room becomes reachable
//     and there is exactly one route between any two rooms.
//   - Solve finds the room sequence between two rooms through the carved passages.
//   - Render draws the maze (and optionally a route) as ASCII art.
//
// Randomness is supplied by the caller (WithRand) or derived from a seed (WithSeed);
// seed 0 maps to a fixed default so runs are reproducible.
//
// The maze is never modified by carving: exploration weights live on per-run
// copies of the walls, so Wall.Distance reads the same before and after.
//
// Complexity:
//
//   - NewGrid:       O(W×H).
//   - WallsToRemove: O(E log E) with E ≈ 2×W×H.
//   - Solve:         O(W×H log(W×H)).
//   - Render:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:    width or height < 1.
//   - ErrRoomNotFound: coordinates or rooms outside the maze.
//   - graph.ErrNoPathExists (wrapped by Solve): rooms not connected by carved passages.
package maze
