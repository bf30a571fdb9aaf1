// Package lvmaze is a small toolkit for carving and solving perfect mazes,
// built from reusable generic primitives.
//
// 🚀 What is inside?
//
//   - disjointset/ — union-find forest with union by rank and path compression
//   - dheap/       — d-ary min-heap with removal of arbitrary elements
//   - graph/       — immutable weighted graph: Kruskal MST + shortest path
//   - maze/        — grid of rooms & walls, Kruskal carver, solver, ASCII renderer
//   - cmd/mazegen  — CLI: flags > MAZEGEN_* env > .env > defaults
//
// ✨ Why lvmaze?
//
//   - Generic – every structure works with any comparable element type
//   - Deterministic – carving is driven by an explicit seed or *rand.Rand
//   - Non-destructive – the graph and maze are never mutated by algorithms
//
// Quick ASCII example (3×2, solved):
//
//	+---+---+---+
//	| *   *   * |
//	+---+   +   +
//	|       | * |
//	+---+---+---+
//
//	go install github.com/katalvlaran/lvmaze/cmd/mazegen@latest
package lvmaze
