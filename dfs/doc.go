// Package dfs carves mazes with randomized depth-first search.
//
// What
//
//   - Resets the maze to fully walled (maze.Generatable.AddAllWalls).
//   - Walks the topology from start with an explicit stack, always stepping to a
//     uniformly chosen unvisited neighbour and removing the wall it crosses.
//   - Backtracks on dead ends until no visited node has an unvisited neighbour.
//   - Reports whether goal was visited.
//
// Every visited node is joined to start through removed walls only, and exactly
// one wall is removed per newly visited node, so the carved passages form a
// spanning tree of start's component. On a connected topology such as
// grid.SquareGrid the result is always true.
//
// Determinism
//
//	GenerateFromSeed seeds a Source from a 32-byte maze.Seed; equal seeds on
//	equal topologies carve identical mazes. The default Source is ChaCha8 from
//	math/rand/v2. Generate draws a fresh seed with maze.RandomSeed.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) adjacency scans plus one AddAllWalls.
//   - Memory: O(V) for the visited set and the stack.
//
// Options
//
//   - WithSourceFactory(f): replace the pseudo-random source (tests, other PRNGs).
//   - WithOnCarve(fn):      hook after each removed wall.
//   - WithOnDeadEnd(fn):    hook when a node is abandoned for good.
//
// Usage
//
//	g := grid.MustNew(15, 15)
//	ok := dfs.GenerateFromSeed(g, grid.Key{}, grid.Key{Row: 14, Col: 14}, maze.SeedFrom(42))
package dfs
