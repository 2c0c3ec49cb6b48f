// Package bfs solves mazes with breadth-first search, returning a shortest
// path (fewest steps) between two keys.
//
// What
//
//   - Explores accessible neighbours (maze.Neighbors) in FIFO order.
//   - Searches from the goal towards the start and records, for each newly
//     discovered key, the key it was discovered from. The first discoverer wins.
//   - Stops the moment the start is discovered.
//   - Follows the discovered-from links from start to goal, which already yields
//     the path in start→goal order, so no reversal is needed.
//
// Results
//
//   - Solve(m, start, goal) returns [start … goal] inclusive.
//   - start == goal returns [start].
//   - An unreachable goal, an unknown key or a nil maze returns nil.
//     None of these are errors.
//
// Determinism
//
//	Among several shortest paths the one returned follows the order of
//	m.Adjacent for each key. Topologies with a stable neighbour order therefore
//	give reproducible paths.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) in the worst case, less when start is found early.
//   - Memory: O(V) for the queue and the discovered-from map.
//
// Options
//
//   - WithOnEnqueue(fn): hook when a key joins the frontier; depth counts steps from goal.
//   - WithOnDequeue(fn): hook immediately before a key's neighbours are scanned.
package bfs
