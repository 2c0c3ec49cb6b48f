// Package lvmaze models mazes as graphs whose edges may be blocked by walls,
// and provides pluggable algorithms to carve and to solve them.
//
// What is in the box?
//
//	• maze/ — the graph contract: Maze, Mutable, Generatable, WallState,
//	          accessible neighbours, path validation, Generator/Solver interfaces
//	• grid/ — rectangular square-grid topology with ASCII rendering
//	• dfs/  — randomized depth-first generator (seeded, reproducible)
//	• bfs/  — breadth-first solver (shortest path in steps)
//
// Generators and solvers only see the contract, so any topology that
// implements it (hexagonal, toroidal, arbitrary graphs…) works unchanged.
//
// Quick start:
//
//	g := grid.MustNew(15, 15)
//	start, goal := grid.Key{}, grid.Key{Row: 14, Col: 14}
//	dfs.GenerateFromSeed(g, start, goal, maze.SeedFrom(42))
//	path := bfs.Solve(g, start, goal)
//	fmt.Print(g.Render(path))
//
// Pure Go, no cgo, single-threaded by design: a maze value has one owner and
// must not be mutated while a generator or solver runs on it.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
