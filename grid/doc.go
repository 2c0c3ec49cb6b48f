// Package grid provides the rectangular square-grid maze topology.
//
// What:
//
//   - SquareGrid is a rows×cols lattice of cells keyed by Key{Row, Col}.
//   - Each cell is adjacent to its orthogonal neighbours (up, down, left, right).
//   - Walls live on the shared sides between neighbours; a new grid has all of them.
//   - SquareGrid implements maze.Generatable[Key] and maze.NodeCounter, so the
//     dfs generator and bfs solver run on it directly.
//   - String and Render draw the maze as ASCII art, optionally marking a path.
//
// Rendering:
//
//	A 3×3 grid with a path marked by Render:
//
//	  +---+---+---+
//	  | *   *   * |
//	  +---+---+   +
//	  |       | * |
//	  +   +---+   +
//	  |         * |
//	  +---+---+---+
//
// Complexity:
//
//   - Adjacent, HasWall, AddWall, RemoveWall, NodeCount: O(1).
//   - Nodes, AddAllWalls, PossibleWalls, Render: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: rows < 1 or cols < 1.
package grid
