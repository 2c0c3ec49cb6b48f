// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// grid.go — SquareGrid storage and the maze contract.
//
// Storage:
//   • right[r][c] is the wall between (r,c) and (r,c+1); the last column is unused.
//   • down[r][c] is the wall between (r,c) and (r+1,c); the last row is unused.
//   • full is true while every wall is known to be present, letting AddAllWalls
//     return without touching the slices.

package grid

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

const minGridDim = 1

// SquareGrid is a rectangular maze topology. The zero value is not usable; call New.
type SquareGrid struct {
	rows, cols int
	right      [][]bool
	down       [][]bool
	full       bool
}

var (
	_ maze.Generatable[Key] = (*SquareGrid)(nil)
	_ maze.NodeCounter      = (*SquareGrid)(nil)
)

// New returns a rows×cols grid with every wall present.
// Returns ErrEmptyGrid if either dimension is below 1.
func New(rows, cols int) (*SquareGrid, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("New: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrEmptyGrid)
	}
	g := &SquareGrid{
		rows:  rows,
		cols:  cols,
		right: walledRows(rows, cols),
		down:  walledRows(rows, cols),
		full:  true,
	}
	return g, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(rows, cols int) *SquareGrid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

func walledRows(rows, cols int) [][]bool {
	out := make([][]bool, rows)
	for r := range out {
		out[r] = make([]bool, cols)
		for c := range out[r] {
			out[r][c] = true
		}
	}
	return out
}

// Rows returns the number of rows.
func (g *SquareGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *SquareGrid) Cols() int { return g.cols }

// InBounds reports whether k lies within the grid.
func (g *SquareGrid) InBounds(k Key) bool {
	return k.Row >= 0 && k.Row < g.rows && k.Col >= 0 && k.Col < g.cols
}

// Coordinate converts a row-major index back to a Key.
func (g *SquareGrid) Coordinate(idx int) Key {
	return Key{Row: idx / g.cols, Col: idx % g.cols}
}

// NodeCount returns rows×cols.
func (g *SquareGrid) NodeCount() int { return g.rows * g.cols }

// Nodes returns every key in row-major order.
func (g *SquareGrid) Nodes() []Key {
	n := g.NodeCount()
	out := make([]Key, n)
	for i := 0; i < n; i++ {
		out[i] = g.Coordinate(i)
	}
	return out
}

// Adjacent returns the in-bounds orthogonal neighbours of k: up, down, left, right.
// Out-of-range keys have no neighbours.
func (g *SquareGrid) Adjacent(k Key) []Key {
	out := make([]Key, 0, len(conn4))
	if !g.InBounds(k) {
		return out
	}
	for _, d := range conn4 {
		nb := Key{Row: k.Row + d[0], Col: k.Col + d[1]}
		if g.InBounds(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// wall returns the storage slot of the wall between a and b, or nil if they
// are not neighbours.
func (g *SquareGrid) wall(a, b Key) *bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil
	}
	switch {
	case a.Row == b.Row && a.Col+1 == b.Col:
		return &g.right[a.Row][a.Col]
	case a.Row == b.Row && b.Col+1 == a.Col:
		return &g.right[a.Row][b.Col]
	case a.Col == b.Col && a.Row+1 == b.Row:
		return &g.down[a.Row][a.Col]
	case a.Col == b.Col && b.Row+1 == a.Row:
		return &g.down[b.Row][a.Col]
	}
	return nil
}

// HasWall implements maze.Maze.
func (g *SquareGrid) HasWall(a, b Key) maze.WallState {
	w := g.wall(a, b)
	if w == nil {
		return maze.NotAdjacent
	}
	return maze.WallStateOf(*w)
}

// AddWall implements maze.Mutable.
func (g *SquareGrid) AddWall(a, b Key) maze.WallState {
	w := g.wall(a, b)
	if w == nil {
		return maze.NotAdjacent
	}
	prev := *w
	*w = true
	return maze.WallStateOf(prev)
}

// RemoveWall implements maze.Mutable.
func (g *SquareGrid) RemoveWall(a, b Key) maze.WallState {
	w := g.wall(a, b)
	if w == nil {
		return maze.NotAdjacent
	}
	prev := *w
	*w = false
	g.full = false
	return maze.WallStateOf(prev)
}

// AddAllWalls implements maze.Generatable. It is a no-op when no wall has been
// removed since the grid was last fully walled.
func (g *SquareGrid) AddAllWalls() {
	if g.full {
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.right[r][c] = true
			g.down[r][c] = true
		}
	}
	g.full = true
}

// PossibleWalls implements maze.Generatable. Edges are emitted row-major,
// bottom neighbour before right neighbour.
func (g *SquareGrid) PossibleWalls() []maze.Edge[Key] {
	out := make([]maze.Edge[Key], 0, 2*g.rows*g.cols-g.rows-g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			k := Key{Row: r, Col: c}
			if r+1 < g.rows {
				out = append(out, maze.Edge[Key]{A: k, B: Key{Row: r + 1, Col: c}})
			}
			if c+1 < g.cols {
				out = append(out, maze.Edge[Key]{A: k, B: Key{Row: r, Col: c + 1}})
			}
		}
	}
	return out
}
