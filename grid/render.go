// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// render.go — ASCII drawing of a SquareGrid.
//
// Layout per cell (4 columns wide, 2 lines tall, shared borders):
//
//	+---+
//	| * |
//	+---+
//
// Line 2r+1 holds the interior of row r; the marker for (r,c) sits at byte 4c+2.

package grid

import "strings"

const (
	cellWidth  = 4
	pathMarker = '*'
)

// String draws the grid without markers.
func (g *SquareGrid) String() string {
	return g.Render(nil)
}

// Render draws the grid and places a '*' in every cell listed in keys.
// Keys outside the grid are ignored. Every line ends with '\n'.
func (g *SquareGrid) Render(keys []Key) string {
	lines := g.lines()
	for _, k := range keys {
		if g.InBounds(k) {
			lines[2*k.Row+1][cellWidth*k.Col+2] = pathMarker
		}
	}

	var sb strings.Builder
	sb.Grow((2*g.rows + 1) * (cellWidth*g.cols + 2))
	for _, l := range lines {
		sb.Write(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// lines returns the unmarked drawing, one byte slice per line.
func (g *SquareGrid) lines() [][]byte {
	width := cellWidth*g.cols + 1
	out := make([][]byte, 0, 2*g.rows+1)

	top := make([]byte, 0, width)
	for c := 0; c < g.cols; c++ {
		top = append(top, "+---"...)
	}
	out = append(out, append(top, '+'))

	for r := 0; r < g.rows; r++ {
		mid := make([]byte, 0, width)
		bottom := make([]byte, 0, width)
		mid = append(mid, '|')
		bottom = append(bottom, '+')
		for c := 0; c < g.cols; c++ {
			// The outer border is always drawn, whatever the unused slot holds.
			if g.right[r][c] || c+1 == g.cols {
				mid = append(mid, "   |"...)
			} else {
				mid = append(mid, "    "...)
			}
			if g.down[r][c] || r+1 == g.rows {
				bottom = append(bottom, "---+"...)
			} else {
				bottom = append(bottom, "   +"...)
			}
		}
		out = append(out, mid, bottom)
	}
	return out
}
