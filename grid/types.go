// SPDX-License-Identifier: MIT
// Package: lvmaze/grid
//
// types.go — cell keys and sentinel errors.

package grid

import (
	"errors"
	"strconv"
)

// ErrEmptyGrid indicates a grid with no rows or no columns.
var ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

// Key identifies a cell by its zero-based row and column.
type Key struct {
	Row, Col int
}

// String formats the key as "r,c".
func (k Key) String() string {
	return strconv.Itoa(k.Row) + "," + strconv.Itoa(k.Col)
}

// conn4 holds row/col offsets in Adjacent order: up, down, left, right.
var conn4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
