package mazetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

// CheckContract asserts the graph-contract properties every topology must hold.
// outside lists keys that do not belong to m. m is left fully walled.
//
//   - HasWall is symmetric for every pair of nodes.
//   - Non-adjacent pairs report NotAdjacent from HasWall, AddWall and RemoveWall.
//   - Out-of-range keys have no neighbours.
//   - PossibleWalls lists every adjacent pair exactly once.
//   - AddAllWalls walls every edge.
func CheckContract[K comparable](t *testing.T, m maze.Generatable[K], outside []K) {
	t.Helper()
	nodes := m.Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, len(nodes), maze.NodeCount[K](m))

	// open every other edge so symmetry is checked on both states
	walls := m.PossibleWalls()
	for i, e := range walls {
		if i%2 == 0 {
			m.RemoveWall(e.A, e.B)
		}
	}

	adjacent := make(map[[2]K]bool)
	for _, a := range nodes {
		for _, b := range m.Adjacent(a) {
			adjacent[[2]K{a, b}] = true
		}
	}
	for _, a := range nodes {
		for _, b := range nodes {
			st := m.HasWall(a, b)
			assert.Equal(t, st, m.HasWall(b, a), "HasWall(%v,%v) not symmetric", a, b)
			if adjacent[[2]K{a, b}] {
				assert.True(t, st.Adjacent(), "HasWall(%v,%v) = %s for adjacent pair", a, b, st)
				continue
			}
			assert.Equal(t, maze.NotAdjacent, st, "HasWall(%v,%v)", a, b)
			assert.Equal(t, maze.NotAdjacent, m.AddWall(a, b), "AddWall(%v,%v)", a, b)
			assert.Equal(t, maze.NotAdjacent, m.RemoveWall(a, b), "RemoveWall(%v,%v)", a, b)
		}
	}

	for _, k := range outside {
		assert.Empty(t, m.Adjacent(k), "Adjacent(%v) outside the topology", k)
		for _, n := range nodes {
			assert.Equal(t, maze.NotAdjacent, m.HasWall(k, n), "HasWall(%v,%v)", k, n)
		}
	}

	seen := make(map[[2]K]bool, len(walls))
	for _, e := range walls {
		assert.True(t, adjacent[[2]K{e.A, e.B}], "PossibleWalls lists non-adjacent %v", e)
		assert.False(t, seen[[2]K{e.A, e.B}] || seen[[2]K{e.B, e.A}], "PossibleWalls lists %v twice", e)
		seen[[2]K{e.A, e.B}] = true
	}
	for pair := range adjacent {
		assert.True(t, seen[pair] || seen[[2]K{pair[1], pair[0]}], "PossibleWalls misses %v", pair)
	}

	m.AddAllWalls()
	for _, e := range walls {
		assert.Equal(t, maze.Walled, m.HasWall(e.A, e.B), "edge %v after AddAllWalls", e)
	}
}
