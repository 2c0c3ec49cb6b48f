package bfs_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/mazetest"
	"github.com/katalvlaran/lvmaze/maze"
)

// distances computes step counts from start with a plain forward BFS,
// independent of the solver under test.
func distances[K comparable](m maze.Maze[K], start K) map[K]int {
	dist := map[K]int{start: 0}
	queue := []K{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range maze.Neighbors(m, u) {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// openAll removes every wall of m.
func openAll[K comparable](m maze.Generatable[K]) {
	for _, e := range m.PossibleWalls() {
		m.RemoveWall(e.A, e.B)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSolve_SingleCell(t *testing.T) {
	g := grid.MustNew(1, 1)
	assert.Equal(t, []grid.Key{{}}, bfs.Solve(g, grid.Key{}, grid.Key{}))
}

func TestSolve_TwoByTwoOneWallRemoved(t *testing.T) {
	g := grid.MustNew(2, 2)
	g.AddAllWalls()
	require.Equal(t, maze.Walled, g.RemoveWall(grid.Key{Row: 0, Col: 0}, grid.Key{Row: 0, Col: 1}))

	got := bfs.Solve(g, grid.Key{Row: 0, Col: 0}, grid.Key{Row: 0, Col: 1})
	if diff := cmp.Diff([]grid.Key{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, got); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, bfs.Solve(g, grid.Key{Row: 0, Col: 0}, grid.Key{Row: 1, Col: 1}))
	assert.Empty(t, bfs.Solve(g, grid.Key{Row: 1, Col: 1}, grid.Key{Row: 0, Col: 0}))
}

func TestSolve_OpenGridIsManhattan(t *testing.T) {
	g := grid.MustNew(5, 7)
	openAll[grid.Key](g)
	start := grid.Key{Row: 4, Col: 1}
	for _, goal := range g.Nodes() {
		path := bfs.Solve(g, start, goal)
		require.NoError(t, maze.ValidatePath[grid.Key](g, path, start, goal), "goal %v", goal)
		want := abs(goal.Row-start.Row) + abs(goal.Col-start.Col) + 1
		assert.Len(t, path, want, "goal %v", goal)
	}
}

func TestSolve_ShortestAmongRoutes(t *testing.T) {
	// A–B–C–D–K (4 steps) and A–E–F–K (3 steps), with dead-end branches.
	g := mazetest.NewGraph().
		Path("A", "B", "C", "D", "K").
		Path("A", "E", "F", "K").
		Path("C", "G", "H").
		Path("D", "I", "J")
	openAll[string](g)

	assert.Equal(t, []string{"A", "E", "F", "K"}, bfs.Solve[string](g, "A", "K"))
	assert.Equal(t, []string{"K", "F", "E", "A"}, bfs.Solve[string](g, "K", "A"))
	assert.Equal(t, []string{"H", "G", "C", "D", "I", "J"}, bfs.Solve[string](g, "H", "J"))
}

func TestSolve_FirstDiscovererWins(t *testing.T) {
	// square a–b–d–c–a: two shortest paths from d to a
	g := mazetest.NewGraph().Connect("a", "b").Connect("a", "c").Connect("b", "d").Connect("c", "d")
	openAll[string](g)
	assert.Equal(t, []string{"d", "b", "a"}, bfs.Solve[string](g, "d", "a"))
}

func TestSolve_RespectsWalls(t *testing.T) {
	g := mazetest.NewGraph().Path("a", "b", "c").Connect("a", "c")
	openAll[string](g)
	assert.Equal(t, []string{"a", "c"}, bfs.Solve[string](g, "a", "c"))

	g.AddWall("a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, bfs.Solve[string](g, "a", "c"))

	g.AddWall("b", "c")
	assert.Nil(t, bfs.Solve[string](g, "a", "c"))
}

func TestSolve_EarlyExit(t *testing.T) {
	g := mazetest.NewGraph().Connect("a", "b").Connect("a", "c").Connect("c", "d")
	openAll[string](g)

	var enq, deq []string
	entry := func(k string, d int) string { return k + "@" + strconv.Itoa(d) }
	path := bfs.Solve[string](g, "b", "a",
		bfs.WithOnEnqueue(func(k string, d int) { enq = append(enq, entry(k, d)) }),
		bfs.WithOnDequeue(func(k string, d int) { deq = append(deq, entry(k, d)) }),
	)
	assert.Equal(t, []string{"b", "a"}, path)
	assert.Equal(t, []string{"a@0"}, enq, "search starts at goal and stops when start is found")
	assert.Equal(t, []string{"a@0"}, deq)
}

func TestSolve_HookDepths(t *testing.T) {
	g := mazetest.NewGraph().Path("a", "b", "c", "d")
	openAll[string](g)

	depths := map[string]int{}
	path := bfs.Solve[string](g, "a", "d",
		bfs.WithOnEnqueue(func(k string, d int) { depths[k] = d }),
	)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	assert.Equal(t, map[string]int{"d": 0, "c": 1, "b": 2}, depths)
}

func TestSolve_InvalidInputs(t *testing.T) {
	g := grid.MustNew(3, 3)
	openAll[grid.Key](g)
	bad := grid.Key{Row: 3, Col: 0}

	assert.Nil(t, bfs.Solve(g, bad, grid.Key{}))
	assert.Nil(t, bfs.Solve(g, grid.Key{}, bad))
	assert.Equal(t, []grid.Key{bad}, bfs.Solve(g, bad, bad))
	assert.Nil(t, bfs.Solve[grid.Key](nil, grid.Key{}, grid.Key{Row: 1}))

	iso := mazetest.NewGraph("x", "y")
	assert.Nil(t, bfs.Solve[string](iso, "x", "y"))
}

func TestSolve_GeneratedMazes(t *testing.T) {
	const rows, cols = 15, 15
	start, goal := grid.Key{}, grid.Key{Row: rows - 1, Col: cols - 1}
	for seed := uint64(100); seed < 120; seed++ {
		g := grid.MustNew(rows, cols)
		require.True(t, dfs.GenerateFromSeed(g, start, goal, maze.SeedFrom(seed)))

		path := bfs.Solve(g, start, goal)
		require.NoError(t, maze.ValidatePath[grid.Key](g, path, start, goal), "seed %d", seed)

		dist := distances[grid.Key](g, start)
		assert.Len(t, path, dist[goal]+1, "seed %d: path not minimal", seed)

		// the solver does not touch walls
		before := g.String()
		_ = bfs.Solve(g, goal, start)
		assert.Equal(t, before, g.String())
	}
}

func TestSolve_MinimalOnLoopyMaze(t *testing.T) {
	// A carved maze plus extra openings has many competing routes.
	g := grid.MustNew(12, 12)
	require.True(t, dfs.GenerateFromSeed(g, grid.Key{}, grid.Key{Row: 11, Col: 11}, maze.SeedFrom(1)))
	for i, e := range g.PossibleWalls() {
		if i%5 == 0 {
			g.RemoveWall(e.A, e.B)
		}
	}
	for _, start := range []grid.Key{{Row: 0, Col: 0}, {Row: 6, Col: 3}, {Row: 11, Col: 0}} {
		dist := distances[grid.Key](g, start)
		for _, goal := range g.Nodes() {
			path := bfs.Solve(g, start, goal)
			require.NoError(t, maze.ValidatePath[grid.Key](g, path, start, goal))
			assert.Len(t, path, dist[goal]+1, "%v→%v", start, goal)
		}
	}
}

func TestSolver_Interface(t *testing.T) {
	var dequeued int
	var s maze.Solver[grid.Key] = bfs.New(bfs.WithOnDequeue(func(grid.Key, int) { dequeued++ }))

	g := grid.MustNew(1, 3)
	openAll[grid.Key](g)
	path := maze.Solve[grid.Key](g, s, grid.Key{}, grid.Key{Row: 0, Col: 2})
	assert.Equal(t, []grid.Key{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, path)
	assert.Equal(t, 2, dequeued)
}
