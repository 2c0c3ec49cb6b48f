package dfs

import "github.com/katalvlaran/lvmaze/maze"

// carver holds the mutable state of one generation run.
type carver[K comparable] struct {
	maze    maze.Generatable[K]
	opts    Options[K]
	rng     Source
	visited map[K]struct{}
	stack   []K
}

// GenerateFromSeed carves m from start using a source seeded with seed and
// reports whether goal was reached. m is reset to fully walled first.
// A nil maze yields false.
func GenerateFromSeed[K comparable](m maze.Generatable[K], start, goal K, seed maze.Seed, opts ...Option[K]) bool {
	if m == nil {
		return false
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	m.AddAllWalls()

	n := maze.NodeCount[K](m)
	c := &carver[K]{
		maze:    m,
		opts:    o,
		rng:     o.NewSource(seed),
		visited: make(map[K]struct{}, n),
		stack:   make([]K, 0, n),
	}
	c.run(start)

	_, ok := c.visited[goal]
	return ok
}

// Generate is GenerateFromSeed with a fresh random seed.
func Generate[K comparable](m maze.Generatable[K], start, goal K, opts ...Option[K]) bool {
	return GenerateFromSeed(m, start, goal, maze.RandomSeed(), opts...)
}

// run drives the stack until every node reachable from start is visited.
func (c *carver[K]) run(start K) {
	c.stack = append(c.stack, start)
	for len(c.stack) > 0 {
		cur := c.pop()
		c.visited[cur] = struct{}{}

		cand := c.unvisitedAdjacent(cur)
		if len(cand) == 0 {
			// dead end: cur stays popped, its predecessor is next on the stack
			c.opts.OnDeadEnd(cur)
			continue
		}

		next := cand[c.rng.IntN(len(cand))]
		c.maze.RemoveWall(cur, next)
		c.opts.OnCarve(cur, next)

		c.stack = append(c.stack, cur, next)
	}
}

func (c *carver[K]) pop() K {
	last := len(c.stack) - 1
	k := c.stack[last]
	c.stack = c.stack[:last]
	return k
}

// unvisitedAdjacent filters the topological neighbours of k, ignoring walls.
func (c *carver[K]) unvisitedAdjacent(k K) []K {
	adj := c.maze.Adjacent(k)
	out := make([]K, 0, len(adj))
	for _, nb := range adj {
		if _, seen := c.visited[nb]; !seen {
			out = append(out, nb)
		}
	}
	return out
}

// Generator is the maze.Generator backed by randomized depth-first search.
// It carries options applied on every run.
type Generator[K comparable] struct {
	opts []Option[K]
}

var _ maze.Generator[string] = (*Generator[string])(nil)

// New returns a Generator using opts on every run.
func New[K comparable](opts ...Option[K]) *Generator[K] {
	return &Generator[K]{opts: opts}
}

// GenerateFromSeed implements maze.Generator.
func (g *Generator[K]) GenerateFromSeed(m maze.Generatable[K], start, goal K, seed maze.Seed) bool {
	return GenerateFromSeed(m, start, goal, seed, g.opts...)
}

// Generate implements maze.Generator.
func (g *Generator[K]) Generate(m maze.Generatable[K], start, goal K) bool {
	return Generate(m, start, goal, g.opts...)
}
