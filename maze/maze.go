package maze

// NodeCount returns the number of nodes of m, using NodeCounter when available.
func NodeCount[K comparable](m Maze[K]) int {
	if c, ok := m.(NodeCounter); ok {
		return c.NodeCount()
	}
	return len(m.Nodes())
}

// Neighbors returns the adjacent keys of key that are reachable without
// crossing a wall. Order follows m.Adjacent.
func Neighbors[K comparable](m Maze[K], key K) []K {
	adj := m.Adjacent(key)
	out := make([]K, 0, len(adj))
	for _, k := range adj {
		if m.HasWall(key, k) == Passage {
			out = append(out, k)
		}
	}
	return out
}

// Solve runs s on m. It lets call sites read as maze-first.
func Solve[K comparable](m Maze[K], s Solver[K], start, goal K) []K {
	return s.Solve(m, start, goal)
}
