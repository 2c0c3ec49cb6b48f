package bfs

import "github.com/katalvlaran/lvmaze/maze"

// queueItem pairs a key with its distance from the goal.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	maze  maze.Maze[K]
	opts  Options[K]
	queue []queueItem[K]
	from  map[K]K // discovered key → key it was discovered from; goal maps to itself
}

// Solve returns a shortest path from start to goal through m, both inclusive,
// or nil if goal cannot be reached.
func Solve[K comparable](m maze.Maze[K], start, goal K, opts ...Option[K]) []K {
	if m == nil {
		return nil
	}
	if start == goal {
		return []K{start}
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	n := maze.NodeCount(m)
	w := &walker[K]{
		maze:  m,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		from:  make(map[K]K, n),
	}
	if !w.search(goal, start) {
		return nil
	}
	return w.path(start, goal)
}

// search runs BFS from root until target is discovered or the frontier is empty.
func (w *walker[K]) search(root, target K) bool {
	w.from[root] = root
	w.enqueue(root, 0)

	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, nb := range maze.Neighbors(w.maze, item.key) {
			if _, seen := w.from[nb]; seen {
				continue
			}
			w.from[nb] = item.key
			if nb == target {
				return true
			}
			w.enqueue(nb, item.depth+1)
		}
	}
	return false
}

// enqueue calls OnEnqueue and adds key to the frontier.
func (w *walker[K]) enqueue(key K, depth int) {
	w.opts.OnEnqueue(key, depth)
	w.queue = append(w.queue, queueItem[K]{key: key, depth: depth})
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker[K]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// path follows discovered-from links from start until goal.
func (w *walker[K]) path(start, goal K) []K {
	out := []K{start}
	for cur := start; cur != goal; {
		cur = w.from[cur]
		out = append(out, cur)
	}
	return out
}

// Solver is the maze.Solver backed by breadth-first search.
// It carries options applied on every solve.
type Solver[K comparable] struct {
	opts []Option[K]
}

var _ maze.Solver[string] = (*Solver[string])(nil)

// New returns a Solver using opts on every solve.
func New[K comparable](opts ...Option[K]) *Solver[K] {
	return &Solver[K]{opts: opts}
}

// Solve implements maze.Solver.
func (s *Solver[K]) Solve(m maze.Maze[K], start, goal K) []K {
	return Solve(m, start, goal, s.opts...)
}
