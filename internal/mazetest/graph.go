// Package mazetest provides an explicit-edge maze topology for tests.
//
// Graph lets a test build arbitrary, possibly disconnected, topologies with
// string keys. It deliberately does not implement maze.NodeCounter so that the
// len(Nodes()) fallback is exercised too.
package mazetest

import "github.com/katalvlaran/lvmaze/maze"

// Graph is a maze.Generatable[string] backed by adjacency lists.
type Graph struct {
	order []string
	adj   map[string][]string
	walls map[[2]string]bool
}

// NewGraph returns a Graph holding the given isolated nodes.
func NewGraph(nodes ...string) *Graph {
	g := &Graph{
		adj:   make(map[string][]string),
		walls: make(map[[2]string]bool),
	}
	for _, n := range nodes {
		g.addNode(n)
	}
	return g
}

func (g *Graph) addNode(n string) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.order = append(g.order, n)
	g.adj[n] = nil
}

// Connect makes a and b adjacent with a wall between them.
// Unknown nodes are added; self-loops and repeated edges are ignored.
func (g *Graph) Connect(a, b string) *Graph {
	if a == b {
		return g
	}
	g.addNode(a)
	g.addNode(b)
	k := edgeKey(a, b)
	if _, ok := g.walls[k]; ok {
		return g
	}
	g.walls[k] = true
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return g
}

// Path connects consecutive nodes.
func (g *Graph) Path(nodes ...string) *Graph {
	for i := 1; i < len(nodes); i++ {
		g.Connect(nodes[i-1], nodes[i])
	}
	return g
}

func edgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Nodes implements maze.Maze.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Adjacent implements maze.Maze.
func (g *Graph) Adjacent(key string) []string {
	return append([]string(nil), g.adj[key]...)
}

// HasWall implements maze.Maze.
func (g *Graph) HasWall(a, b string) maze.WallState {
	w, ok := g.walls[edgeKey(a, b)]
	if !ok {
		return maze.NotAdjacent
	}
	return maze.WallStateOf(w)
}

// AddWall implements maze.Mutable.
func (g *Graph) AddWall(a, b string) maze.WallState {
	return g.set(a, b, true)
}

// RemoveWall implements maze.Mutable.
func (g *Graph) RemoveWall(a, b string) maze.WallState {
	return g.set(a, b, false)
}

func (g *Graph) set(a, b string, walled bool) maze.WallState {
	k := edgeKey(a, b)
	prev, ok := g.walls[k]
	if !ok {
		return maze.NotAdjacent
	}
	g.walls[k] = walled
	return maze.WallStateOf(prev)
}

// AddAllWalls implements maze.Generatable.
func (g *Graph) AddAllWalls() {
	for k := range g.walls {
		g.walls[k] = true
	}
}

// PossibleWalls implements maze.Generatable. Edges are listed in node
// insertion order, each from its first-inserted endpoint.
func (g *Graph) PossibleWalls() []maze.Edge[string] {
	pos := make(map[string]int, len(g.order))
	for i, n := range g.order {
		pos[n] = i
	}
	out := make([]maze.Edge[string], 0, len(g.walls))
	for _, a := range g.order {
		for _, b := range g.adj[a] {
			if pos[a] < pos[b] {
				out = append(out, maze.Edge[string]{A: a, B: b})
			}
		}
	}
	return out
}

// OpenWalls returns the number of edges currently without a wall.
func (g *Graph) OpenWalls() int {
	n := 0
	for _, w := range g.walls {
		if !w {
			n++
		}
	}
	return n
}
