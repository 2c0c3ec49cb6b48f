package maze

// WallState is the outcome of a wall query or mutation between two keys.
type WallState int8

const (
	// NotAdjacent reports that the two keys are not neighbours in the topology.
	NotAdjacent WallState = iota
	// Passage reports an edge whose wall has been removed.
	Passage
	// Walled reports an edge blocked by a wall.
	Walled
)

// WallStateOf converts a stored wall flag into a WallState of an existing edge.
func WallStateOf(walled bool) WallState {
	if walled {
		return Walled
	}
	return Passage
}

// Adjacent reports whether the state describes an existing edge.
func (s WallState) Adjacent() bool { return s == Passage || s == Walled }

// Blocked reports whether the edge exists and is walled.
func (s WallState) Blocked() bool { return s == Walled }

// String implements fmt.Stringer.
func (s WallState) String() string {
	switch s {
	case NotAdjacent:
		return "not-adjacent"
	case Passage:
		return "passage"
	case Walled:
		return "walled"
	}
	return "unknown"
}

// Maze is the read-only view of a maze topology.
//
// Adjacent must return an empty slice for keys outside the topology.
// HasWall must be symmetric and return NotAdjacent iff a and b share no edge.
type Maze[K comparable] interface {
	// Nodes lists every key of the maze. Order is stable within one call only.
	Nodes() []K

	// Adjacent lists the topological neighbours of key, regardless of walls.
	Adjacent(key K) []K

	// HasWall reports the wall state between a and b.
	HasWall(a, b K) WallState
}

// Mutable is a Maze whose walls can be changed.
type Mutable[K comparable] interface {
	Maze[K]

	// AddWall blocks the edge a–b and returns its previous state,
	// or NotAdjacent if there is no such edge.
	AddWall(a, b K) WallState

	// RemoveWall opens the edge a–b and returns its previous state,
	// or NotAdjacent if there is no such edge.
	RemoveWall(a, b K) WallState
}

// Generatable is a Mutable maze that a generator can reset and enumerate.
type Generatable[K comparable] interface {
	Mutable[K]

	// AddAllWalls walls every edge of the topology.
	AddAllWalls()

	// PossibleWalls lists every edge exactly once.
	PossibleWalls() []Edge[K]
}

// NodeCounter is implemented by topologies that know their size in O(1).
type NodeCounter interface {
	NodeCount() int
}

// Edge is an unordered pair of adjacent keys.
type Edge[K comparable] struct {
	A, B K
}

// Seed feeds a deterministic pseudo-random source.
// Equal seeds reproduce equal mazes.
type Seed [32]byte

// Generator carves a solvable maze out of a fully walled topology.
//
// Both methods report whether goal is reachable from start once carving is done.
// A false result is only possible on topologies that are not connected.
type Generator[K comparable] interface {
	GenerateFromSeed(m Generatable[K], start, goal K, seed Seed) bool
	Generate(m Generatable[K], start, goal K) bool
}

// Solver finds a path between two keys of an existing maze.
// The returned slice starts at start, ends at goal, and is empty if goal is
// unreachable.
type Solver[K comparable] interface {
	Solve(m Maze[K], start, goal K) []K
}
