// Package maze defines the graph contract shared by every maze topology,
// generator and solver in lvmaze.
//
// What
//
//   - A maze is a graph of nodes identified by comparable keys.
//   - Adjacency is static: two nodes are either neighbours in the topology or not.
//   - Every adjacent pair carries a wall that is either present or removed.
//   - The traversable graph is derived on demand: Neighbors(m, k) returns the
//     adjacent keys whose wall has been removed.
//
// Contract layers
//
//   - Maze[K]        read-only: Nodes, Adjacent, HasWall (used by solvers).
//   - Mutable[K]     adds AddWall / RemoveWall.
//   - Generatable[K] adds AddAllWalls / PossibleWalls (used by generators).
//   - NodeCounter    optional O(1) NodeCount override.
//
// Wall state
//
//	HasWall and both mutators return a WallState rather than a bool so that
//	"not adjacent" can never be mistaken for "no wall":
//
//	  NotAdjacent  the two keys share no edge (zero value)
//	  Passage      edge exists, wall removed
//	  Walled       edge exists, wall present
//
// Concurrency
//
//	Topologies are single-owner values with no internal locking. Do not mutate a
//	maze while a generator or solver is running on it.
//
// Errors
//
//   - ErrEmptyPath, ErrPathEndpoints, ErrRepeatedNode, ErrBlockedStep
//     from ValidatePath. Everything else in the contract is non-exceptional.
package maze
