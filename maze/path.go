package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ValidatePath.
var (
	// ErrEmptyPath indicates a path with no keys.
	ErrEmptyPath = errors.New("maze: path is empty")

	// ErrPathEndpoints indicates a path that does not start at start or end at goal.
	ErrPathEndpoints = errors.New("maze: path endpoints mismatch")

	// ErrRepeatedNode indicates a key visited twice.
	ErrRepeatedNode = errors.New("maze: path repeats a node")

	// ErrBlockedStep indicates two consecutive keys that are not accessible neighbours.
	ErrBlockedStep = errors.New("maze: path crosses a wall or jumps between non-adjacent nodes")
)

// ValidatePath checks that path is a simple walk through m from start to goal.
// Every consecutive pair must be adjacent with its wall removed.
// Returns nil or one of the sentinel errors above, wrapped with the offending position.
//
// Complexity: O(len(path)) HasWall calls.
func ValidatePath[K comparable](m Maze[K], path []K, start, goal K) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start {
		return fmt.Errorf("%w: first key %v, want %v", ErrPathEndpoints, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: last key %v, want %v", ErrPathEndpoints, last, goal)
	}

	seen := make(map[K]int, len(path))
	for i, k := range path {
		if j, dup := seen[k]; dup {
			return fmt.Errorf("%w: %v at positions %d and %d", ErrRepeatedNode, k, j, i)
		}
		seen[k] = i
		if i == 0 {
			continue
		}
		if st := m.HasWall(path[i-1], k); st != Passage {
			return fmt.Errorf("%w: step %d (%v→%v) is %s", ErrBlockedStep, i, path[i-1], k, st)
		}
	}
	return nil
}
