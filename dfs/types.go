package dfs

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvmaze/maze"
)

// Source is the randomness the generator consumes.
// IntN returns a uniform value in [0, n) for n > 0.
type Source interface {
	IntN(n int) int
}

// SourceFactory builds a Source from a seed.
type SourceFactory func(seed maze.Seed) Source

// ChaCha8Source is the default SourceFactory.
func ChaCha8Source(seed maze.Seed) Source {
	return rand.New(rand.NewChaCha8(seed))
}

// Option configures generation via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds the parameters and hooks of one generation run.
type Options[K comparable] struct {
	// NewSource builds the pseudo-random source from the run's seed.
	NewSource SourceFactory

	// OnCarve is called after the wall between from and to is removed.
	OnCarve func(from, to K)

	// OnDeadEnd is called when key has no unvisited neighbour left and is
	// dropped from the stack. It fires exactly once per visited node.
	OnDeadEnd func(key K)
}

// DefaultOptions returns Options with the ChaCha8 source and no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		NewSource: ChaCha8Source,
		OnCarve:   func(K, K) {},
		OnDeadEnd: func(K) {},
	}
}

// WithSourceFactory replaces the pseudo-random source. Nil is ignored.
func WithSourceFactory[K comparable](f SourceFactory) Option[K] {
	return func(o *Options[K]) {
		if f != nil {
			o.NewSource = f
		}
	}
}

// WithOnCarve registers a hook run after every removed wall.
func WithOnCarve[K comparable](fn func(from, to K)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// WithOnDeadEnd registers a hook run when a node is backtracked out of.
func WithOnDeadEnd[K comparable](fn func(key K)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDeadEnd = fn
		}
	}
}
