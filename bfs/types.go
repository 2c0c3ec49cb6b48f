package bfs

// Option configures a solve via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds the hooks of one solve.
type Options[K comparable] struct {
	// OnEnqueue is called when key is added to the frontier.
	// depth is its distance in steps from the goal.
	OnEnqueue func(key K, depth int)

	// OnDequeue is called immediately before the neighbours of key are scanned.
	OnDequeue func(key K, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnEnqueue: func(K, int) {},
		OnDequeue: func(K, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
