// Package traversal defines types and options for depth-first traversal of a
// ts.Graph, including cancellation, a pre-order hook, and depth limiting.
package traversal

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DepthFirst.
	ErrGraphNil = errors.New("traversal: graph is nil")
)

// Option configures optional behavior of DepthFirst.
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for depth-first traversal.
type Options[N comparable] struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per discovered node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(node N, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the initial node. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hook and no
// depth limit.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[N comparable](fn func(node N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records nodes in discovery order (pre-order).
	Order []N

	// Depth maps each discovered node to its distance (#edges) from the initial node
	// along the discovering path.
	Depth map[N]int

	// Parent maps each discovered node but the initial one to the node it was
	// discovered from.
	Parent map[N]N
}

// Visited reports whether node was discovered.
func (r *Result[N]) Visited(node N) bool {
	_, ok := r.Depth[node]

	return ok
}
