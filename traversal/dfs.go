// Package traversal implements depth-first search over any ts.Graph.
//
// Key features:
//   - DepthFirst(g, opts...): pre-order traversal from g.InitialNode()
//   - Explicit frame stack: no recursion, so arbitrarily deep graphs are safe
//   - Visited set: terminates on cyclic graphs
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks.
//   - Memory: O(V) for the stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package traversal

import (
	"fmt"

	"github.com/katalvlaran/mealytree/ts"
)

// frame is one level of the explicit DFS stack.
type frame[N comparable, E any] struct {
	node  N   // node owning this frame
	edges []E // outgoing edges, fetched once on entry
	next  int // index of the next edge to inspect
	depth int // distance from the initial node
}

// walker encapsulates state during a traversal.
type walker[N comparable, E any] struct {
	graph ts.Graph[N, E]
	opts  Options[N]
	res   *Result[N]
	stack []frame[N, E]
}

// DepthFirst performs a pre-order depth-first traversal of g starting at
// g.InitialNode(). Outgoing edges are explored in the order g returns them,
// so the discovery order equals that of the natural recursive formulation.
//
// On error the partial Result collected so far is returned alongside it.
func DepthFirst[N comparable, E any](g ts.Graph[N, E], opts ...Option[N]) (*Result[N], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker[N, E]{
		graph: g,
		opts:  o,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// 3. Discover the initial node, then drain the stack
	if err := w.discover(g.InitialNode(), 0); err != nil {
		return w.res, err
	}
	if err := w.run(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// discover marks node as visited, fires the hook and pushes its frame.
func (w *walker[N, E]) discover(node N, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[node] = depth
	w.res.Order = append(w.res.Order, node)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("traversal: OnVisit hook for %v: %w", node, err)
		}
	}

	w.stack = append(w.stack, frame[N, E]{
		node:  node,
		edges: w.graph.OutgoingEdges(node),
		depth: depth,
	})

	return nil
}

// run processes frames until the stack is empty.
func (w *walker[N, E]) run() error {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Backtrack once every edge of this frame was inspected.
		if top.next >= len(top.edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++

		// Depth limit: children would sit below MaxDepth.
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}

		succ := w.graph.Target(e)
		if w.res.Visited(succ) {
			continue
		}
		w.res.Parent[succ] = top.node
		// discover may grow the stack and invalidate top.
		if err := w.discover(succ, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}
