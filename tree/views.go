// File: views.go
// Role: Read-only projections of a Builder as a transition system and as a graph.
// Determinism:
//   - OutgoingEdges lists edges in alphabet order.
//   - Nodes lists nodes in depth-first pre-order from the root.
// Concurrency:
//   - Views hold no state of their own and read the live tree on every call.

package tree

import (
	"github.com/katalvlaran/mealytree/traversal"
	"github.com/katalvlaran/mealytree/ts"
)

var (
	_ ts.Deterministic[NodeID, string, Edge[string, string], string] = (*TransitionSystemView[string, string])(nil)
	_ ts.Graph[NodeID, Edge[string, string]]                         = (*GraphView[string, string])(nil)
)

// Edge is a recorded transition annotated with its source and input symbol.
type Edge[I comparable, O comparable] struct {
	Source NodeID
	Input  I
	Output O
	Target NodeID
}

// TransitionSystemView exposes a Builder as a partial deterministic transducer.
type TransitionSystemView[I comparable, O comparable] struct {
	b *Builder[I, O]
}

// TransitionSystem returns the transition-system projection of b.
func (b *Builder[I, O]) TransitionSystem() *TransitionSystemView[I, O] {
	return &TransitionSystemView[I, O]{b: b}
}

// InitialState returns RootID.
func (v *TransitionSystemView[I, O]) InitialState() NodeID { return RootID }

// Transition returns the recorded edge of state on input, if any.
func (v *TransitionSystemView[I, O]) Transition(state NodeID, input I) (Edge[I, O], bool) {
	s := v.b.slotAt(state, v.b.alpha.Index(input))
	if !s.defined {
		return Edge[I, O]{}, false
	}

	return Edge[I, O]{Source: state, Input: input, Output: s.output, Target: s.target}, true
}

// Successor returns the target node of e.
func (v *TransitionSystemView[I, O]) Successor(e Edge[I, O]) NodeID { return e.Target }

// TransitionOutput returns the recorded output of e.
func (v *TransitionSystemView[I, O]) TransitionOutput(e Edge[I, O]) O { return e.Output }

// GraphView exposes a Builder as a rooted graph for inspection and export.
type GraphView[I comparable, O comparable] struct {
	b *Builder[I, O]
}

// Graph returns the graph projection of b.
func (b *Builder[I, O]) Graph() *GraphView[I, O] {
	return &GraphView[I, O]{b: b}
}

// InitialNode returns RootID.
func (v *GraphView[I, O]) InitialNode() NodeID { return RootID }

// OutgoingEdges returns the recorded edges of node in alphabet order.
func (v *GraphView[I, O]) OutgoingEdges(node NodeID) []Edge[I, O] {
	out := make([]Edge[I, O], 0, v.b.arity)
	for idx := 0; idx < v.b.arity; idx++ {
		s := v.b.slotAt(node, idx)
		if !s.defined {
			continue
		}
		out = append(out, Edge[I, O]{Source: node, Input: v.b.alpha.Symbol(idx), Output: s.output, Target: s.target})
	}

	return out
}

// Target returns the target node of e.
func (v *GraphView[I, O]) Target(e Edge[I, O]) NodeID { return e.Target }

// Nodes returns every node reachable from the root in depth-first pre-order.
// The slice is built eagerly on each call.
//
// Complexity: O(Size() · |alphabet|).
func (v *GraphView[I, O]) Nodes() []NodeID {
	// Background context and no hook: DepthFirst cannot fail here.
	res, _ := traversal.DepthFirst[NodeID, Edge[I, O]](v)

	return res.Order
}

// Edges returns every recorded edge, grouped by source node in the order of Nodes.
func (v *GraphView[I, O]) Edges() []Edge[I, O] {
	nodes := v.Nodes()
	out := make([]Edge[I, O], 0, len(nodes)-1)
	for _, n := range nodes {
		out = append(out, v.OutgoingEdges(n)...)
	}

	return out
}
