// File: separating.go
// Role: Separating-word search between the recorded tree and a deterministic transducer.
// Determinism:
//   - Symbols are explored in the order of the inputs slice at every depth.
//   - The first disagreement in that depth-first order is returned.
// AI-HINT (file):
//   - Only tree-defined branches are explored, so cost is bounded by
//     Size() · len(inputs) regardless of the target's size.
//   - Pass S and T explicitly: FindSeparatingWord[int, *mealy.Transition[O]](b, m, ...).

package tree

import "github.com/katalvlaran/mealytree/ts"

// searchFrame is one level of the explicit DFS stack.
type searchFrame[S any, I comparable] struct {
	state    S      // paired state in the target
	node     NodeID // paired node in the tree
	incoming I      // symbol leading into this frame; unused for the root frame
	next     int    // cursor into the inputs slice
}

// FindSeparatingWord searches for an input word on which target disagrees
// with the outputs recorded in b.
//
// Implementation:
//   - Stage 1: Push the frame (target initial state, root, -, cursor 0).
//   - Stage 2: Peek the top frame. An exhausted cursor pops the frame. Otherwise
//     draw the next symbol a:
//     – no tree edge for a: skip, the branch carries no information;
//     – target undefined for a and omitUndefined: skip, inconclusive;
//     – target undefined (and !omitUndefined) or outputs differ: disagreement;
//     – otherwise push (successor state, child node, a, cursor 0).
//   - Stage 3: On disagreement the witness is the incoming symbols of the
//     frames above the root, in stack order, followed by a.
//
// Returns:
//   - (word, true) for the DFS-first disagreeing word;
//   - (nil, false) if target agrees with every recorded edge reachable via inputs.
//
// Complexity:
//   - Time O(Size() · len(inputs)), Space O(Depth()).
//
// Notes:
//   - Symbols in inputs must belong to b's alphabet; others panic.
//   - The iterative stack makes arbitrarily deep trees safe.
func FindSeparatingWord[S, T any, I comparable, O comparable](
	b *Builder[I, O],
	target ts.Deterministic[S, I, T, O],
	inputs []I,
	omitUndefined bool,
) ([]I, bool) {
	// 1) Resolve symbol indices once; the same order is reused at every depth.
	idxs := b.indices(inputs)

	stack := make([]searchFrame[S, I], 0, b.depth+1)
	stack = append(stack, searchFrame[S, I]{state: target.InitialState(), node: RootID})

	// 2) Explore
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(inputs) {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		k := top.next
		top.next++
		sym := inputs[k]

		edge := b.slotAt(top.node, idxs[k])
		if !edge.defined {
			continue
		}

		trans, ok := target.Transition(top.state, sym)
		if !ok && omitUndefined {
			continue
		}
		if !ok || target.TransitionOutput(trans) != edge.output {
			// 3) Reconstruct witness from the stack
			word := make([]I, 0, len(stack))
			for _, f := range stack[1:] {
				word = append(word, f.incoming)
			}

			return append(word, sym), true
		}

		stack = append(stack, searchFrame[S, I]{
			state:    target.Successor(trans),
			node:     edge.target,
			incoming: sym,
		})
	}

	return nil, false
}
