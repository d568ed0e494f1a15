// Package ts declares the capability contracts shared by every transition
// system in this module.
//
// The contracts are deliberately minimal: an algorithm that compares, runs, or
// traverses a transducer only needs the handful of accessors declared here,
// so any concrete representation (tree builder views, dense Mealy machines,
// adapters around foreign types) can participate.
//
// Contracts:
//
//   - Deterministic[S, I, T, O]: initial state, partial transition lookup,
//     successor and output accessors of a deterministic transducer.
//   - Graph[N, E]: an initial node, its outgoing edges, and edge targets.
//
// Helpers:
//
//   - Run(dts, word) computes the output word of a transducer on an input word.
package ts

// Deterministic is a deterministic transducer with states S, input symbols I,
// transitions T, and transition outputs O.
//
// Transition reports ok == false when no transition is defined for the given
// state and symbol; the transducer is therefore allowed to be partial.
type Deterministic[S, I, T, O any] interface {
	// InitialState returns the unique initial state.
	InitialState() S

	// Transition returns the transition for input from state, if any.
	Transition(state S, input I) (T, bool)

	// Successor returns the state reached by taking transition.
	Successor(transition T) S

	// TransitionOutput returns the output emitted by transition.
	TransitionOutput(transition T) O
}

// Graph is a rooted, directed graph view used by traversal and export tooling.
type Graph[N, E any] interface {
	// InitialNode returns the node traversals start from.
	InitialNode() N

	// OutgoingEdges returns the outgoing edges of node in a stable order.
	OutgoingEdges(node N) []E

	// Target returns the node an edge points to.
	Target(edge E) N
}

// Run feeds word into dts starting at its initial state and returns the
// emitted outputs.
//
// If a transition is undefined at position k, Run returns ok == false together
// with the k outputs produced before the gap.
//
// Complexity: O(len(word)) transition lookups.
func Run[S, I, T, O any](dts Deterministic[S, I, T, O], word []I) ([]O, bool) {
	out := make([]O, 0, len(word))
	state := dts.InitialState()
	for _, sym := range word {
		trans, ok := dts.Transition(state, sym)
		if !ok {
			return out, false
		}
		out = append(out, dts.TransitionOutput(trans))
		state = dts.Successor(trans)
	}

	return out, true
}
