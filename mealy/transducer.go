// File: transducer.go
// Role: ts.Deterministic and ts.Graph implementations for Machine.
// AI-HINT (file):
//   - InitialState panics when no initial state was set; call Validate first.
//   - Transition panics on symbols outside the alphabet (contract violation).

package mealy

import (
	"github.com/katalvlaran/mealytree/traversal"
	"github.com/katalvlaran/mealytree/ts"
)

var (
	_ ts.Deterministic[int, string, *Transition[string], string] = (*Machine[string, string])(nil)
	_ ts.Graph[int, Edge[string, string]]                        = (*Machine[string, string])(nil)
)

// InitialState returns the initial state ID.
func (m *Machine[I, O]) InitialState() int {
	if m.initial < 0 {
		panic(ErrNoInitialState.Error())
	}

	return m.initial
}

// Transition returns the transition of state on input, if defined.
func (m *Machine[I, O]) Transition(state int, input I) (*Transition[O], bool) {
	t := m.states[state][m.alpha.Index(input)]

	return t, t != nil
}

// Successor returns the target state of t.
func (m *Machine[I, O]) Successor(t *Transition[O]) int { return t.Successor }

// TransitionOutput returns the output of t.
func (m *Machine[I, O]) TransitionOutput(t *Transition[O]) O { return t.Output }

// Edge is a transition annotated with its source symbol, as exposed by the
// graph view of a Machine.
type Edge[I comparable, O any] struct {
	Input  I
	Output O
	Target int
}

// InitialNode returns the initial state. See InitialState.
func (m *Machine[I, O]) InitialNode() int { return m.InitialState() }

// OutgoingEdges returns the defined transitions of state in alphabet order.
func (m *Machine[I, O]) OutgoingEdges(state int) []Edge[I, O] {
	slots := m.states[state]
	out := make([]Edge[I, O], 0, len(slots))
	for idx, t := range slots {
		if t == nil {
			continue
		}
		out = append(out, Edge[I, O]{Input: m.alpha.Symbol(idx), Output: t.Output, Target: t.Successor})
	}

	return out
}

// Target returns the target state of e.
func (m *Machine[I, O]) Target(e Edge[I, O]) int { return e.Target }

// Reachable returns the states reachable from the initial state in
// depth-first discovery order.
//
// Errors:
//   - ErrNoInitialState if no initial state was set.
func (m *Machine[I, O]) Reachable() ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	res, err := traversal.DepthFirst[int, Edge[I, O]](m)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
