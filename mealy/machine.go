// Package mealy provides a dense, deterministic Mealy machine used as the
// comparison target of the incremental tree builder and as the hypothesis
// representation loaded by command-line tooling.
//
// A Machine may be partial: unset transitions are reported as undefined by
// Transition, which lets separating-word search exercise both of its
// undefined-transition policies.
package mealy

import (
	"fmt"

	"github.com/katalvlaran/mealytree/alphabet"
)

// New creates a Machine over alpha with no initial state.
// Complexity: O(states·|alpha|) for pre-allocated states.
func New[I comparable, O any](alpha *alphabet.Alphabet[I], opts ...Option) *Machine[I, O] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	m := &Machine[I, O]{
		alpha:   alpha,
		states:  make([][]*Transition[O], 0, c.states),
		initial: -1,
	}
	for i := 0; i < c.states; i++ {
		m.AddState()
	}

	return m
}

// Alphabet returns the input alphabet of m.
func (m *Machine[I, O]) Alphabet() *alphabet.Alphabet[I] { return m.alpha }

// AddState appends a fresh state without transitions and returns its ID.
func (m *Machine[I, O]) AddState() int {
	m.states = append(m.states, make([]*Transition[O], m.alpha.Size()))

	return len(m.states) - 1
}

// Size returns the number of states.
func (m *Machine[I, O]) Size() int { return len(m.states) }

// SetInitial marks state as the initial state.
func (m *Machine[I, O]) SetInitial(state int) error {
	if !m.hasState(state) {
		return fmt.Errorf("SetInitial(%d): %w", state, ErrStateNotFound)
	}
	m.initial = state

	return nil
}

// Initial returns the initial state and whether one was set.
func (m *Machine[I, O]) Initial() (int, bool) {
	return m.initial, m.initial >= 0
}

// SetTransition defines (or redefines) the transition of src on sym.
//
// Errors:
//   - ErrStateNotFound if src or dst were never added.
//   - ErrUnknownSymbol if sym is outside the alphabet.
func (m *Machine[I, O]) SetTransition(src int, sym I, dst int, out O) error {
	if !m.hasState(src) {
		return fmt.Errorf("SetTransition(%d,%v,%d): source: %w", src, sym, dst, ErrStateNotFound)
	}
	if !m.hasState(dst) {
		return fmt.Errorf("SetTransition(%d,%v,%d): target: %w", src, sym, dst, ErrStateNotFound)
	}
	idx, ok := m.alpha.Lookup(sym)
	if !ok {
		return fmt.Errorf("SetTransition(%d,%v,%d): %w", src, sym, dst, ErrUnknownSymbol)
	}
	m.states[src][idx] = &Transition[O]{Successor: dst, Output: out}

	return nil
}

// Complete reports whether every state has a transition for every symbol.
func (m *Machine[I, O]) Complete() bool {
	for _, slots := range m.states {
		for _, t := range slots {
			if t == nil {
				return false
			}
		}
	}

	return true
}

// Validate reports ErrNoInitialState if the machine cannot be run yet.
func (m *Machine[I, O]) Validate() error {
	if m.initial < 0 {
		return ErrNoInitialState
	}

	return nil
}

func (m *Machine[I, O]) hasState(id int) bool {
	return id >= 0 && id < len(m.states)
}
