// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Machine, Transition, options and sentinel errors.
// Determinism:
//   - States are dense ints assigned in creation order starting at 0.
//   - Transition slots are indexed by alphabet index.
// Concurrency:
//   - Machine is not synchronized. Build it first, then share it read-only.

package mealy

import (
	"errors"

	"github.com/katalvlaran/mealytree/alphabet"
)

// Sentinel errors for Machine operations.
var (
	// ErrStateNotFound indicates an operation referenced a state that was never added.
	ErrStateNotFound = errors.New("mealy: state not found")

	// ErrNoInitialState indicates the machine has no initial state yet.
	ErrNoInitialState = errors.New("mealy: no initial state")

	// ErrUnknownSymbol indicates an input symbol outside the machine's alphabet.
	ErrUnknownSymbol = errors.New("mealy: symbol not in alphabet")
)

// Transition is a defined transition of a Machine.
type Transition[O any] struct {
	// Successor is the target state ID.
	Successor int

	// Output is the output emitted on this transition.
	Output O
}

// Option configures a Machine before states are added.
type Option func(*config)

type config struct {
	states int
}

// WithStates pre-allocates n states with IDs 0..n-1.
// Panics on negative n.
func WithStates(n int) Option {
	if n < 0 {
		panic("mealy: WithStates(n<0)")
	}
	return func(c *config) { c.states = n }
}

// Machine is a deterministic, possibly partial Mealy machine over a fixed
// alphabet. Each state owns one transition slot per alphabet symbol; a nil
// slot means the transition is undefined.
type Machine[I comparable, O any] struct {
	alpha   *alphabet.Alphabet[I]
	states  [][]*Transition[O] // state ID → slot per symbol index
	initial int                // initial state ID, -1 if unset
}
