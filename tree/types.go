// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Arena storage (NodeID, slot), Builder struct, sentinel errors, ConflictError.
// Determinism:
//   - NodeIDs are assigned in creation order; the root is always RootID (0).
// Concurrency:
//   - Builder is NOT synchronized. Use Synchronized for shared access.
// AI-HINT (file):
//   - A slot is either empty (defined == false) or a recorded edge. Recorded edges
//     are never rewritten.
//   - Branch on conflicts with errors.Is(err, ErrConflict); extract details with
//     errors.As(err, &ce) where ce is *ConflictError[O].

package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mealytree/alphabet"
)

// Sentinel errors for tree operations.
var (
	// ErrConflict indicates an inserted trace contradicts a previously recorded one.
	ErrConflict = errors.New("tree: conflicting output")

	// ErrLengthMismatch indicates input and output traces of different lengths.
	ErrLengthMismatch = errors.New("tree: input/output length mismatch")
)

// NodeID addresses a node in the builder's arena.
type NodeID int

// RootID is the node representing the initial state.
const RootID NodeID = 0

// slot is one outgoing position of a node. Slots live in a flat arena:
// the slot of node n for symbol index i is slots[int(n)*arity+i].
type slot[O comparable] struct {
	output  O      // recorded output, immutable once defined
	target  NodeID // exclusively owned child node
	defined bool   // false means no edge for this symbol
}

// Builder accumulates input/output traces into a tree-shaped partial
// deterministic transducer.
//
// Every node except the root has exactly one incoming edge, so the structure is
// an out-tree rooted at RootID. Nodes are created lazily, one per previously
// unseen prefix, and never removed.
type Builder[I comparable, O comparable] struct {
	alpha *alphabet.Alphabet[I]
	arity int       // alpha.Size(), cached
	slots []slot[O] // node-major arena, len == nodes*arity
	depth int       // length of the longest recorded prefix
}

// ConflictError reports the first position at which an inserted trace
// disagrees with the recorded tree.
type ConflictError[O any] struct {
	// Position is the zero-based index of the diverging symbol in the trace.
	Position int

	// Recorded is the output already stored for that prefix.
	Recorded O

	// Observed is the output presented by the rejected trace.
	Observed O
}

// Error implements error.
func (e *ConflictError[O]) Error() string {
	return fmt.Sprintf("%s at position %d: recorded %v, observed %v",
		ErrConflict.Error(), e.Position, e.Recorded, e.Observed)
}

// Is makes errors.Is(err, ErrConflict) succeed for any ConflictError.
func (e *ConflictError[O]) Is(target error) bool { return target == ErrConflict }
