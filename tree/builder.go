// File: builder.go
// Role: Construction, insertion engine and query engine.
// Determinism:
//   - New nodes are appended to the arena in trace order.
// Concurrency:
//   - Insert mutates; Lookup/HasDefinitiveInformation only read.
//     Callers serialize Insert against everything else.

package tree

import (
	"fmt"

	"github.com/katalvlaran/mealytree/alphabet"
)

// New creates a Builder over alpha containing only the root node.
// The alphabet is referenced, never copied.
//
// Complexity: O(|alpha|).
func New[I comparable, O comparable](alpha *alphabet.Alphabet[I]) *Builder[I, O] {
	if alpha == nil {
		panic("tree: New(nil alphabet)")
	}
	b := &Builder[I, O]{
		alpha: alpha,
		arity: alpha.Size(),
	}
	b.newNode() // root, always RootID

	return b
}

// Alphabet returns the input alphabet the builder was created with.
func (b *Builder[I, O]) Alphabet() *alphabet.Alphabet[I] { return b.alpha }

// Size returns the number of nodes, including the root.
func (b *Builder[I, O]) Size() int { return len(b.slots) / b.arity }

// Depth returns the length of the longest prefix recorded so far.
func (b *Builder[I, O]) Depth() int { return b.depth }

// Insert records the trace (input, output) in the tree.
//
// Implementation:
//   - Stage 1: Reject traces of unequal length (ErrLengthMismatch) and resolve
//     every input symbol to its index. Unknown symbols panic here, before any
//     mutation.
//   - Stage 2: Walk from the root. A missing edge is created together with a
//     fresh child; an existing edge must carry the same output, otherwise the
//     walk stops with *ConflictError.
//
// Behavior highlights:
//   - Re-inserting a known trace is a no-op.
//   - Not transactional, and it does not need to be: a conflict can only arise
//     along an already recorded path, because a freshly created node has no
//     edges yet. A rejected trace therefore leaves the tree untouched.
//   - An existing edge's output is never modified.
//
// Errors:
//   - ErrLengthMismatch (wrapped) if len(input) != len(output).
//   - *ConflictError[O] (errors.Is ErrConflict) at the first divergent position.
//
// Complexity:
//   - Time O(len(input)), Space O(new nodes · |alphabet|).
func (b *Builder[I, O]) Insert(input []I, output []O) error {
	// 1) Validate shape and symbols
	if len(input) != len(output) {
		return fmt.Errorf("Insert: %d inputs, %d outputs: %w", len(input), len(output), ErrLengthMismatch)
	}
	idxs := b.indices(input)

	// 2) Walk and extend
	curr := RootID
	for pos, symIdx := range idxs {
		s := b.slotAt(curr, symIdx)
		if !s.defined {
			curr = b.attach(curr, symIdx, output[pos])
		} else {
			if s.output != output[pos] {
				return &ConflictError[O]{Position: pos, Recorded: s.output, Observed: output[pos]}
			}
			curr = s.target
		}
	}
	b.noteDepth(len(idxs))

	return nil
}

// Lookup walks word from the root and collects the recorded outputs.
//
// It returns matched == true if every symbol had a recorded edge. Otherwise
// matched is false and outputs holds the outputs of the longest known prefix.
// Lookup never fails; a symbol outside the alphabet panics.
//
// Complexity: O(len(word)).
func (b *Builder[I, O]) Lookup(word []I) (bool, []O) {
	outputs := make([]O, 0, len(word))
	curr := RootID
	for _, sym := range word {
		s := b.slotAt(curr, b.alpha.Index(sym))
		if !s.defined {
			return false, outputs
		}
		outputs = append(outputs, s.output)
		curr = s.target
	}

	return true, outputs
}

// HasDefinitiveInformation reports whether the outputs for every prefix of
// word are recorded.
//
// Complexity: O(len(word)), no allocations.
func (b *Builder[I, O]) HasDefinitiveInformation(word []I) bool {
	curr := RootID
	for _, sym := range word {
		s := b.slotAt(curr, b.alpha.Index(sym))
		if !s.defined {
			return false
		}
		curr = s.target
	}

	return true
}

// indices resolves input to alphabet indices, panicking on unknown symbols.
func (b *Builder[I, O]) indices(input []I) []int {
	idxs := make([]int, len(input))
	for i, sym := range input {
		idxs[i] = b.alpha.Index(sym)
	}

	return idxs
}

// slotAt returns a copy of the slot of node for symbol index symIdx.
func (b *Builder[I, O]) slotAt(node NodeID, symIdx int) slot[O] {
	return b.slots[int(node)*b.arity+symIdx]
}

// newNode appends an empty slot row and returns the new node's ID.
func (b *Builder[I, O]) newNode() NodeID {
	id := NodeID(len(b.slots) / b.arity)
	b.slots = append(b.slots, make([]slot[O], b.arity)...)

	return id
}

// attach creates a child of parent reached via symIdx, emitting out.
// The parent slot must be empty.
func (b *Builder[I, O]) attach(parent NodeID, symIdx int, out O) NodeID {
	child := b.newNode() // may reallocate slots; index afterwards
	b.slots[int(parent)*b.arity+symIdx] = slot[O]{output: out, target: child, defined: true}

	return child
}

func (b *Builder[I, O]) noteDepth(n int) {
	if n > b.depth {
		b.depth = n
	}
}
