// Package tree implements an incremental, tree-shaped partial Mealy machine
// builder.
//
// What:
//
//   - Builder accumulates observed input/output traces into an out-tree whose
//     nodes have one edge slot per alphabet symbol. Every edge records the
//     output observed when taking that symbol after the unique path leading to
//     its source node.
//   - Insert extends the tree and rejects traces that contradict recorded
//     outputs with a *ConflictError pinpointing the first divergent position.
//   - Lookup and HasDefinitiveInformation answer what is known about a word.
//   - FindSeparatingWord compares the recorded knowledge with any
//     ts.Deterministic transducer and returns the depth-first first input word
//     on which they disagree.
//   - TransitionSystem and Graph project the tree onto the ts contracts.
//
// Why:
//
//   - Active automata learning and model-based testing repeatedly ask whether a
//     hypothesis still agrees with every observation made so far. The tree
//     answers that question by exploring only recorded edges.
//
// Storage:
//
//   - Nodes live in a flat arena of slots addressed by NodeID; the root is
//     RootID. No back-pointers, no shared children, no deletions.
//
// Concurrency:
//
//   - Builder is not synchronized. Readers may run concurrently with each
//     other, never with Insert. Synchronized packages that discipline behind a
//     sync.RWMutex.
//
// Errors:
//
//   - ErrConflict         (via *ConflictError) contradicting observation.
//   - ErrLengthMismatch   input and output traces differ in length.
//   - Symbols outside the alphabet are contract violations and panic.
//
// Complexity:
//
//   - Insert, Lookup, HasDefinitiveInformation: O(len(word)).
//   - FindSeparatingWord: O(Size() · len(inputs)) time, O(Depth()) stack.
//   - Graph().Nodes(): O(Size() · |alphabet|).
package tree
