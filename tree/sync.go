// File: sync.go
// Role: Single-writer / multi-reader wrapper around Builder.
// Concurrency:
//   - Insert takes the write lock; every other method takes the read lock.
//   - Read(fn) runs fn under the read lock for composite reads such as
//     FindSeparatingWord or graph export.

package tree

import (
	"sync"

	"github.com/katalvlaran/mealytree/alphabet"
)

// Synchronized guards a Builder with a sync.RWMutex so that insertions are
// serialized while lookups and searches proceed concurrently.
type Synchronized[I comparable, O comparable] struct {
	mu sync.RWMutex
	b  *Builder[I, O]
}

// NewSynchronized creates a guarded Builder over alpha.
func NewSynchronized[I comparable, O comparable](alpha *alphabet.Alphabet[I]) *Synchronized[I, O] {
	return &Synchronized[I, O]{b: New[I, O](alpha)}
}

// Insert records a trace under the write lock. See Builder.Insert.
func (s *Synchronized[I, O]) Insert(input []I, output []O) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.Insert(input, output)
}

// Lookup is Builder.Lookup under the read lock.
func (s *Synchronized[I, O]) Lookup(word []I) (bool, []O) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.Lookup(word)
}

// HasDefinitiveInformation is Builder.HasDefinitiveInformation under the read lock.
func (s *Synchronized[I, O]) HasDefinitiveInformation(word []I) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.HasDefinitiveInformation(word)
}

// Size is Builder.Size under the read lock.
func (s *Synchronized[I, O]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.b.Size()
}

// Read runs fn with the underlying Builder while holding the read lock.
// fn must not call Insert on the Builder or retain it after returning.
func (s *Synchronized[I, O]) Read(fn func(b *Builder[I, O]) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.b)
}
