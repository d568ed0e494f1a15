// SPDX-License-Identifier: MIT
//
// File: alphabet.go
// Role: Fixed, totally ordered input alphabet with dense symbol indices.
// Determinism:
//   - Index(sym) is the position of sym in the constructor argument list.
//   - Symbols() returns symbols in index order.
// Concurrency:
//   - Immutable after New; safe for concurrent readers without locks.

// Package alphabet provides the finite input alphabet shared by transducers
// and tree builders. Every symbol owns a stable index in 0..Size()-1, and the
// index order is the exploration order of all search algorithms in this module.
package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet construction.
var (
	// ErrEmptyAlphabet indicates New was called without symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")

	// ErrDuplicateSymbol indicates the same symbol was given twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)

// Alphabet is an immutable ordered set of symbols of type I.
type Alphabet[I comparable] struct {
	symbols []I       // index → symbol
	index   map[I]int // symbol → index
}

// New builds an Alphabet whose index order follows the argument order.
//
// Errors:
//   - ErrEmptyAlphabet if no symbols are given.
//   - ErrDuplicateSymbol (wrapped with the offending symbol) on repeats.
//
// Complexity: O(n) time and space.
func New[I comparable](symbols ...I) (*Alphabet[I], error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet[I]{
		symbols: make([]I, len(symbols)),
		index:   make(map[I]int, len(symbols)),
	}
	for i, sym := range symbols {
		if _, dup := a.index[sym]; dup {
			return nil, fmt.Errorf("%w: %v at position %d", ErrDuplicateSymbol, sym, i)
		}
		a.symbols[i] = sym
		a.index[sym] = i
	}

	return a, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew[I comparable](symbols ...I) *Alphabet[I] {
	a, err := New(symbols...)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns the number of symbols.
func (a *Alphabet[I]) Size() int { return len(a.symbols) }

// Symbol returns the symbol at idx. It panics if idx is out of range.
func (a *Alphabet[I]) Symbol(idx int) I { return a.symbols[idx] }

// Lookup returns the index of sym and whether sym belongs to the alphabet.
func (a *Alphabet[I]) Lookup(sym I) (int, bool) {
	idx, ok := a.index[sym]

	return idx, ok
}

// Contains reports whether sym belongs to the alphabet.
func (a *Alphabet[I]) Contains(sym I) bool {
	_, ok := a.index[sym]

	return ok
}

// Index returns the index of sym.
//
// A symbol outside the alphabet is a contract violation of the caller, not a
// recoverable condition, so Index panics instead of returning an error.
// Use Lookup when membership is genuinely unknown.
func (a *Alphabet[I]) Index(sym I) int {
	idx, ok := a.index[sym]
	if !ok {
		panic(fmt.Sprintf("alphabet: symbol %v not in alphabet", sym))
	}

	return idx
}

// Symbols returns a copy of all symbols in index order.
func (a *Alphabet[I]) Symbols() []I {
	out := make([]I, len(a.symbols))
	copy(out, a.symbols)

	return out
}
