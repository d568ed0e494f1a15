// Package tree_test contains fixtures shared by the tree tests.
package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mealytree/alphabet"
	"github.com/katalvlaran/mealytree/mealy"
	"github.com/katalvlaran/mealytree/tree"
)

// Common symbols.
const (
	SymA = "a"
	SymB = "b"
)

// ab returns the alphabet {a, b} in that order.
func ab() *alphabet.Alphabet[string] { return alphabet.MustNew(SymA, SymB) }

// w splits a compact word like "aab" into single-character symbols.
func w(s string) []string {
	if s == "" {
		return []string{}
	}

	return strings.Split(s, "")
}

// row is one (src, symbol, dst, output) transition of a fixture machine.
type row struct {
	src int
	sym string
	dst int
	out string
}

// buildMachine builds a Mealy machine over {a,b}; state 0 is initial.
func buildMachine(t *testing.T, states int, rows ...row) *mealy.Machine[string, string] {
	t.Helper()
	m := mealy.New[string, string](ab(), mealy.WithStates(states))
	require.NoError(t, m.SetInitial(0))
	for _, r := range rows {
		require.NoError(t, m.SetTransition(r.src, r.sym, r.dst, r.out))
	}

	return m
}

// toggle is the complete two-state machine
//
//	q0 --a/x--> q1, q0 --b/y--> q0
//	q1 --a/y--> q0, q1 --b/x--> q1
func toggle(t *testing.T) *mealy.Machine[string, string] {
	return buildMachine(t, 2,
		row{0, SymA, 1, "x"}, row{0, SymB, 0, "y"},
		row{1, SymA, 0, "y"}, row{1, SymB, 1, "x"},
	)
}

// separate runs FindSeparatingWord against a Mealy machine over {a,b}.
func separate(b *tree.Builder[string, string], m *mealy.Machine[string, string], omitUndefined bool) ([]string, bool) {
	return tree.FindSeparatingWord[int, *mealy.Transition[string]](b, m, ab().Symbols(), omitUndefined)
}

// alphabetInts returns the alphabet {0, 1, ..., n-1}.
func alphabetInts(n int) *alphabet.Alphabet[int] {
	syms := make([]int, n)
	for i := range syms {
		syms[i] = i
	}

	return alphabet.MustNew(syms...)
}
