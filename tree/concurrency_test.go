// Package tree_test verifies the single-writer discipline of tree.Synchronized.
package tree_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mealytree/alphabet"
	"github.com/katalvlaran/mealytree/mealy"
	"github.com/katalvlaran/mealytree/tree"
)

// binaryWord spells i in base 2 over {a=0,b=1}, fixed width.
func binaryWord(i, width int) []string {
	word := make([]string, width)
	for k := width - 1; k >= 0; k-- {
		if i&1 == 1 {
			word[k] = SymB
		} else {
			word[k] = SymA
		}
		i >>= 1
	}

	return word
}

// TestSynchronized_ConcurrentInsertAndRead mixes writers and readers to verify
// no races occur and every trace is recorded exactly once.
func TestSynchronized_ConcurrentInsertAndRead(t *testing.T) {
	const width = 8
	const num = 1 << width

	s := tree.NewSynchronized[string, string](ab())
	outputOf := func(word []string) []string {
		out := make([]string, len(word))
		for i, sym := range word {
			out[i] = sym + strconv.Itoa(i)
		}
		return out
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*num)
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			word := binaryWord(id, width)
			errs <- s.Insert(word, outputOf(word))
		}(i)
		go func(id int) {
			defer wg.Done()
			word := binaryWord(id, width)
			if ok, out := s.Lookup(word); ok {
				// A completed insertion must be visible with its outputs.
				if len(out) != width {
					errs <- assert.AnError
				}
			}
			_ = s.HasDefinitiveInformation(word[:width/2])
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Full binary tree of depth width: 2^(width+1)-1 nodes.
	assert.Equal(t, 1<<(width+1)-1, s.Size())
	for i := 0; i < num; i++ {
		word := binaryWord(i, width)
		ok, out := s.Lookup(word)
		require.True(t, ok)
		require.Equal(t, outputOf(word), out)
	}
}

func TestSynchronized_ConcurrentSearches(t *testing.T) {
	s := tree.NewSynchronized[string, string](ab())
	m := toggle(t)
	require.NoError(t, s.Insert(w("abab"), w("xxyy")))

	var wg sync.WaitGroup
	results := make([][]string, 16)
	wg.Add(len(results))
	for i := range results {
		go func(slot int) {
			defer wg.Done()
			_ = s.Read(func(b *tree.Builder[string, string]) error {
				word, _ := tree.FindSeparatingWord[int, *mealy.Transition[string]](b, m, alphabet.MustNew(SymA, SymB).Symbols(), false)
				results[slot] = word
				return nil
			})
		}(i)
	}
	wg.Wait()

	// toggle emits x x y y on abab, so every search agrees.
	for _, r := range results {
		assert.Nil(t, r)
	}
}
