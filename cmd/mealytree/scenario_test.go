package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mealytree/alphabet"
	"github.com/katalvlaran/mealytree/mealy"
)

func TestParseScenario(t *testing.T) {
	sc, alpha, err := parseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, alpha.Symbols())
	require.Len(t, sc.Traces, 2)
	assert.Equal(t, []string{"x", "y"}, sc.Traces[0].Output)
	require.Len(t, sc.Hypotheses, 3)
	assert.Equal(t, "good", sc.Hypotheses[0].Name)
	assert.False(t, sc.OmitUndefined)
}

func TestParseScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "alphabet: [a"},
		{"empty alphabet", "alphabet: []"},
		{"duplicate symbol", "alphabet: [a, a]"},
		{"unknown trace symbol", "alphabet: [a]\ntraces:\n  - {input: [b], output: [x]}"},
		{"unnamed hypothesis", "alphabet: [a]\nhypotheses:\n  - {states: 1}"},
		{"stateless hypothesis", "alphabet: [a]\nhypotheses:\n  - {name: h, states: 0}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseScenario([]byte(tc.body))
			assert.Error(t, err)
		})
	}
}

func TestParseScenario_ValidationErrorsAreTagged(t *testing.T) {
	_, _, err := parseScenario([]byte("alphabet: [a, a]"))
	assert.ErrorIs(t, err, errScenario)
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)
}

func TestHypothesisMachine(t *testing.T) {
	alpha := alphabet.MustNew("a", "b")

	m, err := Hypothesis{
		Name: "h", States: 2, Initial: 1,
		Transitions: []Transition{{From: 1, Input: "a", To: 0, Output: "x"}},
	}.machine(alpha)
	require.NoError(t, err)
	assert.Equal(t, 1, m.InitialState())
	assert.False(t, m.Complete())

	_, err = Hypothesis{Name: "h", States: 1, Initial: 4}.machine(alpha)
	assert.ErrorIs(t, err, mealy.ErrStateNotFound)

	_, err = Hypothesis{
		Name: "h", States: 1,
		Transitions: []Transition{{Input: "q"}},
	}.machine(alpha)
	assert.ErrorIs(t, err, mealy.ErrUnknownSymbol)
}
