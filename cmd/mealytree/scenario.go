package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mealytree/alphabet"
	"github.com/katalvlaran/mealytree/mealy"
)

// errScenario wraps every scenario validation failure.
var errScenario = errors.New("invalid scenario")

// Scenario is the YAML document consumed by every command.
//
//	alphabet: [a, b]
//	omit_undefined: false
//	traces:
//	  - input:  [a, b]
//	    output: [x, y]
//	hypotheses:
//	  - name: toggle
//	    states: 2
//	    initial: 0
//	    transitions:
//	      - {from: 0, input: a, to: 1, output: x}
type Scenario struct {
	Alphabet      []string     `yaml:"alphabet"`
	OmitUndefined bool         `yaml:"omit_undefined"`
	Traces        []Trace      `yaml:"traces"`
	Hypotheses    []Hypothesis `yaml:"hypotheses"`
}

// Trace is one observed run.
type Trace struct {
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

// Hypothesis describes a Mealy machine to check against the observations.
type Hypothesis struct {
	Name        string       `yaml:"name"`
	States      int          `yaml:"states"`
	Initial     int          `yaml:"initial"`
	Transitions []Transition `yaml:"transitions"`
}

// Transition is one hypothesis transition.
type Transition struct {
	From   int    `yaml:"from"`
	Input  string `yaml:"input"`
	To     int    `yaml:"to"`
	Output string `yaml:"output"`
}

// loadScenario reads and validates the scenario at path.
func loadScenario(path string) (*Scenario, *alphabet.Alphabet[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario: %w", err)
	}

	return parseScenario(data)
}

// parseScenario decodes data and checks that every symbol is in the alphabet,
// so that later tree operations cannot hit their unknown-symbol panics.
func parseScenario(data []byte) (*Scenario, *alphabet.Alphabet[string], error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, nil, fmt.Errorf("parse scenario: %w", err)
	}

	alpha, err := alphabet.New(sc.Alphabet...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errScenario, err)
	}
	for i, tr := range sc.Traces {
		if err := checkSymbols(alpha, tr.Input); err != nil {
			return nil, nil, fmt.Errorf("%w: trace %d: %w", errScenario, i, err)
		}
	}
	for _, h := range sc.Hypotheses {
		if h.Name == "" {
			return nil, nil, fmt.Errorf("%w: hypothesis without name", errScenario)
		}
		if h.States < 1 {
			return nil, nil, fmt.Errorf("%w: hypothesis %q needs at least one state", errScenario, h.Name)
		}
	}

	return &sc, alpha, nil
}

// checkSymbols reports the first symbol of word missing from alpha.
func checkSymbols(alpha *alphabet.Alphabet[string], word []string) error {
	for pos, sym := range word {
		if !alpha.Contains(sym) {
			return fmt.Errorf("symbol %q at position %d not in alphabet", sym, pos)
		}
	}

	return nil
}

// machine builds the Mealy machine described by h.
func (h Hypothesis) machine(alpha *alphabet.Alphabet[string]) (*mealy.Machine[string, string], error) {
	m := mealy.New[string, string](alpha, mealy.WithStates(h.States))
	if err := m.SetInitial(h.Initial); err != nil {
		return nil, fmt.Errorf("hypothesis %q: %w", h.Name, err)
	}
	for _, t := range h.Transitions {
		if err := m.SetTransition(t.From, t.Input, t.To, t.Output); err != nil {
			return nil, fmt.Errorf("hypothesis %q: %w", h.Name, err)
		}
	}

	return m, nil
}
