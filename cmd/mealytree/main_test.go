package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
alphabet: [a, b]
traces:
  - input:  [a, b]
    output: [x, y]
  - input:  [b]
    output: [z]
hypotheses:
  - name: good
    states: 2
    initial: 0
    transitions:
      - {from: 0, input: a, to: 1, output: x}
      - {from: 1, input: b, to: 1, output: y}
      - {from: 0, input: b, to: 0, output: z}
  - name: bad
    states: 1
    initial: 0
    transitions:
      - {from: 0, input: a, to: 0, output: x}
      - {from: 0, input: b, to: 0, output: x}
  - name: partial
    states: 1
    initial: 0
    transitions:
      - {from: 0, input: a, to: 0, output: x}
`

// writeScenario stores body in a temp file and returns its path.
func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	stdout, _, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t,
		"good: consistent\n"+
			"bad: separating word a b (recorded x y, hypothesis x x)\n"+
			"partial: separating word a b (recorded x y, hypothesis x)\n",
		stdout)
}

func TestCheck_OmitUndefined(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	stdout, _, err := run(t, "check", "--omit-undefined", path)
	require.NoError(t, err)
	// partial has no b-transitions at all, so nothing it defines disagrees.
	assert.Contains(t, stdout, "partial: consistent\n")
	assert.Contains(t, stdout, "bad: separating word a b")
}

func TestCheck_ConflictingTraces(t *testing.T) {
	path := writeScenario(t, `
alphabet: [a, b]
traces:
  - {input: [a, b], output: [x, y]}
  - {input: [a, b], output: [x, z]}
`)

	_, stderr, err := run(t, "check", path)
	require.ErrorIs(t, err, errConflicts)
	assert.Contains(t, stderr, "trace contradicts earlier observation")
	assert.Contains(t, stderr, "position=1")
}

func TestLookup(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	stdout, _, err := run(t, "lookup", path, "a,b")
	require.NoError(t, err)
	assert.Equal(t, "matched=true outputs=x y\n", stdout)

	stdout, _, err = run(t, "lookup", path, "b,a")
	require.NoError(t, err)
	assert.Equal(t, "matched=false outputs=z\n", stdout)

	_, _, err = run(t, "lookup", path, "c")
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	stdout, _, err := run(t, "graph", path)
	require.NoError(t, err)
	assert.Equal(t,
		"nodes: 4, depth: 2\n"+
			"n0 -a/x-> n1\n"+
			"n0 -b/z-> n3\n"+
			"n1 -b/y-> n2\n",
		stdout)
}

func TestBadLogLevel(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	_, _, err := run(t, "graph", "--log-level", "loud", path)
	assert.Error(t, err)
}

func TestCheck_Testdata(t *testing.T) {
	stdout, _, err := run(t, "check", filepath.Join("testdata", "toggle.yaml"))
	require.NoError(t, err)
	assert.Equal(t,
		"toggle: consistent\n"+
			"constant: separating word a a (recorded x y, hypothesis x x)\n",
		stdout)
}
