package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coalitions/render"
)

const toyScenario = `
name: toy
seats:
  A: 40
  B: 35
  C: 30
  D: 15
partners:
  A: [B, C]
  B: [A, C]
  C: [A, B]
  D: []
`

// executeCommand runs a fresh command tree with args and returns captured stdout.
func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "coalitions", root.Use)

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"evaluate", "network", "plot"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestEvaluateCommand(t *testing.T) {
	path := writeScenario(t, toyScenario)

	out, err := executeCommand("evaluate", "--scenario", path, "--valid")
	require.NoError(t, err)
	assert.Contains(t, out, "A, B, C")
	assert.Contains(t, out, "105")
	assert.NotContains(t, out, " D ")

	out, err = executeCommand("evaluate", "-s", path, "--valid", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "105")
	assert.NotContains(t, out, "75")
}

func TestEvaluateCommand_NoMajority(t *testing.T) {
	path := writeScenario(t, `
seats: {A: 10, B: 10}
partners: {A: [B]}
`)
	out, err := executeCommand("evaluate", "--scenario", path, "--valid")
	require.NoError(t, err)
	assert.Contains(t, out, "No coalition reaches 61 seats.")
}

func TestEvaluateCommand_Errors(t *testing.T) {
	_, err := executeCommand("evaluate")
	require.Error(t, err)

	bad := writeScenario(t, "seats: {A: -1}\npartners: {A: [Z]}\n")
	_, err = executeCommand("evaluate", "--scenario", bad)
	require.Error(t, err)

	good := writeScenario(t, toyScenario)
	_, err = executeCommand("evaluate", "--scenario", good, "--log-level", "loud")
	require.Error(t, err)
}

func TestEvaluateCommand_ConfigFile(t *testing.T) {
	scenario := writeScenario(t, toyScenario)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("evaluate:\n  only_valid: true\nparliament:\n  majority: 71\n"), 0o644))

	out, err := executeCommand("evaluate", "--config", cfg, "--scenario", scenario)
	require.NoError(t, err)
	assert.Contains(t, out, "105")
	assert.Contains(t, out, "75")
	assert.NotContains(t, out, "70")
}

func TestNetworkCommand(t *testing.T) {
	scenario := writeScenario(t, toyScenario)
	dir := t.TempDir()

	dotPath := filepath.Join(dir, "toy.dot")
	out, err := executeCommand("network", "--scenario", scenario, "--out", dotPath, "--dot")
	require.NoError(t, err)
	assert.Contains(t, out, "bloc 1: A, B, C (105 seats)")
	assert.Contains(t, out, "bloc 2: D (15 seats)")

	b, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "graph"))

	svgPath := filepath.Join(dir, "toy.svg")
	_, err = executeCommand("network", "--scenario", scenario, "--out", svgPath)
	require.NoError(t, err)
	b, err = os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestPlotCommand(t *testing.T) {
	scenario := writeScenario(t, toyScenario)
	pngPath := filepath.Join(t.TempDir(), "toy.png")

	_, err := executeCommand("plot", "--scenario", scenario, "--out", pngPath, "--valid", "--maximal")
	require.NoError(t, err)
	b, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

	_, err = executeCommand("plot", "--scenario", scenario)
	require.Error(t, err)

	empty := writeScenario(t, "seats: {A: 10}\npartners: {A: []}\n")
	_, err = executeCommand("plot", "--scenario", empty, "--out", pngPath, "--valid")
	assert.ErrorIs(t, err, render.ErrNoCoalitions)
}
