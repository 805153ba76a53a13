package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/internal/app"
)

const crucibleMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand("test", "none", "today")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_Defaults(t *testing.T) {
	grid := writeFile(t, "input.txt", crucibleMap)
	out, err := run(t, "", "solve", grid)
	require.NoError(t, err)
	assert.Equal(t, "part1: 102\npart2: 94\n", out)
}

func TestSolve_StdinCustomRunsWithPath(t *testing.T) {
	out, err := run(t, "111\n", "solve", "--min-run", "1", "--max-run", "2", "--path", "-")
	require.NoError(t, err)
	assert.Equal(t, "custom: 2\n  path: 0,0 1,0 2,0\n", out)

	out, err = run(t, "111\n", "solve", "--min-run", "4", "--max-run", "10", "-")
	require.NoError(t, err)
	assert.Equal(t, "custom: unreachable\n", out)
}

func TestSolve_ConfigJSONAndMetrics(t *testing.T) {
	grid := writeFile(t, "input.txt", crucibleMap)
	metrics := filepath.Join(t.TempDir(), "crucible.prom")
	cfg := writeFile(t, "crucible.yaml", `
grid: `+grid+`
searches:
  - name: ultra
    min_run: 4
    max_run: 10
metrics:
  file: `+metrics+`
  namespace: heat
`)
	out, err := run(t, "", "--json", "-c", cfg, "solve")
	require.NoError(t, err)

	var outcomes []app.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
	require.Len(t, outcomes, 1)
	assert.Equal(t, "ultra", outcomes[0].Name)
	assert.Equal(t, int64(94), outcomes[0].Cost)
	assert.True(t, outcomes[0].Reachable)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `heat_searches_total{outcome="found",search="ultra"} 1`)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "", "solve")
	assert.ErrorContains(t, err, "no grid file")

	_, err = run(t, "12\n3\n", "solve", "-")
	assert.ErrorContains(t, err, "malformed grid")

	_, err = run(t, "12\n34\n", "solve", "--min-run", "5", "--max-run", "2", "-")
	assert.ErrorContains(t, err, "MaxRun must be >= MinRun")

	_, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "open grid")
}

func TestBaseline(t *testing.T) {
	out, err := run(t, "131\n191\n111\n", "baseline", "-")
	require.NoError(t, err)
	assert.Equal(t, "baseline: 4\n", out)

	out, err = run(t, "191\n999\n991\n", "baseline", "--wall", "9", "-")
	require.NoError(t, err)
	assert.Equal(t, "baseline: unreachable\n", out)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate")
	require.NoError(t, err)
	assert.Equal(t, "config ok: 2 searches\n", out)

	cfg := writeFile(t, "c.yaml", "searches: [{name: far, max_run: 3, target: {x: 5, y: 5}}]\n")
	_, err = run(t, "12\n34\n", "-c", cfg, "validate", "-")
	assert.ErrorContains(t, err, "out of bounds")

	bad := writeFile(t, "bad.yaml", "searches: [{name: x, min_run: 3, max_run: 1}]\n")
	_, err = run(t, "", "-c", bad, "validate")
	assert.ErrorContains(t, err, "invalid configuration")
}
