package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Searches, 2)
	assert.Equal(t, config.Search{Name: "part1", MinRun: 0, MaxRun: 3}, cfg.Searches[0])
	assert.Equal(t, config.Search{Name: "part2", MinRun: 4, MaxRun: 10}, cfg.Searches[1])
}

func TestParse(t *testing.T) {
	doc := `
grid: input.txt
concurrency: 3
searches:
  - name: tight
    min_run: 1
    max_run: 2
    start: {x: 1, y: 2}
    target: {x: 4, y: 4}
    max_cost: 500
    path: true
logging:
  level: debug
  format: json
metrics:
  file: out.prom
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "input.txt", cfg.Grid)
	assert.Equal(t, 3, cfg.Concurrency)
	require.Len(t, cfg.Searches, 1)
	s := cfg.Searches[0]
	assert.Equal(t, "tight", s.Name)
	assert.Equal(t, 1, s.MinRun)
	assert.Equal(t, 2, s.MaxRun)
	assert.Equal(t, &config.Point{X: 1, Y: 2}, s.Start)
	assert.Equal(t, &config.Point{X: 4, Y: 4}, s.Target)
	require.NotNil(t, s.MaxCost)
	assert.Equal(t, int64(500), *s.MaxCost)
	assert.True(t, s.Path)
	assert.Equal(t, config.Logging{Level: "debug", Format: "json"}, cfg.Logging)
	assert.Equal(t, "out.prom", cfg.Metrics.File)
	assert.Equal(t, "crucible", cfg.Metrics.Namespace, "namespace keeps its default")
}

func TestParse_EmptyUsesDefaults(t *testing.T) {
	for _, doc := range []string{"", "   \n", "# nothing here\n", "grid: g.txt\n"} {
		cfg, err := config.Parse(strings.NewReader(doc))
		require.NoError(t, err, "doc %q", doc)
		assert.Equal(t, config.Default().Searches, cfg.Searches)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"MinAboveMax", "searches: [{name: a, min_run: 4, max_run: 3}]", "MaxRun must be >= MinRun"},
		{"ZeroMaxRun", "searches: [{name: a, min_run: 0, max_run: 0}]", "MaxRun"},
		{"NegativeMinRun", "searches: [{name: a, min_run: -1, max_run: 3}]", "MinRun"},
		{"MissingName", "searches: [{min_run: 0, max_run: 3}]", "Name is required"},
		{"DuplicateName", "searches: [{name: a, max_run: 3}, {name: a, max_run: 4}]", "unique"},
		{"NegativeStart", "searches: [{name: a, max_run: 3, start: {x: -1, y: 0}}]", "Start.X"},
		{"NegativeMaxCost", "searches: [{name: a, max_run: 3, max_cost: -5}]", "MaxCost"},
		{"BadLevel", "logging: {level: loud, format: json}", "Level must be one of"},
		{"UnknownKey", "searchs: []", "searchs"},
		{"NotYAML", "searches: [", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crucible.yaml")
	require.NoError(t, os.WriteFile(path, []byte("searches: [{name: only, min_run: 2, max_run: 5}]\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Searches, 1)
	assert.Equal(t, "only", cfg.Searches[0].Name)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
