package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/config"
	"github.com/katalvlaran/lvlath/core"
)

func writeTempProblem(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndToGraph(t *testing.T) {
	path := writeTempProblem(t, `
[[node]]
id = "s"
balance = 10

[[node]]
id = "t"
balance = -10

[[edge]]
from = "s"
to = "t"
cost = 2
`)

	pf, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, pf.Node, 2)
	require.Len(t, pf.Edge, 1)

	g, err := pf.ToGraph()
	require.NoError(t, err)

	e, ok := g.Edge("s", "t")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Cost)
	assert.True(t, math.IsInf(e.Capacity, 1), "capacity omitted in TOML must become unbounded")
}

func TestToGraphWithExplicitCapacity(t *testing.T) {
	path := writeTempProblem(t, `
[[node]]
id = "a"
balance = 4

[[node]]
id = "b"
balance = -4

[[edge]]
from = "a"
to = "b"
cost = 1
capacity = 3
`)

	pf, err := config.Load(path)
	require.NoError(t, err)

	g, err := pf.ToGraph()
	require.NoError(t, err)

	e, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Capacity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestToGraphSurfacesCoreErrors(t *testing.T) {
	path := writeTempProblem(t, `
[[node]]
id = "a"
balance = 4

[[edge]]
from = "a"
to = "missing"
cost = 1
`)

	pf, err := config.Load(path)
	require.NoError(t, err)

	_, err = pf.ToGraph()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}
