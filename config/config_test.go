// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/shortpath/config"
	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainTOML = `
vertices = ["A", "B", "C", "D"]

[[edge]]
from = "A"
to = "B"
cost = 1

[[edge]]
from = "B"
to = "C"
cost = 2
one_way = true
`

func TestDecodeGraph(t *testing.T) {
	g, err := config.DecodeGraph(strings.NewReader(chainTOML))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	require.False(t, g.StrictCosts())
	require.Equal(t, 3, g.EdgeCount())

	fromC, err := g.Edges("C")
	require.NoError(t, err)
	require.Empty(t, fromC)

	fromB, err := g.Edges("B")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{
		{From: "B", To: "A", Cost: 1},
		{From: "B", To: "C", Cost: 2},
	}, fromB)
}

func TestDecodeGraph_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":          `vertices = [`,
		"unknown key":     "vertices = [\"A\"]\ncolour = \"red\"",
		"duplicate":       `vertices = ["A", "A"]`,
		"empty name":      `vertices = [""]`,
		"missing vertex":  "vertices = [\"A\"]\n[[edge]]\nfrom = \"A\"\nto = \"Z\"\ncost = 1",
		"negative strict": "strict_costs = true\nvertices = [\"A\", \"B\"]\n[[edge]]\nfrom = \"A\"\nto = \"B\"\ncost = -1",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.DecodeGraph(strings.NewReader(body))
			require.ErrorIs(t, err, config.ErrInvalidGraphFile)
		})
	}

	_, err := config.DecodeGraph(strings.NewReader(cases["missing vertex"]))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = config.DecodeGraph(strings.NewReader(cases["negative strict"]))
	require.ErrorIs(t, err, core.ErrNegativeCost)
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.toml")
	require.NoError(t, os.WriteFile(path, []byte(chainTOML), 0o644))

	g, err := config.LoadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())

	_, err = config.LoadGraph(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, config.ErrInvalidGraphFile)
}

func TestLoadServer_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathserver.toml")
	body := `
[logging]
logfile = "logs/pathserver.log"
max_log_size = 10

[graphs]
roads = "graphs/roads.toml"
abs = "/srv/graphs/abs.toml"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := config.LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddress, c.Server.Address)
	assert.Equal(t, filepath.Join(dir, "logs", "pathserver.log"), c.Logging.Logfile)
	assert.Equal(t, 10, c.Logging.MaxSize)
	assert.Equal(t, filepath.Join(dir, "graphs", "roads.toml"), c.Graphs["roads"])
	assert.Equal(t, "/srv/graphs/abs.toml", c.Graphs["abs"])
}

func TestLoadServer_Errors(t *testing.T) {
	_, err := config.LoadServer("")
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0o644))
	_, err = config.LoadServer(path)
	require.Error(t, err)
}
