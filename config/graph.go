// SPDX-License-Identifier: MIT
//
// Package config loads graphs and server settings from TOML files.
//
// Graph file:
//
//	strict_costs = true
//	vertices = ["A", "B", "C"]
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	cost = 1
//
//	[[edge]]
//	from = "B"
//	to = "C"
//	cost = 2
//	one_way = true
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/shortpath/core"
)

// ErrInvalidGraphFile wraps every failure to decode or apply a graph file.
var ErrInvalidGraphFile = errors.New("config: invalid graph file")

// GraphFile is the TOML layout of a graph definition. The JSON tags let the
// HTTP server accept the same shape as a request body.
type GraphFile struct {
	StrictCosts bool       `toml:"strict_costs" json:"strict_costs"`
	Vertices    []string   `toml:"vertices" json:"vertices"`
	Edges       []EdgeSpec `toml:"edge" json:"edges"`
}

// EdgeSpec describes one [[edge]] table. Edges are bidirectional unless
// OneWay is set.
type EdgeSpec struct {
	From   string `toml:"from" json:"from"`
	To     string `toml:"to" json:"to"`
	Cost   int64  `toml:"cost" json:"cost"`
	OneWay bool   `toml:"one_way" json:"one_way"`
}

// Build constructs a graph from the definition, adding vertices first in
// file order and then edges in file order.
func (f *GraphFile) Build() (*core.Graph, error) {
	var gopts []core.GraphOption
	if f.StrictCosts {
		gopts = append(gopts, core.WithStrictCosts())
	}
	g := core.NewGraph(gopts...)

	for _, name := range f.Vertices {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGraphFile, err)
		}
	}
	for i, e := range f.Edges {
		if err := ApplyEdge(g, e); err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrInvalidGraphFile, i+1, err)
		}
	}

	return g, nil
}

// ApplyEdge adds e to g, honoring OneWay.
func ApplyEdge(g *core.Graph, e EdgeSpec) error {
	var opts []core.EdgeOption
	if e.OneWay {
		opts = append(opts, core.OneWay())
	}

	return g.AddEdge(e.From, e.To, e.Cost, opts...)
}

// DecodeGraph reads a TOML graph definition from r and builds it.
func DecodeGraph(r io.Reader) (*core.Graph, error) {
	var f GraphFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraphFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidGraphFile, undecoded)
	}

	return f.Build()
}

// LoadGraph opens path and decodes it with DecodeGraph.
func LoadGraph(path string) (*core.Graph, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraphFile, err)
	}
	defer fp.Close()

	g, err := DecodeGraph(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
