// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors and
//       the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that a vertex name is the empty string.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates AddVertex was called with a name already in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeCost indicates a negative edge cost on a graph built with WithStrictCosts.
	ErrNegativeCost = errors.New("core: negative edge cost")
)

// vertex is a named node together with its outgoing edges.
// edges keeps insertion order; algorithms relax them in that order.
type vertex struct {
	name  string
	edges []Edge
}

// Edge is a directed, weighted connection between two vertices.
//
// From and To are vertex names, not pointers: the Graph owns all vertices and
// edges only identify their endpoints.
type Edge struct {
	// From is the name of the source vertex.
	From string

	// To is the name of the destination vertex.
	To string

	// Cost is the non-negative traversal cost.
	Cost int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithStrictCosts makes AddEdge reject negative costs with ErrNegativeCost.
func WithStrictCosts() GraphOption {
	return func(g *Graph) { g.strictCosts = true }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	bidirectional bool
}

// OneWay stores only the From→To record.
// AddEdge is bidirectional unless this option is given.
func OneWay() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = false }
}

// Bidirectional sets the direction mode explicitly; Bidirectional(true) is the default.
func Bidirectional(on bool) EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = on }
}

// Graph owns all vertices and, transitively, all edges.
//
// vertices is an arena in insertion order; index maps a name to its slot.
// Slots are never reused because the graph supports no deletion.
type Graph struct {
	mu sync.RWMutex // guards everything below

	strictCosts bool // reject negative costs

	vertices  []*vertex
	index     map[string]int
	edgeCount int // number of directed edge records
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
