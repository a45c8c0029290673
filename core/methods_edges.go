// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/Edges/AllEdges/EdgeCount.
//
// Determinism:
//   - Edges(name) returns the outgoing list in insertion order.
//   - AllEdges() walks vertices in insertion order, then each outgoing list.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge connects two existing vertices with cost.
//
// Steps:
//  1. Resolve options; bidirectional unless OneWay() is given.
//  2. Under the write lock, resolve both endpoints (ErrVertexNotFound).
//  3. In strict mode reject cost < 0 (ErrNegativeCost).
//  4. Append Edge{from→to} to from's list.
//  5. If bidirectional, append an independent Edge{to→from} to to's list.
//
// Both endpoints are checked before anything is appended, so a failing call
// adds no partial edge. Parallel edges and self-loops are stored as given.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost int64, opts ...EdgeOption) error {
	cfg := edgeConfig{bidirectional: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, err := g.lookup(from)
	if err != nil {
		return err
	}
	dst, err := g.lookup(to)
	if err != nil {
		return err
	}

	if g.strictCosts && cost < 0 {
		return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNegativeCost, from, to, cost)
	}

	src.edges = append(src.edges, Edge{From: from, To: to, Cost: cost})
	g.edgeCount++

	if cfg.bidirectional {
		dst.edges = append(dst.edges, Edge{From: to, To: from, Cost: cost})
		g.edgeCount++
	}

	return nil
}

// Edges returns a copy of the outgoing edges of name, in insertion order.
// Returns ErrVertexNotFound if name is absent.
// Complexity: O(deg⁺(v)).
func (g *Graph) Edges(name string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, len(v.edges))
	copy(out, v.edges)

	return out, nil
}

// AllEdges returns every directed edge record.
// Complexity: O(V+E).
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, v := range g.vertices {
		out = append(out, v.edges...)
	}

	return out
}

// EdgeCount returns the number of directed edge records.
// A bidirectional AddEdge counts twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
