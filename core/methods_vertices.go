// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertices() returns names in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddVertex inserts a new vertex with no edges.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyVertexName).
//   - Stage 2: Under the write lock, reject a duplicate name (ErrDuplicateVertex).
//   - Stage 3: Append the vertex to the arena and index its slot.
//
// Errors:
//   - ErrEmptyVertexName: if name == "".
//   - ErrDuplicateVertex: if name already exists; the graph is unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(name string) error {
	if name == "" {
		return ErrEmptyVertexName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, &vertex{name: name})

	return nil
}

// HasVertex reports whether a vertex with the given name exists (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// Vertices returns all vertex names in insertion order.
// The slice is a fresh copy; callers may modify it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		names[i] = v.name
	}

	return names
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// lookup returns the vertex for name or a wrapped ErrVertexNotFound.
// Caller must hold mu.
func (g *Graph) lookup(name string) (*vertex, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return g.vertices[i], nil
}
