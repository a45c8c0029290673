// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over configuration and catalog sizes.

package core

// GraphStats is a read-only snapshot of a Graph's configuration and size.
type GraphStats struct {
	VertexCount int  `json:"vertex_count"`
	EdgeCount   int  `json:"edge_count"`
	StrictCosts bool `json:"strict_costs"`
}

// StrictCosts reports whether AddEdge rejects negative costs.
func (g *Graph) StrictCosts() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strictCosts
}

// Stats returns a consistent snapshot taken under a single read lock.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		StrictCosts: g.strictCosts,
	}
}
