// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory Graph model used by every algorithm in
// shortpath: named vertices, directed weighted edges, and a small read API.
//
// The Graph G = (V,E) is built incrementally and never shrinks:
//
//   - Vertices are keyed by a unique, non-empty name (AddVertex).
//   - Edges are directed records From→To with an int64 Cost (AddEdge).
//     A bidirectional request (the default) stores two independent records,
//     one in each endpoint's outgoing list.
//   - Vertices live in an arena (insertion-ordered slice + name index), and
//     edges refer to their endpoints by name, so the structure holds no
//     reference cycles.
//
// Configuration Options (GraphOption):
//
//	– WithStrictCosts()
//	    Reject negative edge costs with ErrNegativeCost. Without it negative
//	    costs are stored as given, and shortest-path results over them are
//	    undefined.
//
// EdgeOptions:
//
//	– OneWay()
//	    Store only the From→To record instead of both directions.
//
// Core Methods:
//
//	AddVertex(name string) error                                   // O(1)
//	AddEdge(from, to string, cost int64, opts ...EdgeOption) error // O(1) amortized
//	HasVertex(name string) bool                                    // O(1)
//	Vertices() []string                                            // O(V), insertion order
//	Edges(name string) ([]Edge, error)                             // O(deg(v))
//	AllEdges() []Edge                                              // O(V+E)
//	VertexCount() int / EdgeCount() int                            // O(1)
//	Stats() GraphStats                                             // O(1)
//
// Errors:
//
//	ErrEmptyVertexName - vertex name is "".
//	ErrDuplicateVertex - AddVertex with a name already present.
//	ErrVertexNotFound  - an operation referenced an absent vertex.
//	ErrNegativeCost    - negative cost on a graph built WithStrictCosts().
//
// Concurrency:
//
//	All methods are guarded by one sync.RWMutex, so concurrent readers are
//	safe. Algorithms read the graph through several calls, so callers must
//	not mutate a graph while a query over it is running.
package core
