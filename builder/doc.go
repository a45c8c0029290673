// SPDX-License-Identifier: MIT
//
// Package builder produces deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs, grids and seeded random sparse graphs.
//
// Every constructor adds its vertices first (so AddEdge never misses an
// endpoint) and then emits edges in a fixed, documented order. Costs come
// from the configured CostFn, which may draw from the seeded RNG; the same
// seed, options and constructor order always yield the same graph.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithCostFn(builder.UniformCostFn(1, 9))},
//	    builder.RandomSparse(8, 0.3),
//	)
//
// Builders are used by tests, benchmarks and examples; they are not needed to
// build graphs by hand.
package builder
