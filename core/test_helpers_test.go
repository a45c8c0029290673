// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/require"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// Common costs used across core tests.
const (
	Cost0 = 0
	Cost1 = 1
	Cost2 = 2
	Cost3 = 3
	Cost5 = 5
)

// newTriangle returns A–B(1), B–C(2), A–C(5), all bidirectional.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, name := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(name))
	}
	require.NoError(t, g.AddEdge(VertexA, VertexB, Cost1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Cost2))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Cost5))

	return g
}
