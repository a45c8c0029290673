// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeSpec is a compact edge description for fixtures.
type edgeSpec struct {
	from, to string
	cost     int64
	oneWay   bool
}

// buildGraph adds vertices in the given order, then the edges.
func buildGraph(t *testing.T, vertices []string, edges []edgeSpec, gopts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(gopts...)
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		var opts []core.EdgeOption
		if e.oneWay {
			opts = append(opts, core.OneWay())
		}
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost, opts...))
	}

	return g
}

func TestCalculateShortestPath_Chain(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []edgeSpec{
		{from: "A", to: "B", cost: 1},
		{from: "B", to: "C", cost: 2},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.True(t, res.Reachable())
	require.Equal(t, []string{"A", "B", "C"}, res.Vertices())
	require.Equal(t, int64(3), res.TotalCost())

	// cumulative costs and arrival edges
	require.Equal(t, int64(0), res.Steps[0].TotalCost)
	require.Nil(t, res.Steps[0].Via)
	require.Equal(t, int64(1), res.Steps[1].TotalCost)
	require.Equal(t, core.Edge{From: "A", To: "B", Cost: 1}, *res.Steps[1].Via)
	require.Equal(t, core.Edge{From: "B", To: "C", Cost: 2}, *res.Steps[2].Via)
	require.Equal(t, "A → B → C (cost 3)", res.String())
}

func TestCalculateShortestPath_DetourBeatsDirectEdge(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []edgeSpec{
		{from: "A", to: "C", cost: 10},
		{from: "A", to: "B", cost: 1},
		{from: "B", to: "C", cost: 1},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Vertices())
	require.Equal(t, int64(2), res.TotalCost())
}

func TestCalculateShortestPath_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "D"}, []edgeSpec{
		{from: "A", to: "B", cost: 1},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.False(t, res.Reachable())
	require.Equal(t, 1, res.Len())
	require.Equal(t, "D", res.Steps[0].Vertex)
	require.Equal(t, dijkstra.Infinity, res.Steps[0].TotalCost)
	require.Nil(t, res.Steps[0].Via)
	require.Equal(t, "D (unreachable)", res.String())
}

func TestCalculateShortestPath_OneWayUnreachableBackwards(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []edgeSpec{
		{from: "A", to: "B", cost: 4, oneWay: true},
	})

	fwd, err := dijkstra.CalculateShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, int64(4), fwd.TotalCost())

	back, err := dijkstra.CalculateShortestPath(g, "B", "A")
	require.NoError(t, err)
	require.False(t, back.Reachable())
}

func TestCalculateShortestPath_SelfPath(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []edgeSpec{
		{from: "A", to: "B", cost: 3},
		{from: "A", to: "A", cost: 7},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Vertices())
	require.Equal(t, int64(0), res.TotalCost())
	require.Nil(t, res.Steps[0].Via)
}

func TestCalculateShortestPath_ZeroCostEdges(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []edgeSpec{
		{from: "A", to: "B", cost: 0},
		{from: "B", to: "C", cost: 0},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Vertices())
	require.Equal(t, int64(0), res.TotalCost())
}

func TestCalculateShortestPath_ParallelEdgesPickCheapest(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []edgeSpec{
		{from: "A", to: "B", cost: 9, oneWay: true},
		{from: "A", to: "B", cost: 2, oneWay: true},
		{from: "A", to: "B", cost: 5, oneWay: true},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, int64(2), res.TotalCost())
	require.Equal(t, int64(2), res.Steps[1].Via.Cost)
}

func TestCalculateShortestPath_Errors(t *testing.T) {
	_, err := dijkstra.CalculateShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := buildGraph(t, []string{"A"}, nil)

	_, err = dijkstra.CalculateShortestPath(g, "Z", "A")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "start")

	_, err = dijkstra.CalculateShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "destination")
}

func TestCalculateShortestPath_Idempotent(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{from: "A", to: "B", cost: 2},
		{from: "B", to: "D", cost: 2},
		{from: "A", to: "C", cost: 1},
		{from: "C", to: "D", cost: 5},
	})

	first, err := dijkstra.CalculateShortestPath(g, "A", "D")
	require.NoError(t, err)
	second, err := dijkstra.CalculateShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, first, second)

	// The graph is not mutated by a query.
	require.Equal(t, core.GraphStats{VertexCount: 4, EdgeCount: 8}, g.Stats())
}

func TestCalculateShortestPath_EqualCostTieIsDeterministic(t *testing.T) {
	// Two routes of cost 2: A→B→D and A→C→D. B is inserted before C, so
	// B settles first and its relaxation of D wins; C's equal offer is ignored.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{from: "A", to: "B", cost: 1},
		{from: "A", to: "C", cost: 1},
		{from: "B", to: "D", cost: 1},
		{from: "C", to: "D", cost: 1},
	})

	for i := 0; i < 5; i++ {
		res, err := dijkstra.CalculateShortestPath(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, res.Vertices())
	}
}

func TestCalculateShortestPath_StopsEarly(t *testing.T) {
	// A→B is cheap; the far cluster behind A→X is expensive and should never
	// be settled once B is final.
	g := buildGraph(t, []string{"A", "B", "X", "Y", "Z"}, []edgeSpec{
		{from: "A", to: "B", cost: 1, oneWay: true},
		{from: "A", to: "X", cost: 50, oneWay: true},
		{from: "X", to: "Y", cost: 1, oneWay: true},
		{from: "Y", to: "Z", cost: 1, oneWay: true},
	})

	var settled []string
	res, err := dijkstra.CalculateShortestPath(g, "A", "B",
		dijkstra.WithOnSettle(func(v string, _ int64) { settled = append(settled, v) }))
	require.NoError(t, err)
	require.Equal(t, int64(1), res.TotalCost())
	require.Equal(t, []string{"A", "B"}, settled)
}

func TestCalculateShortestPath_OnSettleOrderIsNonDecreasing(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithCostFn(builder.UniformCostFn(0, 9))},
		builder.Grid(4, 4))
	require.NoError(t, err)

	var costs []int64
	_, err = dijkstra.CalculateShortestPath(g, builder.GridID(0, 0), builder.GridID(3, 3),
		dijkstra.WithOnSettle(func(_ string, c int64) { costs = append(costs, c) }))
	require.NoError(t, err)
	require.NotEmpty(t, costs)
	for i := 1; i < len(costs); i++ {
		require.LessOrEqual(t, costs[i-1], costs[i])
	}
}

func TestCalculateShortestPath_MaxCost(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []edgeSpec{
		{from: "A", to: "B", cost: 3},
		{from: "B", to: "C", cost: 3},
	})

	within, err := dijkstra.CalculateShortestPath(g, "A", "C", dijkstra.WithMaxCost(6))
	require.NoError(t, err)
	require.Equal(t, int64(6), within.TotalCost())

	beyond, err := dijkstra.CalculateShortestPath(g, "A", "C", dijkstra.WithMaxCost(5))
	require.NoError(t, err)
	require.False(t, beyond.Reachable())
	require.Equal(t, []string{"C"}, beyond.Vertices())

	require.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.WithMaxCost(-1)(&dijkstra.Options{})
	})
}

func TestCalculateShortestPath_CancelledContext(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []edgeSpec{{from: "A", to: "B", cost: 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.CalculateShortestPath(g, "A", "B", dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculateShortestPath_NegativeCostsTerminate(t *testing.T) {
	// A negative cycle B⇄C. The answer is undefined but the call must return.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []edgeSpec{
		{from: "A", to: "B", cost: 1, oneWay: true},
		{from: "B", to: "C", cost: -5, oneWay: true},
		{from: "C", to: "B", cost: -5, oneWay: true},
		{from: "C", to: "D", cost: 1, oneWay: true},
	})

	res, err := dijkstra.CalculateShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.LessOrEqual(t, res.Len(), g.VertexCount())
}

func TestCalculateShortestPath_Symmetric(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithCostFn(builder.UniformCostFn(1, 20))},
		builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	names := g.Vertices()
	for _, a := range names {
		for _, b := range names {
			ab, err := dijkstra.CalculateShortestPath(g, a, b)
			require.NoError(t, err)
			ba, err := dijkstra.CalculateShortestPath(g, b, a)
			require.NoError(t, err)
			require.Equal(t, ab.TotalCost(), ba.TotalCost(), "%s↔%s", a, b)
		}
	}
}

// bellmanFord is a brute-force oracle over all directed edge records.
func bellmanFord(g *core.Graph, src string) map[string]int64 {
	dist := make(map[string]int64)
	for _, v := range g.Vertices() {
		dist[v] = dijkstra.Infinity
	}
	dist[src] = 0
	edges := g.AllEdges()
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range edges {
			if dist[e.From] == dijkstra.Infinity {
				continue
			}
			if d := dist[e.From] + e.Cost; d < dist[e.To] {
				dist[e.To] = d
			}
		}
	}

	return dist
}

func TestCalculateShortestPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		bopts := []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithCostFn(builder.UniformCostFn(0, 15)),
		}
		if seed%2 == 0 {
			bopts = append(bopts, builder.WithOneWay())
		}
		g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(10, 0.25))
		require.NoError(t, err)

		names := g.Vertices()
		for _, src := range names {
			want := bellmanFord(g, src)
			reach, err := bfs.BFS(g, src)
			require.NoError(t, err)

			for _, dst := range names {
				res, err := dijkstra.CalculateShortestPath(g, src, dst)
				require.NoError(t, err)
				require.Equal(t, want[dst], res.TotalCost(), "seed=%d %s→%s", seed, src, dst)
				require.Equal(t, reach.Reached(dst), res.Reachable(), "seed=%d %s→%s", seed, src, dst)
				if res.Reachable() {
					assertValidPath(t, g, res, src, dst)
				}
			}
		}
	}
}

// assertValidPath checks that consecutive steps are joined by real edges and
// that the cumulative costs add up.
func assertValidPath(t *testing.T, g *core.Graph, res *dijkstra.ShortestPathResult, src, dst string) {
	t.Helper()
	require.Equal(t, src, res.Steps[0].Vertex)
	require.Equal(t, dst, res.Steps[res.Len()-1].Vertex)

	for i := 1; i < res.Len(); i++ {
		prev, cur := res.Steps[i-1], res.Steps[i]
		require.NotNil(t, cur.Via)
		require.Equal(t, prev.Vertex, cur.Via.From)
		require.Equal(t, cur.Vertex, cur.Via.To)
		require.Equal(t, prev.TotalCost+cur.Via.Cost, cur.TotalCost)

		edges, err := g.Edges(prev.Vertex)
		require.NoError(t, err)
		require.Contains(t, edges, *cur.Via)
	}
}

func TestCalculateShortestPath_ConcurrentQueries(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3))), builder.WithCostFn(builder.UniformCostFn(1, 5))},
		builder.Grid(5, 5))
	require.NoError(t, err)

	want, err := dijkstra.CalculateShortestPath(g, builder.GridID(0, 0), builder.GridID(4, 4))
	require.NoError(t, err)

	done := make(chan *dijkstra.ShortestPathResult, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := dijkstra.CalculateShortestPath(g, builder.GridID(0, 0), builder.GridID(4, 4))
			if err != nil {
				done <- nil
				return
			}
			done <- res
		}()
	}
	for i := 0; i < 8; i++ {
		require.Equal(t, want, <-done)
	}
}
