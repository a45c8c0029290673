// SPDX-License-Identifier: MIT
//
// Package dijkstra computes the minimum-cost path between two named vertices
// of a core.Graph with non-negative edge costs.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Every vertex is enqueued once, up front; each Pop scans the queue (O(V)).
//   - Each edge is relaxed at most once, when its source is settled.
//   - Space: O(V) for the PathItems and the queue.
//
// Notes on implementation choices:
//
//   - Relaxation lowers TotalCost on items already in the queue; the queue
//     re-derives the minimum at Pop time, so no decrease-key call exists.
//   - The search stops as soon as the destination is reached and nothing
//     cheaper than it remains, or when only unreachable vertices are left.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// CalculateShortestPath returns the cheapest path from start to dest in g.
//
// Returns:
//
//   - result: steps from start to dest inclusive. If dest is unreachable the
//     result holds one step for dest with TotalCost == Infinity.
//   - err: ErrNilGraph, a wrapped core.ErrVertexNotFound if start or dest is
//     absent, or ctx.Err() if the WithContext context is cancelled.
//
// Preconditions:
//
//   - Edge costs are non-negative. Negative costs are not detected here (build
//     the graph with core.WithStrictCosts to reject them); with them the
//     result is undefined but the call still terminates.
//   - g is not mutated while the call runs.
func CalculateShortestPath(g *core.Graph, start, dest string, opts ...Option) (*ShortestPathResult, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("dijkstra: start %q: %w", start, core.ErrVertexNotFound)
	}
	if !g.HasVertex(dest) {
		return nil, fmt.Errorf("dijkstra: destination %q: %w", dest, core.ErrVertexNotFound)
	}

	// 3) Per-query state, discarded when the call returns
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		dest:    dest,
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// A destination beyond the cost cap counts as unreachable.
	if r.items[dest].TotalCost > cfg.MaxCost {
		return &ShortestPathResult{Steps: []Step{{Vertex: dest, TotalCost: Infinity}}}, nil
	}

	return r.reconstruct(), nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph
	options Options
	start   string
	dest    string

	items map[string]*PathItem // vertex name → its PathItem
	order int                  // |V|, bounds reconstruction
	pq    *PriorityQueue
}

// init creates one PathItem per vertex and enqueues all of them.
func (r *runner) init() {
	vertices := r.g.Vertices()
	r.order = len(vertices)
	r.items = make(map[string]*PathItem, len(vertices))
	r.pq = NewPriorityQueue(len(vertices))

	for _, name := range vertices {
		item := &PathItem{Vertex: name, TotalCost: Infinity}
		if name == r.start {
			item.TotalCost = 0
		}
		r.items[name] = item
		r.pq.Enqueue(item)
	}
}

// process settles vertices in cost order until the destination is final or
// nothing useful is left in the queue.
func (r *runner) process() error {
	destItem := r.items[r.dest]

	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		current, err := r.pq.Pop()
		if err != nil {
			return err
		}

		// Everything left is unreachable.
		if current.TotalCost == Infinity {
			break
		}
		if current.TotalCost > r.options.MaxCost {
			break
		}
		// Destination reached and nothing cheaper remains.
		if current != destItem && destItem.OptimalEdge != nil && current.TotalCost >= destItem.TotalCost {
			break
		}

		r.options.OnSettle(current.Vertex, current.TotalCost)

		// The destination is settled; covers start == dest.
		if current == destItem {
			break
		}

		if err := r.relax(current); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the cost of every neighbour of current that is cheaper to
// reach through current, recording the edge used. Items stay in the queue.
func (r *runner) relax(current *PathItem) error {
	edges, err := r.g.Edges(current.Vertex)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %q: %w", current.Vertex, err)
	}

	for i := range edges {
		e := &edges[i]
		target := r.items[e.To]
		// skip sums that would overflow past the sentinel
		if e.Cost > 0 && current.TotalCost > Infinity-e.Cost {
			continue
		}
		candidate := current.TotalCost + e.Cost
		if candidate < target.TotalCost {
			target.TotalCost = candidate
			target.OptimalEdge = e
		}
	}

	return nil
}

// reconstruct walks OptimalEdge links back from the destination and returns
// the path source first. The walk is capped at |V| steps so that predecessor
// cycles, possible only with negative costs, cannot loop forever.
func (r *runner) reconstruct() *ShortestPathResult {
	var reversed []Step
	item := r.items[r.dest]
	for n := 0; n < r.order; n++ {
		reversed = append(reversed, Step{Vertex: item.Vertex, TotalCost: item.TotalCost, Via: item.OptimalEdge})
		if item.OptimalEdge == nil {
			break
		}
		item = r.items[item.OptimalEdge.From]
	}

	steps := make([]Step, len(reversed))
	for i, s := range reversed {
		steps[len(reversed)-1-i] = s
	}

	return &ShortestPathResult{Steps: steps}
}
