// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Edge costs are ignored: BFS answers "which vertices can be reached at all,
// and in how many edges", which is the reachability half of a shortest-path
// query. Outgoing edges are followed in insertion order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// queueItem pairs a vertex name with its BFS depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, ctx.Err() on cancellation, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

// enqueue marks name visited at depth d, records its parent and queues it.
func (w *walker) enqueue(name string, d int, parent string) {
	w.visited[name] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors queues every unseen target of item's outgoing edges,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Edges(item.name)
	if err != nil {
		return fmt.Errorf("bfs: edges of %q: %w", item.name, err)
	}
	for _, e := range edges {
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.name)
		}
	}

	return nil
}
