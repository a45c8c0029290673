// SPDX-License-Identifier: MIT
//
// Package dijkstra defines the per-query records, the result type and the
// configuration options for point-to-point shortest paths over a core.Graph.

package dijkstra

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// Infinity is the sentinel TotalCost of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to CalculateShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrQueueEmpty indicates Pop was called on an empty PriorityQueue.
	ErrQueueEmpty = errors.New("dijkstra: priority queue is empty")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// PathItem is the scratch record of one vertex during one query.
//
// TotalCost is the best known cost from the source (Infinity until reached)
// and OptimalEdge is the edge that achieved it (nil for the source and for
// unreached vertices). Items are owned by the query that created them.
type PathItem struct {
	Vertex      string
	TotalCost   int64
	OptimalEdge *core.Edge
}

// Reached reports whether the item has a finite cost.
func (p *PathItem) Reached() bool { return p.TotalCost != Infinity }

// Step is one vertex on a reconstructed path.
//
// Via is the edge used to arrive at Vertex; it is nil for the first step.
type Step struct {
	Vertex    string     `json:"vertex"`
	TotalCost int64      `json:"total_cost"`
	Via       *core.Edge `json:"via,omitempty"`
}

// ShortestPathResult is the winning path from source to destination inclusive,
// source first.
//
// When the destination is unreachable, Steps holds a single step for the
// destination whose TotalCost is Infinity. Use Reachable to tell the cases apart.
type ShortestPathResult struct {
	Steps []Step `json:"steps"`
}

// Len returns the number of steps.
func (r *ShortestPathResult) Len() int { return len(r.Steps) }

// TotalCost returns the cumulative cost of the last step, or Infinity if the
// result is empty.
func (r *ShortestPathResult) TotalCost() int64 {
	if len(r.Steps) == 0 {
		return Infinity
	}

	return r.Steps[len(r.Steps)-1].TotalCost
}

// Reachable reports whether a path to the destination exists.
func (r *ShortestPathResult) Reachable() bool { return r.TotalCost() != Infinity }

// Vertices returns the vertex names along the path, source first.
func (r *ShortestPathResult) Vertices() []string {
	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Vertex
	}

	return names
}

// String renders the path as "A → B → C (cost 3)", or "X (unreachable)".
func (r *ShortestPathResult) String() string {
	if !r.Reachable() {
		return strings.Join(r.Vertices(), " → ") + " (unreachable)"
	}

	return strings.Join(r.Vertices(), " → ") + " (cost " + strconv.FormatInt(r.TotalCost(), 10) + ")"
}

// Options configures a CalculateShortestPath call.
//
// Ctx      – checked once per settled vertex; cancellation aborts the query.
// MaxCost  – vertices whose cost exceeds this are never settled. Default Infinity.
// OnSettle – called with each vertex as it is popped from the queue.
type Options struct {
	Ctx      context.Context
	MaxCost  int64
	OnSettle func(vertex string, totalCost int64)
}

// Option represents a functional option for configuring CalculateShortestPath.
type Option func(*Options)

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost stops the search once the cheapest unsettled vertex costs more
// than max. A destination farther than max is reported as unreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnSettle registers a hook invoked for every settled vertex.
func WithOnSettle(fn func(vertex string, totalCost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with no cost cap, a background context and
// a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxCost:  Infinity,
		OnSettle: func(string, int64) {},
	}
}
