// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/shortpath/core"
)

// ErrGraphNotFound is returned when no graph is registered under an id.
var ErrGraphNotFound = errors.New("server: graph not found")

// Registry holds named graphs keyed by a random id.
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

// entry serializes mutation and queries on one graph.
type entry struct {
	mu      sync.Mutex
	id      uuid.UUID
	name    string
	created time.Time
	graph   *core.Graph
}

// Summary describes a registered graph.
type Summary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	core.GraphStats
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uuid.UUID]*entry)}
}

// Add registers g under a fresh id and returns it.
func (r *Registry) Add(name string, g *core.Graph) uuid.UUID {
	e := &entry{id: uuid.New(), name: name, created: time.Now().UTC(), graph: g}

	r.mu.Lock()
	r.entries[e.id] = e
	r.mu.Unlock()

	return e.id
}

// Remove drops the graph registered under id.
func (r *Registry) Remove(id string) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return ErrGraphNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return ErrGraphNotFound
	}
	delete(r.entries, key)

	return nil
}

// With runs fn on the graph registered under id while holding that graph's lock.
func (r *Registry) With(id string, fn func(g *core.Graph) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.graph)
}

// Summary returns the description of one graph.
func (r *Registry) Summary(id string) (Summary, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Summary{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.summary(), nil
}

// List returns summaries of every graph, oldest first.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].created.Equal(entries[j].created) {
			return entries[i].id.String() < entries[j].id.String()
		}
		return entries[i].created.Before(entries[j].created)
	})

	out := make([]Summary, len(entries))
	for i, e := range entries {
		e.mu.Lock()
		out[i] = e.summary()
		e.mu.Unlock()
	}

	return out
}

func (r *Registry) lookup(id string) (*entry, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrGraphNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return nil, ErrGraphNotFound
	}

	return e, nil
}

func (e *entry) summary() Summary {
	return Summary{ID: e.id.String(), Name: e.name, Created: e.created, GraphStats: e.graph.Stats()}
}
