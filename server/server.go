// SPDX-License-Identifier: MIT
//
// Package server exposes registered graphs and shortest-path queries over HTTP.
//
// Routes:
//
//	POST   /graphs                    create a graph from a JSON definition
//	GET    /graphs                    list graphs
//	GET    /graphs/:id                graph summary
//	DELETE /graphs/:id                drop a graph
//	POST   /graphs/:id/vertices       add a vertex   {"name": "A"}
//	POST   /graphs/:id/edges          add an edge    {"from","to","cost","one_way"}
//	GET    /graphs/:id/path?from=&to= cheapest path
//	GET    /graphs/:id/reachable?from=[&max_depth=] hop-count reachability
package server

import (
	"errors"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v3"
	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/config"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/logging"
)

// createRequest is the body of POST /graphs.
type createRequest struct {
	Name string `json:"name"`
	config.GraphFile
}

// vertexRequest is the body of POST /graphs/:id/vertices.
type vertexRequest struct {
	Name string `json:"name"`
}

// pathResponse is the body returned by GET /graphs/:id/path.
type pathResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Reachable bool            `json:"reachable"`
	TotalCost *int64          `json:"total_cost"`
	Steps     []dijkstra.Step `json:"steps"`
}

// New returns a fiber app serving reg.
func New(reg *Registry) *fiber.App {
	app := fiber.New()
	h := &handlers{reg: reg}

	// ── Graphs ────────────────────────────────────────────────────────
	app.Post("/graphs", h.createGraph)
	app.Get("/graphs", h.listGraphs)
	app.Get("/graphs/:id", h.getGraph)
	app.Delete("/graphs/:id", h.deleteGraph)

	// ── Mutation ──────────────────────────────────────────────────────
	app.Post("/graphs/:id/vertices", h.addVertex)
	app.Post("/graphs/:id/edges", h.addEdge)

	// ── Queries ───────────────────────────────────────────────────────
	app.Get("/graphs/:id/path", h.path)
	app.Get("/graphs/:id/reachable", h.reachable)

	return app
}

type handlers struct {
	reg *Registry
}

func (h *handlers) createGraph(c fiber.Ctx) error {
	var req createRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	g, err := req.Build()
	if err != nil {
		return fail(c, err)
	}
	id := h.reg.Add(req.Name, g)
	logging.Infof("created graph %s (%q): %d vertices, %d edges", id, req.Name, g.VertexCount(), g.EdgeCount())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id.String()})
}

func (h *handlers) listGraphs(c fiber.Ctx) error {
	return c.JSON(h.reg.List())
}

func (h *handlers) getGraph(c fiber.Ctx) error {
	s, err := h.reg.Summary(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(s)
}

func (h *handlers) deleteGraph(c fiber.Ctx) error {
	if err := h.reg.Remove(c.Params("id")); err != nil {
		return fail(c, err)
	}
	logging.Infof("deleted graph %s", c.Params("id"))

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handlers) addVertex(c fiber.Ctx) error {
	var req vertexRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	err := h.reg.With(c.Params("id"), func(g *core.Graph) error {
		return g.AddVertex(req.Name)
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": req.Name})
}

func (h *handlers) addEdge(c fiber.Ctx) error {
	var req config.EdgeSpec
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	err := h.reg.With(c.Params("id"), func(g *core.Graph) error {
		return config.ApplyEdge(g, req)
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

func (h *handlers) path(c fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from and to are required"})
	}

	tlog := logging.NewTimeLog()
	var res *dijkstra.ShortestPathResult
	err := h.reg.With(c.Params("id"), func(g *core.Graph) error {
		var err error
		res, err = dijkstra.CalculateShortestPath(g, from, to, dijkstra.WithContext(c.Context()))
		return err
	})
	if err != nil {
		return fail(c, err)
	}

	resp := pathResponse{From: from, To: to, Reachable: res.Reachable(), Steps: res.Steps}
	if res.Reachable() {
		cost := res.TotalCost()
		resp.TotalCost = &cost
		tlog.Debugf("path %s→%s on %s: cost %s", from, to, c.Params("id"), humanize.Comma(cost))
	} else {
		tlog.Debugf("path %s→%s on %s: unreachable", from, to, c.Params("id"))
	}

	return c.JSON(resp)
}

func (h *handlers) reachable(c fiber.Ctx) error {
	from := c.Query("from")
	if from == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from is required"})
	}
	opts := []bfs.Option{bfs.WithContext(c.Context())}
	if raw := c.Query("max_depth"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "max_depth must be an integer"})
		}
		opts = append(opts, bfs.WithMaxDepth(depth))
	}

	var res *bfs.BFSResult
	err := h.reg.With(c.Params("id"), func(g *core.Graph) error {
		var err error
		res, err = bfs.BFS(g, from, opts...)
		return err
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(res)
}

// fail maps domain errors to HTTP statuses.
func fail(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrGraphNotFound),
		errors.Is(err, core.ErrVertexNotFound),
		errors.Is(err, bfs.ErrStartVertexNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, core.ErrDuplicateVertex):
		status = fiber.StatusConflict
	case errors.Is(err, core.ErrNegativeCost):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, core.ErrEmptyVertexName),
		errors.Is(err, bfs.ErrOptionViolation),
		errors.Is(err, config.ErrInvalidGraphFile):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		logging.Errorf("request %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
