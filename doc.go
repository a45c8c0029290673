// Package shortpath is an in-memory engine for cheapest-path queries over
// named, weighted graphs.
//
// What is in here?
//
//	core/      Graph with named vertices and costed edges (bidirectional by default)
//	dijkstra/  CalculateShortestPath: point-to-point Dijkstra with a linear-scan selector
//	bfs/       hop-count reachability
//	builder/   deterministic graph fixtures (path, cycle, star, grid, random sparse)
//	config/    TOML graph files and server configuration
//	logging/   severity-gated logging with optional rotating files
//	server/    HTTP API over a registry of graphs
//	cmd/shortestpath, cmd/pathserver executables
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	_ = g.AddVertex("C")
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//
//	res, _ := dijkstra.CalculateShortestPath(g, "A", "C")
//	fmt.Println(res) // A → B → C (cost 3)
//
// An unreachable destination is not an error: the result holds a single
// step for the destination with TotalCost == dijkstra.Infinity.
package shortpath
