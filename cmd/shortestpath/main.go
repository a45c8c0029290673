// SPDX-License-Identifier: MIT
//
// Command shortestpath loads a TOML graph and prints the cheapest path
// between two vertices.
//
//	shortestpath -graph roads.toml -from A -to C
//	A → B → C (cost 3)
//
// Exit status is 0 when a path exists, 2 when the destination is unreachable
// and 1 on any other error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/shortpath/config"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/logging"
)

const (
	exitOK          = 0
	exitError       = 1
	exitUnreachable = 2
)

const helpMessage = `
shortestpath prints the cheapest path between two vertices of a TOML graph.

Usage: shortestpath -graph <file> -from <vertex> -to <vertex> [options]

      -graph   =string   Graph definition (TOML).
      -from    =string   Start vertex.
      -to      =string   Destination vertex.
      -log     =string   Write log messages to this rotating file.
      -v       (flag)    Verbose: log each settled vertex.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shortestpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpMessage) }

	graphPath := fs.String("graph", "", "")
	from := fs.String("from", "", "")
	to := fs.String("to", "", "")
	logfile := fs.String("log", "", "")
	verbose := fs.Bool("v", false, "")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *graphPath == "" || *from == "" || *to == "" {
		fs.Usage()
		return exitError
	}

	if *verbose {
		logging.SetLogMode(logging.DebugMode)
	} else {
		logging.SetLogMode(logging.WarningMode)
	}
	if *logfile != "" {
		cfg := &logging.Config{Logfile: *logfile}
		cfg.SetLogger()
		defer logging.Shutdown()
	}

	g, err := config.LoadGraph(*graphPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logging.Debugf("loaded %s: %d vertices, %d edges", *graphPath, g.VertexCount(), g.EdgeCount())

	tlog := logging.NewTimeLog()
	res, err := dijkstra.CalculateShortestPath(g, *from, *to,
		dijkstra.WithOnSettle(func(v string, cost int64) {
			logging.Debugf("settled %s at %s", v, humanize.Comma(cost))
		}))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	tlog.Debugf("query %s→%s", *from, *to)

	fmt.Fprintln(stdout, format(res))
	if !res.Reachable() {
		return exitUnreachable
	}

	return exitOK
}

// format renders res with thousands separators in the cost.
func format(res *dijkstra.ShortestPathResult) string {
	path := strings.Join(res.Vertices(), " → ")
	if !res.Reachable() {
		return path + " (unreachable)"
	}

	return fmt.Sprintf("%s (cost %s)", path, humanize.Comma(res.TotalCost()))
}
