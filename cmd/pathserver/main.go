// SPDX-License-Identifier: MIT
//
// Command pathserver serves shortest-path queries over HTTP.
//
//	pathserver -config pathserver.toml
//
// Graphs listed under [graphs] in the config are loaded at startup.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/shortpath/config"
	"github.com/katalvlaran/shortpath/logging"
	"github.com/katalvlaran/shortpath/server"
)

var (
	configPath = flag.String("config", "", "Server configuration (TOML).")
	httpAddr   = flag.String("http", "", "Listen address; overrides [server] address.")
	verbose    = flag.Bool("verbose", false, "Log at debug level.")
)

func main() {
	flag.Parse()
	if *verbose {
		logging.SetLogMode(logging.DebugMode)
	}

	cfg := &config.ServerConfig{Server: config.ServerSection{Address: config.DefaultAddress}}
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadServer(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *httpAddr != "" {
		cfg.Server.Address = *httpAddr
	}
	cfg.Logging.SetLogger()
	defer logging.Shutdown()

	reg, err := preload(cfg)
	if err != nil {
		logging.Criticalf("%v", err)
		os.Exit(1)
	}

	app := server.New(reg)
	logging.Infof("pathserver listening on %s", cfg.Server.Address)
	if err := app.Listen(cfg.Server.Address); err != nil {
		logging.Criticalf("listen: %v", err)
		os.Exit(1)
	}
}

// preload registers every graph named in cfg.Graphs.
func preload(cfg *config.ServerConfig) (*server.Registry, error) {
	reg := server.NewRegistry()
	for name, path := range cfg.Graphs {
		g, err := config.LoadGraph(path)
		if err != nil {
			return nil, fmt.Errorf("preload %q: %w", name, err)
		}
		id := reg.Add(name, g)
		logging.Infof("loaded graph %q from %s as %s", name, path, id)
	}

	return reg, nil
}
