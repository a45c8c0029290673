// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/shortpath/logging"
)

// DefaultAddress is used when [server] address is empty.
const DefaultAddress = ":8000"

// ServerConfig is the TOML layout of a pathserver configuration file.
//
//	[server]
//	address = ":8000"
//
//	[logging]
//	logfile = "pathserver.log"
//	max_log_size = 500
//	max_log_age = 30
//
//	[graphs]
//	roads = "graphs/roads.toml"
type ServerConfig struct {
	Server  ServerSection     `toml:"server"`
	Logging logging.Config    `toml:"logging"`
	Graphs  map[string]string `toml:"graphs"`
}

// ServerSection holds listener settings.
type ServerSection struct {
	Address string `toml:"address"`
}

// LoadServer decodes the server configuration at path. Relative logfile and
// graph paths are resolved against the directory containing path.
func LoadServer(path string) (*ServerConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config: no server TOML configuration file provided")
	}
	var c ServerConfig
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("config: could not decode TOML config: %w", err)
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if err := c.convertPathsToAbsolute(path); err != nil {
		return nil, err
	}

	return &c, nil
}

// convertPathsToAbsolute rewrites relative paths in place, treating them as
// relative to the config file's own directory.
func (c *ServerConfig) convertPathsToAbsolute(configPath string) error {
	configDir := filepath.Dir(configPath)

	if c.Logging.Logfile != "" {
		abs, err := toAbsolute(c.Logging.Logfile, configDir)
		if err != nil {
			return fmt.Errorf("config: logging.logfile: %w", err)
		}
		c.Logging.Logfile = abs
	}
	for name, p := range c.Graphs {
		abs, err := toAbsolute(p, configDir)
		if err != nil {
			return fmt.Errorf("config: graphs.%s: %w", name, err)
		}
		c.Graphs[name] = abs
	}

	return nil
}

func toAbsolute(p, dir string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}

	return filepath.Abs(filepath.Join(dir, p))
}
