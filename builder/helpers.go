// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// connect adds u→v (and v→u unless cfg.oneWay) with the next cost from cfg.costFn.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	cost := cfg.costFn(cfg.rng)

	var opts []core.EdgeOption
	if cfg.oneWay {
		opts = append(opts, core.OneWay())
	}
	if err := g.AddEdge(u, v, cost, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, c=%d): %w", method, u, v, cost, err)
	}

	return nil
}
