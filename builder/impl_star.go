// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_star.go - Star(n): fixed center "Center" plus leaves 0..n-2, edges Center→leaf.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	// StarCenter is the fixed name of the hub vertex created by Star.
	StarCenter = "Center"
)

// Star returns a Constructor that builds a star with n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(StarCenter); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, StarCenter, err)
		}
		if err := addVertices(g, cfg, methodStar, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, methodStar, StarCenter, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
