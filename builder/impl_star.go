// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first appended node is the center; edges center-leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := addNodes(g, n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			w := weightFor(cfg)
			if _, err := g.AddEdge(center, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodStar, center, leaf, w, err)
			}
		}

		return nil
	}
}
