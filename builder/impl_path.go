// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n nodes; emits edges (i-1)-i for i=1..n-1 in increasing order.
//   - Weight per edge from cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addNodes(g, n)
		for i := 1; i < n; i++ {
			u, v := base+i-1, base+i
			w := weightFor(cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
