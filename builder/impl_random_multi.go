// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_random_multi.go - implementation of RandomMulti(n, m) constructor.
//
// Canonical model: m edges, each endpoint drawn independently and uniformly
// from 0..n-1 (two Intn draws per edge, u first). Loops and parallel edges
// occur naturally and are kept.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); m ≥ 0 (else ErrTooManyEdges).
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   - The graph must allow loops and multi-edges (else ErrUnsupportedGraphMode).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodRandomMulti      = "RandomMulti"
	minRandomMultiVertices = 1
)

// RandomMulti returns a Constructor that samples a uniform random multigraph.
func RandomMulti(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomMultiVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomMulti, n, minRandomMultiVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandomMulti, m, ErrTooManyEdges)
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomMulti, ErrNeedRandSource)
		}
		if m > 0 && (!g.Looped() || !g.Multigraph()) {
			return fmt.Errorf("%s: loops and multi-edges must be enabled: %w", methodRandomMulti, ErrUnsupportedGraphMode)
		}

		base := addNodes(g, n)
		for k := 0; k < m; k++ {
			u := base + cfg.rng.Intn(n)
			v := base + cfg.rng.Intn(n)
			w := weightFor(cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodRandomMulti, u, v, w, err)
			}
		}

		return nil
	}
}
