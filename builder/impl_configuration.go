// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_configuration.go - implementation of ConfigurationModel(degreeDist).
//
// Canonical model: the classical configuration model (stub matching).
// degreeDist[d] is the number of nodes that get degree d.
//
//  1. n = Σ degreeDist[d]; shuffle the ids 0..n-1.
//  2. For d ascending, pop degreeDist[d] ids off the end of the shuffled list
//     and append each popped id d times to the stub list.
//  3. Shuffle the stub list, then pop two stubs at a time and join them.
//
// Self-loops and parallel edges are neither rejected nor corrected.
//
// Contract:
//   - every entry ≥ 0, Σ degreeDist ≥ 1, Σ d·degreeDist[d] even (else ErrInvalidDegreeDist).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - The graph must allow loops and multi-edges whenever stubs exist
//     (else ErrUnsupportedGraphMode).
//
// Complexity: O(n + S) time and space, S = stub count.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const methodConfigurationModel = "ConfigurationModel"

// StubCount returns Σ d·degreeDist[d].
func StubCount(degreeDist []int) int {
	stubs := 0
	for d, count := range degreeDist {
		stubs += d * count
	}
	return stubs
}

// NodeCount returns Σ degreeDist[d].
func NodeCount(degreeDist []int) int {
	n := 0
	for _, count := range degreeDist {
		n += count
	}
	return n
}

// ValidateDegreeDist checks the configuration-model invariants without
// building anything. Ensembles call it at construction time.
func ValidateDegreeDist(degreeDist []int) error {
	for d, count := range degreeDist {
		if count < 0 {
			return fmt.Errorf("%s: degreeDist[%d]=%d < 0: %w", methodConfigurationModel, d, count, ErrInvalidDegreeDist)
		}
	}
	if NodeCount(degreeDist) < 1 {
		return fmt.Errorf("%s: no nodes: %w", methodConfigurationModel, ErrInvalidDegreeDist)
	}
	if s := StubCount(degreeDist); s%2 != 0 {
		return fmt.Errorf("%s: stub sum %d is odd: %w", methodConfigurationModel, s, ErrInvalidDegreeDist)
	}

	return nil
}

// ConfigurationModel returns a Constructor that samples the configuration
// model for degreeDist. The slice is copied; later caller edits have no effect.
func ConfigurationModel(degreeDist []int) Constructor {
	dd := append([]int(nil), degreeDist...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := ValidateDegreeDist(dd); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodConfigurationModel, ErrNeedRandSource)
		}
		stubCount := StubCount(dd)
		if stubCount > 0 && (!g.Looped() || !g.Multigraph()) {
			return fmt.Errorf("%s: loops and multi-edges must be enabled: %w",
				methodConfigurationModel, ErrUnsupportedGraphMode)
		}

		n := NodeCount(dd)
		base := addNodes(g, n)
		rng := cfg.rng

		shuffled := make([]int, n)
		for i := range shuffled {
			shuffled[i] = base + i
		}
		rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		stubs := make([]int, 0, stubCount)
		for d, count := range dd {
			for k := 0; k < count; k++ {
				id := shuffled[len(shuffled)-1]
				shuffled = shuffled[:len(shuffled)-1]
				for r := 0; r < d; r++ {
					stubs = append(stubs, id)
				}
			}
		}
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		for len(stubs) > 0 {
			a := stubs[len(stubs)-1]
			b := stubs[len(stubs)-2]
			stubs = stubs[:len(stubs)-2]
			w := weightFor(cfg)
			if _, err := g.AddEdge(a, b, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodConfigurationModel, a, b, w, err)
			}
		}

		return nil
	}
}
