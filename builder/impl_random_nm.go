// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_random_nm.go - implementation of RandomNM(n, m) constructor.
//
// Canonical model: G(n,m), a simple graph drawn uniformly among all simple
// graphs on n labelled nodes with exactly m edges.
//
// Sampling: Floyd's subset algorithm picks m distinct indices out of the
// n(n-1)/2 unordered pairs with m RNG draws; indices are emitted ascending
// and decoded row-major ({0,1},{0,2},...,{1,2},...).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   - cfg.rng must be non-nil unless m is 0 or the full pair count.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodRandomNM      = "RandomNM"
	minRandomNMVertices = 1
)

// MaxSimpleEdges returns n(n-1)/2, the number of unordered pairs of distinct nodes.
func MaxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// RandomNM returns a Constructor that samples G(n,m).
func RandomNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNMVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomNM, n, minRandomNMVertices, ErrTooFewVertices)
		}
		total := MaxSimpleEdges(n)
		if m < 0 || m > total {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomNM, m, total, ErrTooManyEdges)
		}
		if cfg.rng == nil && m > 0 && m < total {
			return fmt.Errorf("%s: rng is required: %w", methodRandomNM, ErrNeedRandSource)
		}

		base := addNodes(g, n)

		var chosen []int
		if m == total {
			chosen = make([]int, total)
			for k := range chosen {
				chosen[k] = k
			}
		} else {
			// Floyd: for j in [total-m, total) draw t in [0, j]; take t unless taken, else j.
			picked := make(map[int]struct{}, m)
			for j := total - m; j < total; j++ {
				t := cfg.rng.Intn(j + 1)
				if _, dup := picked[t]; dup {
					t = j
				}
				picked[t] = struct{}{}
			}
			chosen = make([]int, 0, m)
			for k := range picked {
				chosen = append(chosen, k)
			}
			sort.Ints(chosen)
		}

		for _, k := range chosen {
			i, j := decodePair(n, k)
			u, v := base+i, base+j
			w := weightFor(cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", methodRandomNM, u, v, w, err)
			}
		}

		return nil
	}
}

// decodePair maps a row-major pair index k to (i, j) with i < j < n.
func decodePair(n, k int) (int, int) {
	i := 0
	for row := n - 1; k >= row; row-- {
		k -= row
		i++
	}

	return i, i + 1 + k
}
