// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, RNG state and constructor order give identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
//
// Constructors append their own nodes, so composing two constructors yields
// a disjoint union.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of their costs.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                  simple path P_n (n ≥ 2).
// Cycle(n)                 simple cycle C_n (n ≥ 3).
// Star(n)                  star K_{1,n-1}, center is the first node (n ≥ 2).
// Complete(n)              complete graph K_n (n ≥ 1).
// RandomSparse(n, p)       Erdős–Rényi G(n,p), simple.
// RandomNM(n, m)           uniform simple graph with exactly m edges.
// RandomMulti(n, m)        m edges with independently uniform endpoints (loops, parallels).
// ConfigurationModel(dd)   stub matching on a degree distribution (loops, parallels).

// addNodes appends n nodes and returns the id of the first.
func addNodes(g *core.Graph, n int) int {
	return g.AddNodes(n)
}

// weightFor draws the weight of the next edge.
func weightFor(cfg builderConfig) float64 {
	return cfg.weightFn(cfg.rng)
}
