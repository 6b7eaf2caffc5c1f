// SPDX-License-Identifier: MIT
//
// Package mincut computes global and s-t minimum cut weights of weighted
// multigraphs by delegating to the flow package.
//
// Both entry points first simplify the graph: loops are dropped and the
// weights of parallel edges are summed into one simple edge.
//
// GlobalMinCut pins node 0 as the fixed terminal and takes the minimum s-t
// cut over t = 1..n-1. Any global cut separates node 0 from some other node,
// so the minimum is exact. A disconnected graph short-circuits to 0.
package mincut

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphstat/bfs"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/flow"
)

// ErrTooFewNodes indicates a global cut was requested on fewer than two nodes.
var ErrTooFewNodes = errors.New("mincut: need at least two nodes")

// Option configures the cut computation.
type Option func(*config)

type config struct {
	alg  flow.Algorithm
	opts flow.FlowOptions
}

// WithAlgorithm selects the max-flow implementation (default Dinic).
func WithAlgorithm(alg flow.Algorithm) Option {
	return func(c *config) { c.alg = alg }
}

// WithFlowOptions overrides the options passed to the max-flow routine.
func WithFlowOptions(opts flow.FlowOptions) Option {
	return func(c *config) { c.opts = opts }
}

func newConfig(opts []Option) config {
	c := config{alg: flow.AlgorithmDinic, opts: flow.DefaultOptions()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Result is a cut weight together with the side containing the source.
type Result struct {
	Weight     float64
	SourceSide []int
}

// STMinCut returns the minimum s-t cut weight of g.
func STMinCut(g *core.Graph, s, t int, opts ...Option) (float64, error) {
	r, err := STMinCutDetail(g, s, t, opts...)
	if err != nil {
		return 0, err
	}
	return r.Weight, nil
}

// STMinCutDetail is STMinCut that also reports the source side of the cut.
func STMinCutDetail(g *core.Graph, s, t int, opts ...Option) (Result, error) {
	c := newConfig(opts)
	w, res, err := flow.MaxFlow(g.Simplify(), s, t, c.alg, c.opts)
	if err != nil {
		return Result{}, fmt.Errorf("STMinCut(%d,%d): %w", s, t, err)
	}
	return Result{Weight: w, SourceSide: res.SourceSide(s)}, nil
}

// GlobalMinCut returns the minimum weight over all cuts of g.
func GlobalMinCut(g *core.Graph, opts ...Option) (float64, error) {
	r, err := GlobalMinCutDetail(g, opts...)
	if err != nil {
		return 0, err
	}
	return r.Weight, nil
}

// GlobalMinCutDetail is GlobalMinCut that also reports one minimizing side.
// For a disconnected graph the side is the component of node 0.
func GlobalMinCutDetail(g *core.Graph, opts ...Option) (Result, error) {
	n := g.NodeCount()
	if n < 2 {
		return Result{}, fmt.Errorf("GlobalMinCut: n=%d: %w", n, ErrTooFewNodes)
	}
	simple := g.Simplify()
	if !bfs.Connected(simple) {
		return Result{Weight: 0, SourceSide: bfs.Components(simple)[0]}, nil
	}

	c := newConfig(opts)
	best := Result{Weight: math.Inf(1)}
	for t := 1; t < n; t++ {
		w, res, err := flow.MaxFlow(simple, 0, t, c.alg, c.opts)
		if err != nil {
			return Result{}, fmt.Errorf("GlobalMinCut: t=%d: %w", t, err)
		}
		if w < best.Weight {
			best = Result{Weight: w, SourceSide: res.SourceSide(0)}
		}
	}
	return best, nil
}
