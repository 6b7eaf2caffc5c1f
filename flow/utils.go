package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/graphstat/core"
)

// buildCapMap constructs the residual capacity table of g, aggregating
// parallel edges and ignoring loops.
//
// capMap[u][v] = Σ weight of all edges between u and v, mirrored into
// capMap[v][u] unless opts.Directed; entries with total capacity ≤ Epsilon
// are dropped.
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func buildCapMap(g *core.Graph, opts FlowOptions) ([]map[int]float64, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	capMap := make([]map[int]float64, n)
	for u := range capMap {
		capMap[u] = make(map[int]float64)
	}

	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		if e.Weight < -opts.Epsilon {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		capMap[e.From][e.To] += e.Weight
		if !opts.Directed {
			capMap[e.To][e.From] += e.Weight
		}
	}

	for u := range capMap {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for v, c := range capMap[u] {
			if c <= opts.Epsilon {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}

// sortedArcs returns the heads of u's arcs with capacity > eps, ascending.
// Algorithms iterate arcs through it so runs are reproducible.
func sortedArcs(capMap []map[int]float64, u int, eps float64) []int {
	out := make([]int, 0, len(capMap[u]))
	for v, c := range capMap[u] {
		if c > eps {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// validateTerminals checks source and sink against g's node set.
func validateTerminals(g *core.Graph, source, sink int) error {
	if !g.HasNode(source) {
		return ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameTerminals
	}
	return nil
}

// MaxFlow dispatches to the selected algorithm.
func MaxFlow(g *core.Graph, source, sink int, alg Algorithm, opts FlowOptions) (float64, *Residual, error) {
	switch alg {
	case AlgorithmDinic:
		return Dinic(g, source, sink, opts)
	case AlgorithmEdmondsKarp:
		return EdmondsKarp(g, source, sink, opts)
	case AlgorithmFordFulkerson:
		return FordFulkerson(g, source, sink, opts)
	default:
		return 0, nil, ErrUnknownAlgorithm
	}
}
