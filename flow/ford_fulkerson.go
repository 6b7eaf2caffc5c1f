package flow

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// FordFulkerson computes the maximum flow from source to sink by repeatedly
// finding any augmenting path with an iterative DFS.
//
// Graph semantics, results and errors match Dinic. With real-valued
// capacities termination relies on Epsilon; prefer Dinic for anything but
// small integral networks.
//
// Complexity: O(E · F) on integral networks, F = max-flow value.
func FordFulkerson(g *core.Graph, source, sink int, opts FlowOptions) (maxFlow float64, residual *Residual, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if err = validateTerminals(g, source, sink); err != nil {
		return 0, nil, err
	}
	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	n := len(capMap)
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		parent := make([]int, n)
		minCap := make([]float64, n)
		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		minCap[source] = math.Inf(1)

		stack := []int{source}
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range sortedArcs(capMap, u, opts.Epsilon) {
				if parent[v] >= 0 {
					continue
				}
				parent[v] = u
				minCap[v] = math.Min(minCap[u], capMap[u][v])
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}
		if !found {
			break
		}

		delta := minCap[sink]
		if delta <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			opts.Logger.Debug().Str("algorithm", "ford-fulkerson").
				Ints("path", tracePath(parent, source, sink)).Float64("pushed", delta).Msg("augment")
		}
		maxFlow += delta
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			capMap[u][v] -= delta
			capMap[v][u] += delta
		}
	}

	return maxFlow, &Residual{capacity: capMap, eps: opts.Epsilon}, nil
}
