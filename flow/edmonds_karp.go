package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Graph semantics, results and errors match Dinic.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink int, opts FlowOptions) (maxFlow float64, residual *Residual, err error) {
	opts.normalize()

	if err = validateTerminals(g, source, sink); err != nil {
		return 0, nil, err
	}
	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	for {
		if err = opts.Ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, bottle := bfsAugmentingPath(opts.Ctx, capMap, source, sink, opts.Epsilon)
		if len(path) == 0 || bottle <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			opts.Logger.Debug().Str("algorithm", "edmonds-karp").
				Ints("path", path).Float64("pushed", bottle).Msg("augment")
		}
		maxFlow += bottle
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	return maxFlow, &Residual{capacity: capMap, eps: opts.Epsilon}, nil
}

// bfsAugmentingPath finds the fewest-arc path from source to sink with
// capacity > eps and returns it with its bottleneck. Returns nil if none.
func bfsAugmentingPath(
	ctx context.Context,
	capMap []map[int]float64,
	source, sink int,
	eps float64,
) ([]int, float64) {
	n := len(capMap)
	parent := make([]int, n)
	bottle := make([]float64, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle[source] = math.Inf(1)

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[i]
		for _, v := range sortedArcs(capMap, u, eps) {
			if parent[v] >= 0 {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], capMap[u][v])
			if v == sink {
				return tracePath(parent, source, sink), bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// tracePath walks parent links back from sink and returns source..sink.
func tracePath(parent []int, source, sink int) []int {
	path := []int{sink}
	for cur := sink; cur != source; cur = parent[cur] {
		path = append(path, parent[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
