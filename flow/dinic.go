package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// Dinic computes the maximum flow from source to sink in the undirected,
// weighted graph g using Dinic's algorithm (level graph + blocking flows).
// Every edge is a capacity available in both directions; parallel edges are
// summed and loops ignored.
//
// It returns:
//   - maxFlow  : the total flow value, equal to the s-t min-cut weight
//   - residual : the remaining arc capacities
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSameTerminals,
//     EdgeError, or a context error
//
// Steps:
//  1. Normalize options and validate terminals.
//  2. Build the capacity table via buildCapMap (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. BFS from source to assign levels.
//     b. Build the level graph, heads sorted ascending.
//     c. Push blocking flow by DFS, optionally rebuilding levels every
//     LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² E) in general; O(E √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(g *core.Graph, source, sink int, opts FlowOptions) (maxFlow float64, residual *Residual, err error) {
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
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := make([]int, n)
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, c := range capMap[u] {
				if c > opts.Epsilon && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		next := make([][]int, n)
		for u := 0; u < n; u++ {
			if level[u] < 0 {
				continue
			}
			for _, v := range sortedArcs(capMap, u, opts.Epsilon) {
				if level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make([]int, n)
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, capMap, next, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Verbose {
				opts.Logger.Debug().Str("algorithm", "dinic").
					Float64("pushed", pushed).Float64("total", maxFlow).Msg("augment")
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, &Residual{capacity: capMap, eps: opts.Epsilon}, nil
}

// dfsDinicPush pushes flow along the level graph, updating capMap in place,
// and returns the amount actually sent.
func dfsDinicPush(
	ctx context.Context,
	capMap []map[int]float64,
	next [][]int,
	iter []int,
	u, sink int,
	available float64,
	eps float64,
) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		capUV := capMap[u][v]
		if capUV <= eps {
			continue
		}
		send := math.Min(available, capUV)
		pushed := dfsDinicPush(ctx, capMap, next, iter, v, sink, send, eps)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed
			return pushed
		}
	}

	return 0
}
