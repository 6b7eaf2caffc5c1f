package vertexcover

import (
	"sort"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/flow"
)

// coverGraph is the part of a multigraph a cover depends on: the distinct
// neighbors of every node and which nodes carry a loop.
type coverGraph struct {
	g    *core.Graph
	adj  [][]int // ascending, self excluded
	loop []bool
}

func newCoverGraph(g *core.Graph) (*coverGraph, error) {
	n := g.NodeCount()
	c := &coverGraph{g: g, adj: make([][]int, n), loop: make([]bool, n)}
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, u := range nbrs {
			if u == v {
				c.loop[v] = true
				continue
			}
			c.adj[v] = append(c.adj[v], u)
		}
	}
	return c, nil
}

func (c *coverGraph) adjacent(u, v int) bool {
	i := sort.SearchInts(c.adj[u], v)
	return i < len(c.adj[u]) && c.adj[u][i] == v
}

// aliveNeighbors appends the alive neighbors of v to buf, stopping once
// limit of them are found (limit ≤ 0 means no limit).
func (c *coverGraph) aliveNeighbors(buf []int, v int, alive []bool, limit int) []int {
	for _, u := range c.adj[v] {
		if !alive[u] {
			continue
		}
		buf = append(buf, u)
		if limit > 0 && len(buf) == limit {
			break
		}
	}
	return buf
}

// relax returns an optimal LP solution on the subgraph induced by alive,
// with every value in {0, 1/2, 1}; dead nodes get 0.
//
// The LP optimum is half the minimum vertex cover of the bipartite double
// cover, which max-flow finds: node v becomes v_L (source→v_L, capacity 1)
// and v_R (v_R→sink, capacity 1), and every edge u-v becomes the arcs
// u_L→v_R and v_L→u_R of capacity larger than any cut. With S the source
// side of the minimum cut, x_v = ([v_L ∉ S] + [v_R ∈ S]) / 2.
func (c *coverGraph) relax(alive []bool) ([]float64, error) {
	x := make([]float64, len(alive))
	pos := make([]int, len(alive))
	var nodes []int
	for v, ok := range alive {
		if ok {
			pos[v] = len(nodes)
			nodes = append(nodes, v)
		}
	}
	k := len(nodes)
	if k == 0 {
		return x, nil
	}

	const source, sink = 0, 1
	left := func(i int) int { return 2 + i }
	right := func(i int) int { return 2 + k + i }
	inf := float64(k + 1)

	net := core.NewGraph(core.WithNodes(2*k + 2))
	arc := func(u, v int, capacity float64) error {
		_, err := net.AddEdge(u, v, capacity)
		return err
	}
	for i, v := range nodes {
		if err := arc(source, left(i), 1); err != nil {
			return nil, err
		}
		if err := arc(right(i), sink, 1); err != nil {
			return nil, err
		}
		if c.loop[v] {
			if err := arc(left(i), right(i), inf); err != nil {
				return nil, err
			}
		}
		for _, u := range c.adj[v] {
			if !alive[u] {
				continue
			}
			if err := arc(left(i), right(pos[u]), inf); err != nil {
				return nil, err
			}
		}
	}

	opts := flow.DefaultOptions()
	opts.Directed = true
	_, res, err := flow.Dinic(net, source, sink, opts)
	if err != nil {
		return nil, err
	}
	inS := make([]bool, 2*k+2)
	for _, u := range res.SourceSide(source) {
		inS[u] = true
	}
	for i, v := range nodes {
		if !inS[left(i)] {
			x[v] += 0.5
		}
		if inS[right(i)] {
			x[v] += 0.5
		}
	}

	return x, nil
}
