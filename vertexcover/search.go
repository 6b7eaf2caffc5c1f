package vertexcover

import (
	"math"

	"github.com/katalvlaran/graphstat/bfs"
)

// search is an exact branch-and-bound for minimum vertex cover.
//
// Every call first shrinks its subgraph with rules that keep some minimum
// cover intact, then bounds it from below by the LP optimum:
//
//  1. A node with a loop is in every cover.
//  2. An isolated node is in no minimum cover.
//  3. The neighbor of a degree-1 node can replace it.
//  4. The two neighbors of a degree-2 node in a triangle can replace it.
//  5. Nodes at LP value 1 can be taken and nodes at 0 dropped together
//     (Nemhauser–Trotter), leaving a kernel where every value is 1/2.
//
// The kernel is split into connected components, which are solved apart,
// and a single component branches on its highest-degree node: either that
// node joins the cover or all of its neighbors do.
type search struct {
	c *coverGraph
}

// solve returns a minimum cover of the subgraph induced by alive when one
// smaller than limit exists, and false otherwise. It consumes alive.
func (s *search) solve(alive []bool, limit int) ([]int, bool, error) {
	var cover []int
	for {
		cover = s.reduce(alive, cover)
		if len(cover) >= limit {
			return nil, false, nil
		}
		left := count(alive)
		if left == 0 {
			return cover, true, nil
		}

		x, err := s.c.relax(alive)
		if err != nil {
			return nil, false, err
		}
		lp := 0.0
		for v, ok := range alive {
			if ok {
				lp += x[v]
			}
		}
		if len(cover)+int(math.Ceil(lp-snapTol)) >= limit {
			return nil, false, nil
		}
		fixed := false
		for v, ok := range alive {
			if !ok || x[v] == 0.5 {
				continue
			}
			alive[v], fixed = false, true
			if x[v] == 1 {
				cover = append(cover, v)
			}
		}
		if !fixed {
			break
		}
	}
	budget := limit - len(cover)

	comps, err := s.components(alive)
	if err != nil {
		return nil, false, err
	}
	if len(comps) > 1 {
		// A kernel component on k nodes has LP value k/2.
		reserve := 0
		for _, comp := range comps {
			reserve += (len(comp) + 1) / 2
		}
		for _, comp := range comps {
			reserve -= (len(comp) + 1) / 2
			sub, ok, err := s.solve(mask(len(alive), comp), budget-reserve)
			if err != nil || !ok {
				return nil, false, err
			}
			cover = append(cover, sub...)
			budget -= len(sub)
		}
		return cover, true, nil
	}

	v, best := -1, -1
	for u, ok := range alive {
		if !ok {
			continue
		}
		if d := len(s.c.aliveNeighbors(nil, u, alive, 0)); d > best {
			v, best = u, d
		}
	}
	nbrs := s.c.aliveNeighbors(nil, v, alive, 0)

	var found []int
	in := append([]bool(nil), alive...)
	in[v] = false
	sub, ok, err := s.solve(in, budget-1)
	if err != nil {
		return nil, false, err
	}
	if ok {
		found = append(sub, v)
		budget = len(found)
	}

	if len(nbrs) < budget {
		out := alive
		out[v] = false
		for _, u := range nbrs {
			out[u] = false
		}
		sub, ok, err = s.solve(out, budget-len(nbrs))
		if err != nil {
			return nil, false, err
		}
		if ok {
			found = append(sub, nbrs...)
		}
	}

	if found == nil {
		return nil, false, nil
	}
	return append(cover, found...), true, nil
}

// reduce applies rules 1 to 4 until none fires, appending the nodes it
// takes to cover.
func (s *search) reduce(alive []bool, cover []int) []int {
	var buf [3]int
	for changed := true; changed; {
		changed = false
		for v, ok := range alive {
			if !ok {
				continue
			}
			if s.c.loop[v] {
				alive[v] = false
				cover = append(cover, v)
				changed = true
				continue
			}
			nbrs := s.c.aliveNeighbors(buf[:0], v, alive, 3)
			switch len(nbrs) {
			case 0:
				alive[v] = false
				changed = true
			case 1:
				alive[v], alive[nbrs[0]] = false, false
				cover = append(cover, nbrs[0])
				changed = true
			case 2:
				if s.c.adjacent(nbrs[0], nbrs[1]) {
					alive[v], alive[nbrs[0]], alive[nbrs[1]] = false, false, false
					cover = append(cover, nbrs[0], nbrs[1])
					changed = true
				}
			}
		}
	}
	return cover
}

// components returns the connected components of the subgraph induced by
// alive.
func (s *search) components(alive []bool) ([][]int, error) {
	seen := make([]bool, len(alive))
	keep := bfs.WithFilterNeighbor(func(_, u int) bool { return alive[u] })
	var out [][]int
	for v, ok := range alive {
		if !ok || seen[v] {
			continue
		}
		res, err := bfs.BFS(s.c.g, v, keep)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}
	return out, nil
}

func count(alive []bool) int {
	n := 0
	for _, ok := range alive {
		if ok {
			n++
		}
	}
	return n
}

func mask(n int, nodes []int) []bool {
	out := make([]bool, n)
	for _, v := range nodes {
		out[v] = true
	}
	return out
}
