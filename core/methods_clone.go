// File: methods_clone.go
// Role: Cloning and multigraph simplification.
// Determinism:
//   - Clone keeps edge IDs; Simplify emits merged edges ordered by (min, max) endpoint.

package core

import "sort"

// CloneEmpty returns a new Graph with identical flags and node count, but no edges.
// Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmpty()
}

func (g *Graph) cloneEmpty() *Graph {
	opts := []GraphOption{WithNodes(g.nodeCount)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}

// Clone returns a deep copy of the Graph: flags, nodes, edges and adjacency.
// Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmpty()
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for _, e := range clone.edges {
		clone.link(e.From, e.To, e.ID)
		if !e.IsLoop() {
			clone.link(e.To, e.From, e.ID)
		}
	}

	return clone
}

// Simplify returns a simple weighted graph on the same node set: self-loops
// are dropped and all parallel edges between a pair are merged into one edge
// whose weight is the sum of theirs.
//
// The result has loops and multi-edges disabled. Merged edges are emitted in
// ascending (min endpoint, max endpoint) order so the output does not depend
// on the insertion order of the input.
//
// Complexity: O(E log E).
func (g *Graph) Simplify() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type pair struct{ u, v int }
	merged := make(map[pair]float64, len(g.edges))
	for _, e := range g.edges {
		if e.IsLoop() {
			continue
		}
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		merged[pair{u, v}] += e.Weight
	}

	keys := make([]pair, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}
		return keys[i].v < keys[j].v
	})

	simple := NewGraph(WithNodes(g.nodeCount))
	for _, k := range keys {
		eid := len(simple.edges)
		simple.edges = append(simple.edges, Edge{ID: eid, From: k.u, To: k.v, Weight: merged[k]})
		simple.link(k.u, k.v, eid)
		simple.link(k.v, k.u, eid)
	}

	return simple
}
