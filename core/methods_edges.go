// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount/EdgesBetween.
// Determinism:
//   - Edge IDs are insertion positions; Edges() returns them in that order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "math"

// AddEdge appends an undirected edge u-v with the given weight and returns its ID.
//
// Steps:
//  1. Validate endpoints (ErrNodeNotFound) and weight (ErrNegativeWeight).
//  2. Enforce the loop policy (ErrLoopNotAllowed).
//  3. Enforce the multi-edge policy (ErrMultiEdgeNotAllowed).
//  4. Append to the edge list and link both adjacency directions
//     (a loop is linked once).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(u) || !g.hasNode(v) {
		return 0, ErrNodeNotFound
	}
	if weight < 0 || math.IsNaN(weight) {
		return 0, ErrNegativeWeight
	}
	if u == v && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: u, To: v, Weight: weight})

	g.link(u, v, eid)
	if u != v {
		g.link(v, u, eid)
	}

	return eid, nil
}

// link records eid under adjacency[u][v]; callers hold the write lock.
func (g *Graph) link(u, v, eid int) {
	inner, ok := g.adjacency[u]
	if !ok {
		inner = make(map[int][]int)
		g.adjacency[u] = inner
	}
	inner[v] = append(inner[v], eid)
}

// HasEdge reports true if at least one edge joins u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edge returns the edge with the given ID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// Edges returns a copy of all edges in iteration (insertion) order.
// Parallel edges appear once each, loops appear once.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges, counting parallel edges and loops individually.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns the IDs of all edges joining u and v, ascending.
// Complexity: O(k) where k is the multiplicity of the pair.
func (g *Graph) EdgesBetween(u, v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.adjacency[u][v]
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}
