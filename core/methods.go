// Package core: node lifecycle and adjacency queries.
//
// Nodes are implicit: a graph with n nodes owns ids 0..n-1, so adding a node
// is a counter bump and membership is a range check. Adjacency is stored as
// adjacency[u][v] = []edgeID, which keeps parallel edges distinct.

package core

import "sort"

// AddNode appends one node and returns its id.
// Complexity: O(1).
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nodeCount
	g.nodeCount++

	return id
}

// AddNodes appends k nodes and returns the id of the first one.
// k <= 0 is a no-op that returns the current node count.
// Complexity: O(1).
func (g *Graph) AddNodes(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := g.nodeCount
	if k > 0 {
		g.nodeCount += k
	}

	return first
}

// HasNode reports whether id is in 0..n-1.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(id)
}

// hasNode is HasNode without locking; callers hold mu.
func (g *Graph) hasNode(id int) bool {
	return id >= 0 && id < g.nodeCount
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Nodes returns the node ids in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.nodeCount)
	for i := range out {
		out[i] = i
	}

	return out
}

// Degree returns the number of edge endpoints at id. A self-loop contributes
// two, so the degree sum over all nodes is always 2·EdgeCount().
// Returns ErrNodeNotFound for an unknown id.
// Complexity: O(d) where d is the number of distinct neighbors.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return 0, ErrNodeNotFound
	}
	deg := 0
	for v, ids := range g.adjacency[id] {
		if v == id {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}

// Neighbors returns the distinct nodes adjacent to id (id itself included
// when it carries a loop), sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(g.adjacency[id]))
	for v, ids := range g.adjacency[id] {
		if len(ids) > 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out, nil
}

// IncidentEdges returns the edges touching id, ordered by Edge.ID.
// A loop appears once.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(id) {
		return nil, ErrNodeNotFound
	}
	var eids []int
	for _, ids := range g.adjacency[id] {
		eids = append(eids, ids...)
	}
	sort.Ints(eids)
	out := make([]Edge, len(eids))
	for i, eid := range eids {
		out[i] = g.edges[eid]
	}

	return out, nil
}
