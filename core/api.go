// File: api.go
// Role: Read-only policy getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool

	NodeCount int
	EdgeCount int

	// LoopCount counts self-loop edges.
	LoopCount int
	// ParallelCount counts edges that repeat an already seen endpoint pair.
	ParallelCount int
	// TotalWeight is the sum of all edge weights.
	TotalWeight float64
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a snapshot of configuration flags and catalog sizes,
// classifying loops and parallel edges in one pass.
//
// Complexity: O(E) time, O(E) space for the pair set.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		NodeCount:   g.nodeCount,
		EdgeCount:   len(g.edges),
	}
	seen := make(map[[2]int]struct{}, len(g.edges))
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
		if e.IsLoop() {
			stats.LoopCount++
		}
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			stats.ParallelCount++
			continue
		}
		seen[key] = struct{}{}
	}

	return &stats
}

// IsSimple reports whether the graph currently holds no loops and no parallel edges.
// Complexity: O(E).
func (g *Graph) IsSimple() bool {
	s := g.Stats()

	return s.LoopCount == 0 && s.ParallelCount == 0
}
