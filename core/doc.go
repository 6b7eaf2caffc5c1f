// Package core provides the in-memory undirected multigraph every other
// graphstat package consumes.
//
// The Graph G = (V,E) has:
//
//   - A contiguous node set 0..n-1 (WithNodes, AddNode, AddNodes).
//   - A multiset of undirected edges with non-negative float64 weights.
//   - Opt-in self-loops (WithLoops) and parallel edges (WithMultiEdges),
//     stored distinctly once allowed.
//   - Stable iteration: Edge.ID is the insertion position and Edges()
//     returns edges in that order, so per-edge results (check values,
//     cut sets) line up with the edge list across calls.
//   - A single sync.RWMutex; reads during enumeration are uncontended.
//
// Core Methods:
//
//	// Nodes
//	AddNode() int                        // O(1)
//	AddNodes(k int) int                  // O(1)
//	HasNode(id int) bool                 // O(1)
//	NodeCount() int                      // O(1)
//	Degree(id int) (int, error)          // loops count twice
//	Neighbors(id int) ([]int, error)     // distinct, sorted
//
//	// Edges
//	AddEdge(u, v int, w float64) (int, error)
//	HasEdge(u, v int) bool
//	Edge(id int) (Edge, error)
//	Edges() []Edge                       // insertion order
//	EdgesBetween(u, v int) []int
//
//	// Whole-graph
//	Clone() *Graph
//	Simplify() *Graph                    // drop loops, merge parallels (weights summed)
//	Stats() *GraphStats
//
// Errors:
//
//	ErrNodeNotFound        – node id outside 0..n-1
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeWeight      – negative or NaN weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
