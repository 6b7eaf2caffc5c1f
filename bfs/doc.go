// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Connected and Components answer the reachability questions the
//     min-cut code needs.
//
// Determinism
//
//	core.Graph.Neighbors returns distinct neighbors sorted ascending and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//	Weights, loops and parallel edges do not affect traversal.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors or a hook error
//	}
//	path, _ := res.PathTo(5)
package bfs
