// Package core defines the central Graph and Edge types used by every
// sampler, calculator and solver adapter in graphstat.
//
// A Graph has a fixed, contiguous node set 0..n-1 and a multiset of
// undirected weighted edges. Edge IDs are insertion positions, so the edge
// iteration order is stable and reproducible. Self-loops and parallel
// edges are opt-in policies (WithLoops, WithMultiEdges) and, once allowed,
// are stored distinctly.
//
// Errors:
//
//	ErrNodeNotFound        - an edge or query referenced a node outside 0..n-1.
//	ErrEdgeNotFound        - requested edge ID does not exist.
//	ErrNegativeWeight      - negative (or NaN) weight passed to AddEdge.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node id outside 0..n-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultWeight is the weight every generator assigns unless told otherwise.
const DefaultWeight = 1.0

// Edge is an undirected connection between two nodes.
//
// ID is the position of the edge in the graph's iteration order.
// For a self-loop From == To.
type Edge struct {
	// ID is the zero-based insertion index of this edge.
	ID int

	// From and To are the endpoint node ids; the pair is unordered.
	From int
	To   int

	// Weight is the non-negative cost or capacity of the edge.
	Weight float64
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to u. For a loop it returns u.
func (e Edge) Other(u int) int {
	if e.From == u {
		return e.To
	}
	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNodes pre-allocates n nodes (ids 0..n-1). Negative n is treated as 0.
func WithNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodeCount = n
		}
	}
}

// Graph is the in-memory undirected multigraph.
//
// mu guards every field below it. The node set is implicit: ids 0..nodeCount-1.
// adjacency[u][v] lists the IDs of the edges joining u and v (mirrored for u != v,
// a loop is listed once under adjacency[u][u]).
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool
	allowLoops bool

	// Storage
	nodeCount int
	edges     []Edge
	adjacency map[int]map[int][]int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph has no nodes, no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMultigraph is NewGraph with loops and parallel edges enabled, the mode
// every stub-matching sampler needs.
func NewMultigraph(opts ...GraphOption) *Graph {
	multi := make([]GraphOption, 0, len(opts)+2)
	multi = append(multi, WithLoops(), WithMultiEdges())
	multi = append(multi, opts...)

	return NewGraph(multi...)
}
