// Package flow implements maximum-flow algorithms on undirected weighted
// *core.Graph values. By max-flow/min-cut duality the flow value is the
// weight of a minimum s-t cut, which is what graphstat uses it for.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//   - Method: depth-first search to find any augmenting path.
//   - Time:   O(E · F) on integral networks, F = flow value.
//
//   - Edmonds–Karp
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//   - Time:   O(V · E²).
//
//   - Dinic (default)
//   - Method: level graph construction + blocking flow via DFS.
//   - Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//
// # Graph Support
//
// Each undirected edge of weight w becomes two opposite arcs of capacity w.
// Parallel edges are summed; loops are ignored since they never cross a cut.
// With FlowOptions.Directed an edge is a single arc from its From end to its
// To end, which is how vertexcover feeds its bipartite networks.
// Arcs are visited in ascending head order, so runs are reproducible.
//
// # API
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Epsilon              float64         // capacities ≤ Epsilon count as zero
//	    Verbose              bool            // log each augmentation at debug level
//	    Logger               *zerolog.Logger // sink for Verbose output
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	    Directed             bool            // each edge is one arc From→To
//	}
//
//	func Dinic(g *core.Graph, source, sink int, opts FlowOptions) (float64, *Residual, error)
//	func EdmondsKarp(g *core.Graph, source, sink int, opts FlowOptions) (float64, *Residual, error)
//	func FordFulkerson(g *core.Graph, source, sink int, opts FlowOptions) (float64, *Residual, error)
//	func MaxFlow(g *core.Graph, source, sink int, alg Algorithm, opts FlowOptions) (float64, *Residual, error)
//
// Residual.SourceSide(source) recovers the source side of a minimum cut.
//
// # Errors
//
//	ErrSourceNotFound - the source id is outside 0..n-1.
//	ErrSinkNotFound   - the sink id is outside 0..n-1.
//	ErrSameTerminals  - source == sink.
//	EdgeError         - a negative capacity (beyond Epsilon) was found.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx is done.
package flow
