package flow

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// ErrSourceNotFound is returned when the source id is outside 0..n-1.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink id is outside 0..n-1.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrSameTerminals is returned when source and sink coincide.
var ErrSameTerminals = errors.New("flow: source equals sink")

// ErrUnknownAlgorithm is returned by MaxFlow for an Algorithm outside the enum.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d-%d: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation; nil means context.Background().
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: log each augmentation at debug level to Logger.
//   - Logger: destination for Verbose output; nil means zerolog.Nop().
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
//   - Directed: read each edge as a single arc From→To instead of two.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Verbose              bool
	Logger               *zerolog.Logger
	LevelRebuildInterval int
	Directed             bool
}

// DefaultEpsilon is the capacity threshold used when FlowOptions.Epsilon ≤ 0.
const DefaultEpsilon = 1e-9

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	opts := FlowOptions{}
	opts.normalize()
	return opts
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// Algorithm selects a max-flow implementation.
type Algorithm int

const (
	AlgorithmDinic Algorithm = iota
	AlgorithmEdmondsKarp
	AlgorithmFordFulkerson
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDinic:
		return "dinic"
	case AlgorithmEdmondsKarp:
		return "edmonds-karp"
	case AlgorithmFordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Residual holds the remaining capacities after a max-flow run.
// Each input edge starts as two opposite arcs of equal capacity, or as one
// arc when FlowOptions.Directed is set.
type Residual struct {
	capacity []map[int]float64
	eps      float64
}

// Capacity returns the remaining capacity of the arc u→v.
func (r *Residual) Capacity(u, v int) float64 {
	if u < 0 || u >= len(r.capacity) {
		return 0
	}
	return r.capacity[u][v]
}

// SourceSide returns, sorted ascending, the nodes reachable from source
// through arcs with capacity > Epsilon. After a max-flow run this is the
// source side of a minimum cut.
func (r *Residual) SourceSide(source int) []int {
	if source < 0 || source >= len(r.capacity) {
		return nil
	}
	seen := make([]bool, len(r.capacity))
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		for v, c := range r.capacity[queue[i]] {
			if c > r.eps && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	sort.Ints(queue)
	return queue
}
