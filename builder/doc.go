// SPDX-License-Identifier: MIT
//
// Package builder provides functional-options graph constructors for
// graphstat: deterministic topologies used as fixtures and the stochastic
// samplers behind every ensemble.
//
// The package offers:
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...), that creates a
//     core.Graph, resolves a builderConfig and applies constructors in order.
//   - Deterministic topologies: Path, Cycle, Star, Complete.
//   - Random models: RandomSparse (G(n,p)), RandomNM (G(n,m)),
//     RandomMulti (uniform endpoints) and ConfigurationModel (stub matching).
//   - Edge-weight generators (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn.
//
// Guarantees:
//
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors (WithRand(nil), WithWeightFn(nil)).
//   - Constructors never panic; they return sentinel errors wrapped with
//     method context, e.g. "RandomNM: m=11 not in [0,10]: builder: edge count out of range".
//   - Same inputs, options and RNG state give byte-identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.ConfigurationModel([]int{0, 2, 2}),
//	)
package builder
