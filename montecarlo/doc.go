// SPDX-License-Identifier: MIT
//
// Package montecarlo estimates ensemble-level statistics by sampling.
//
// An Aggregator draws T graphs from one ensemble, runs an exact calculator
// or solver on each, sums the results pointwise and divides by T. Scalar
// statistics are bucketed to one decimal place before counting so solver
// noise collapses into stable keys.
//
// The first failing trial aborts the run; its error is returned wrapped
// with the experiment label and trial index. Nothing is retried.
//
// Example:
//
//	src := ensemble.NewSource(42)
//	ens, _ := ensemble.NewNM(8, 10, src)
//	agg, _ := montecarlo.New(ens, 1000)
//	p, err := agg.ProbDistMinVertexCover()
//	c, err := dist.Cumulative(p, 1)
package montecarlo
