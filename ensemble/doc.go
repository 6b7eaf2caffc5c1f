// SPDX-License-Identifier: MIT
//
// Package ensemble defines the random graph ensembles graphstat samples
// from and the factory that builds them from a definition file.
//
// Kinds:
//
//	KindSpecifiedDegreeDist - configuration model on a degree histogram.
//	KindErdosRenyi          - G(n,p), simple; edge count is not fixed.
//	KindNM                  - uniform simple graph with exactly m edges.
//	KindMultiGraph          - m edges with uniform endpoints, loops and parallels kept.
//
// Randomness is never global. Every ensemble draws from the *Source it was
// built with; several ensembles may share one Source, in which case their
// samples interleave on one stream exactly as the calls interleave.
// Reseed(seed) rewinds the stream for a reproducible rerun.
//
// Definitions are named-variant records loaded with viper:
//
//	{"type": "SpecifiedDegreeDistEnsemble", "params": {"degree_dist": [0, 2, 2]}}
//
// Parameters are validated when the ensemble is constructed, never at
// sampling time: an odd stub sum fails with ErrDegreeDist before the first
// graph is drawn.
package ensemble
