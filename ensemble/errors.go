// SPDX-License-Identifier: MIT

package ensemble

import "errors"

var (
	// ErrDegreeDist indicates a degree distribution with an odd stub sum,
	// a negative entry or no nodes at all.
	ErrDegreeDist = errors.New("ensemble: invalid degree distribution")

	// ErrUnknownEnsemble indicates a definition whose type names no known kind.
	ErrUnknownEnsemble = errors.New("ensemble: unknown ensemble type")

	// ErrEdgeCountNotFixed is returned by EdgeCount for ensembles whose
	// samples do not share one edge count.
	ErrEdgeCountNotFixed = errors.New("ensemble: edge count is not fixed")

	// ErrNilSource indicates an ensemble was constructed without a random source.
	ErrNilSource = errors.New("ensemble: nil random source")
)
