// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w:
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
//
// Priority when several validations fail:
//  1. ErrTooFewVertices / ErrInvalidDegreeDist - size and domain checks.
//  2. ErrInvalidProbability / ErrTooManyEdges  - parameter ranges.
//  3. ErrNeedRandSource                         - RNG presence.
//  4. ErrUnsupportedGraphMode                   - loops/multigraph policy.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, degree) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrTooManyEdges indicates a simple-graph constructor was asked for more
// edges than n(n-1)/2 or a negative edge count.
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrInvalidDegreeDist indicates a degree distribution with a negative entry,
// no nodes at all, or an odd stub sum.
var ErrInvalidDegreeDist = errors.New("builder: invalid degree distribution")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor needs loops or parallel
// edges the target core.Graph does not allow.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a structural failure of BuildGraph itself
// (for example a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
