// SPDX-License-Identifier: MIT
//
// Package enumerate computes exact statistics of small graphs by walking the
// full Cartesian product D^n of node assignments.
//
// Nothing is pruned or memoized: the cost is |D|^n assignments, each checked
// against every edge. The results are ground truth for the sampling layer
// and the LP/IP solver, so keep n small (roughly n ≤ 12 for ternary domains).
//
// Assignments are visited in odometer order, the last node varying fastest:
//
//	[0 0 0] [0 0 1] [0 1 0] [0 1 1] [1 0 0] ...
//
// The slice passed to callbacks is reused between steps.
package enumerate
