// SPDX-License-Identifier: MIT
//
// Package dist holds ordered frequency tables keyed by scalars or short
// tuples, and the transforms the experiments apply to them.
//
// A Key is either a scalar or a tuple of up to MaxTupleLen components.
// Keys have one total order: scalars first, then tuples by length, each
// group ordered lexicographically. Every iteration, printout and data file
// follows that order.
//
// Exact enumeration produces integral counts; the Monte-Carlo layer merges
// them across trials and Normalizes by the trial count. Cumulative turns a
// probability table into an "at least x" survival table; Fill pads a scalar
// table with zeros so data files have no gaps.
package dist
