// SPDX-License-Identifier: MIT

package montecarlo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/ensemble"
)

// ErrSweep indicates a sweep with a non-positive step or a negative bound.
var ErrSweep = errors.New("montecarlo: invalid sweep")

// DefaultSweepBase is the degree distribution the sweep starts from:
// ten nodes of each degree 1..7.
var DefaultSweepBase = []int{0, 10, 10, 10, 10, 10, 10, 10}

// DefaultSweepStep is the number of nodes added per sweep point.
const DefaultSweepStep = 10

// Sweep describes a degree sweep: for plus = 0, Step, 2·Step, ... < MaxPlus,
// Degree gets plus extra nodes on top of Base and CompareIPLP runs on the
// resulting configuration-model ensemble.
type Sweep struct {
	Base    []int
	Degree  int
	MaxPlus int
	Step    int
	Trials  int
}

// SweepRow is one point of a degree sweep.
type SweepRow struct {
	// Nodes is the number of nodes of the swept degree.
	Nodes int
	// IntegralRatio is 1 - AveHalvesRatio: the share of LP values that are integral.
	IntegralRatio float64
	// OptRatio is the mean LP/IP ratio.
	OptRatio float64
	Report   IPLPReport
}

// DegreeSweep runs sw with ensembles drawing from src. opts apply to every
// per-point Aggregator.
func DegreeSweep(sw Sweep, src *ensemble.Source, opts ...Option) ([]SweepRow, error) {
	if sw.Step <= 0 || sw.MaxPlus < 0 || sw.Degree < 0 {
		return nil, fmt.Errorf("DegreeSweep: step=%d max=%d degree=%d: %w", sw.Step, sw.MaxPlus, sw.Degree, ErrSweep)
	}
	base := sw.Base
	if base == nil {
		base = DefaultSweepBase
	}

	var rows []SweepRow
	for plus := 0; plus < sw.MaxPlus; plus += sw.Step {
		dd, err := ensemble.WithDegreeBump(base, sw.Degree, plus)
		if err != nil {
			return nil, fmt.Errorf("DegreeSweep: %w", err)
		}
		ens, err := ensemble.NewSpecifiedDegreeDist(dd, src)
		if err != nil {
			return nil, fmt.Errorf("DegreeSweep: plus=%d: %w", plus, err)
		}
		agg, err := New(ens, sw.Trials, opts...)
		if err != nil {
			return nil, fmt.Errorf("DegreeSweep: %w", err)
		}
		r, err := agg.CompareIPLP()
		if err != nil {
			return nil, fmt.Errorf("DegreeSweep: plus=%d: %w", plus, err)
		}
		rows = append(rows, SweepRow{
			Nodes:         dd[sw.Degree],
			IntegralRatio: 1 - r.AveHalvesRatio,
			OptRatio:      r.AveOptRatio,
			Report:        r,
		})
	}

	return rows, nil
}
