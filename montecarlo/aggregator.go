// SPDX-License-Identifier: MIT

package montecarlo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dist"
	"github.com/katalvlaran/graphstat/ensemble"
	"github.com/katalvlaran/graphstat/mincut"
	"github.com/katalvlaran/graphstat/progress"
	"github.com/katalvlaran/graphstat/vertexcover"
)

var (
	// ErrTrials indicates a trial count below 1.
	ErrTrials = errors.New("montecarlo: trials must be ≥ 1")
	// ErrNilEnsemble indicates New was given no ensemble.
	ErrNilEnsemble = errors.New("montecarlo: nil ensemble")
)

// DistFunc computes a distribution for one sampled graph.
type DistFunc func(g *core.Graph) (*dist.Distribution, error)

// StatFunc computes a scalar statistic for one sampled graph.
type StatFunc func(g *core.Graph) (float64, error)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) { a.log = l }
}

// WithProgress sets the progress reporter. Panics on nil.
func WithProgress(r progress.Reporter) Option {
	if r == nil {
		panic("montecarlo: WithProgress(nil)")
	}
	return func(a *Aggregator) { a.progress = r }
}

// WithSolver sets the vertex-cover solver used by the cover experiments.
func WithSolver(s vertexcover.Solver) Option {
	return func(a *Aggregator) { a.solver = s }
}

// WithMinCutOptions forwards options to every mincut call.
func WithMinCutOptions(opts ...mincut.Option) Option {
	return func(a *Aggregator) { a.cutOpts = append(a.cutOpts, opts...) }
}

// Aggregator runs trials against one ensemble. It is not safe for
// concurrent use: the ensemble's Source is shared state.
type Aggregator struct {
	ens    ensemble.Ensemble
	trials int

	log      zerolog.Logger
	progress progress.Reporter
	solver   vertexcover.Solver
	cutOpts  []mincut.Option
}

// New returns an Aggregator running trials samples of ens per experiment.
func New(ens ensemble.Ensemble, trials int, opts ...Option) (*Aggregator, error) {
	if ens == nil {
		return nil, fmt.Errorf("New: %w", ErrNilEnsemble)
	}
	if trials < 1 {
		return nil, fmt.Errorf("New: trials=%d: %w", trials, ErrTrials)
	}
	a := &Aggregator{
		ens:      ens,
		trials:   trials,
		log:      zerolog.Nop(),
		progress: progress.Nop{},
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Ensemble returns the sampled ensemble.
func (a *Aggregator) Ensemble() ensemble.Ensemble { return a.ens }

// Trials returns the number of samples per experiment.
func (a *Aggregator) Trials() int { return a.trials }

// run samples a.trials graphs and hands each to fn.
func (a *Aggregator) run(label string, fn func(g *core.Graph) error) error {
	start := time.Now()
	a.log.Info().
		Str("experiment", label).
		Str("ensemble", a.ens.String()).
		Int("trials", a.trials).
		Msg("Starting experiment")

	a.progress.Begin(label, a.trials)
	defer a.progress.End()

	for i := 0; i < a.trials; i++ {
		g, err := a.ens.GenerateGraph()
		if err != nil {
			return fmt.Errorf("%s: trial %d: %w", label, i, err)
		}
		if err = fn(g); err != nil {
			return fmt.Errorf("%s: trial %d: %w", label, i, err)
		}
		a.log.Debug().
			Int("trial", i).
			Int("nodes", g.NodeCount()).
			Int("edges", g.EdgeCount()).
			Msg("Trial done")
		a.progress.Step(i + 1)
	}

	a.log.Info().
		Str("experiment", label).
		Dur("elapsed", time.Since(start)).
		Msg("Experiment completed")

	return nil
}

// AverageDist returns the pointwise mean of calc over the sampled graphs.
func (a *Aggregator) AverageDist(calc DistFunc) (*dist.Distribution, error) {
	return a.averageDist("average_dist", calc)
}

func (a *Aggregator) averageDist(label string, calc DistFunc) (*dist.Distribution, error) {
	sum := dist.New()
	err := a.run(label, func(g *core.Graph) error {
		d, err := calc(g)
		if err != nil {
			return err
		}
		sum.Merge(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dist.Normalize(sum, float64(a.trials))
}

// ProbDist returns the empirical distribution of stat, bucketed with
// dist.Bucket.
func (a *Aggregator) ProbDist(s StatFunc) (*dist.Distribution, error) {
	return a.probDist("prob_dist", s)
}

func (a *Aggregator) probDist(label string, s StatFunc) (*dist.Distribution, error) {
	counts := dist.New()
	err := a.run(label, func(g *core.Graph) error {
		x, err := s(g)
		if err != nil {
			return err
		}
		counts.Inc(dist.Bucket(x))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dist.Normalize(counts, float64(a.trials))
}

// Estimate is a sample mean with its standard error.
type Estimate struct {
	Mean   float64
	StdErr float64
}

// Mean returns the sample mean of stat and its standard error. The error is
// 0 for a single trial.
func (a *Aggregator) Mean(s StatFunc) (Estimate, error) {
	xs := make([]float64, 0, a.trials)
	err := a.run("mean", func(g *core.Graph) error {
		x, err := s(g)
		if err != nil {
			return err
		}
		xs = append(xs, x)
		return nil
	})
	if err != nil {
		return Estimate{}, err
	}
	if len(xs) < 2 {
		return Estimate{Mean: xs[0]}, nil
	}
	mean, std := stat.MeanStdDev(xs, nil)

	return Estimate{Mean: mean, StdErr: std / math.Sqrt(float64(len(xs)))}, nil
}
