// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphstat/dist"
	"github.com/katalvlaran/graphstat/ensemble"
	"github.com/katalvlaran/graphstat/montecarlo"
	"github.com/katalvlaran/graphstat/progress"
	"github.com/katalvlaran/graphstat/vertexcover"
)

// app is the state every command runs with.
type app struct {
	Globals
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
	src    *ensemble.Source
}

func newApp(g Globals, stdout, stderr io.Writer) *app {
	return &app{
		Globals: g,
		stdout:  stdout,
		stderr:  stderr,
		log:     createLogger(g.LogLevel, stderr),
		src:     ensemble.NewSource(ensemble.ParseSeed(g.Seed)),
	}
}

func (a *app) options() []montecarlo.Option {
	opts := []montecarlo.Option{montecarlo.WithLogger(a.log)}
	if a.Solver == vertexcover.MethodSimplex.String() {
		opts = append(opts, montecarlo.WithSolver(vertexcover.Solver{Method: vertexcover.MethodSimplex}))
	}
	if a.Progress {
		opts = append(opts, montecarlo.WithProgress(progress.NewBar(a.stderr, 80)))
	}
	return opts
}

// aggregator loads the ensemble at path and prints the experiment header.
func (a *app) aggregator(path string) (*montecarlo.Aggregator, error) {
	ens, err := ensemble.Load(path, a.src)
	if err != nil {
		return nil, err
	}
	agg, err := montecarlo.New(ens, a.Trials, a.options()...)
	if err != nil {
		return nil, err
	}

	a.printf("= experiment params =\n")
	a.printf("ensemble: %s\n", ens)
	a.printSeed()
	a.printf("num_of_trials: %d\n\n", a.Trials)

	return agg, nil
}

func (a *app) printSeed() {
	if a.Seed == "" {
		a.printf("seed: %d\n", a.src.Seed())
		return
	}
	a.printf("seed: %s (%d)\n", a.Seed, a.src.Seed())
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.stdout, format, args...)
}

func (a *app) printDist(title string, d *dist.Distribution, width int) error {
	a.printf("%s:\n", title)
	return dist.Print(a.stdout, d, width)
}

// writeDist writes d to <output><suffix> when an output prefix is set.
func (a *app) writeDist(suffix string, d *dist.Distribution) error {
	if a.Output == "" {
		return nil
	}
	path := a.Output + suffix
	if err := dist.WriteFile(path, d); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Int("entries", d.Len()).Msg("Wrote distribution")

	return nil
}
