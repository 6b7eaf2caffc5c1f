// SPDX-License-Identifier: MIT

// Command graphstat estimates combinatorial statistics of random graph
// ensembles: vertex cover and cut-set distributions, minimum cover and
// minimum cut probabilities, and the gap between the cover LP and IP.
//
// Every subcommand except degree-sweep reads an ensemble definition:
//
//	{"type": "SpecifiedDegreeDistEnsemble", "params": {"degree_dist": [0, 4, 2]}}
//
// Usage:
//
//	graphstat prob-min-vc -t 1000 -s 2013 -O out/er ensemble.json
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

type cli struct {
	Globals

	VCDist      vcDistCmd      `cmd:"" name:"vc-dist" help:"Average vertex cover distribution, integral and half-integral"`
	ProbMinVC   probMinVCCmd   `cmd:"" name:"prob-min-vc" help:"Distribution of the minimum vertex cover size (IP and LP)"`
	ProbMinCut  probMinCutCmd  `cmd:"" name:"prob-min-cut" help:"Distribution of the global and s-t minimum cut weight"`
	CutsetDist  cutsetDistCmd  `cmd:"" name:"cutset-dist" help:"Average 2-way and 3-way cut-set distributions"`
	IPLP        ipLPCmd        `cmd:"" name:"ip-lp" help:"Compare LP relaxation and IP optimum of the minimum vertex cover"`
	DegreeSweep degreeSweepCmd `cmd:"" name:"degree-sweep" help:"Sweep the node count of one degree and compare LP with IP"`
}

// Globals are the flags shared by every subcommand.
type Globals struct {
	Trials   int    `short:"t" help:"Number of trials" default:"1000" env:"GRAPHSTAT_TRIALS"`
	Seed     string `short:"s" help:"Random seed; integers are used as-is, other text is hashed" env:"GRAPHSTAT_SEED"`
	Output   string `short:"O" help:"Output file prefix; no files are written when empty"`
	LogLevel string `help:"Log level" default:"warn" enum:"trace,debug,info,warn,error"`
	Progress bool   `help:"Draw a progress bar on stderr" default:"true" negatable:""`
	Solver   string `help:"Vertex cover method" default:"flow" enum:"flow,simplex"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("graphstat"),
		kong.Description("Combinatorial statistics of random graph ensembles."),
		kong.UsageOnError(),
	)
	err := ctx.Run(newApp(c.Globals, os.Stdout, os.Stderr))
	ctx.FatalIfErrorf(err)
}

// createLogger builds the console logger for level, falling back to info.
func createLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("service", "graphstat").Logger()
}
