// Command mcpi estimates π with Monte Carlo sampling.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/mcpi/core/version"
	"github.com/usnistgov/mcpi/core/yamlflag"
	"github.com/usnistgov/mcpi/montecarlo"
	"github.com/usnistgov/mcpi/rng"
)

func newApp() *cli.App {
	var f commandFlags
	return &cli.App{
		Name:      "mcpi",
		Version:   version.V.String(),
		Usage:     "Estimate π by sampling random points in the unit square.",
		ArgsUsage: "ITERATIONS [PARALLEL]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "parallel",
				Aliases:     []string{"p"},
				Usage:       "Run on the worker pool with default chunking.",
				Destination: &f.parallel,
			},
			&cli.Uint64Flag{
				Name:        "chunk",
				Usage:       "Run on the worker pool with chunks of `SIZE` trials.",
				Destination: &f.chunk,
			},
			&cli.StringFlag{
				Name:        "rng",
				Usage:       "PRNG `algorithm`: " + joinAlgorithms(rng.Algorithms()) + ".",
				Value:       string(rng.Default),
				EnvVars:     []string{"MCPI_RNG"},
				Destination: &f.rng,
			},
			&cli.StringFlag{
				Name:        "precision",
				Usage:       "Coordinate `precision`: f32 or f64.",
				Value:       string(montecarlo.F32),
				EnvVars:     []string{"MCPI_PRECISION"},
				Destination: &f.precision,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "Fixed master `seed` for reproducible runs (default: operating system entropy).",
				Destination: &f.seed,
			},
			&cli.IntFlag{
				Name:        "runs",
				Usage:       "Repeat the estimation `K` times and summarize.",
				Value:       1,
				Destination: &f.runs,
			},
			&cli.GenericFlag{
				Name:        "config",
				Usage:       "YAML `document` or @file with options rng, precision, seed, chunk, runs.",
				Value:       yamlflag.New(&f.file),
				DefaultText: "none",
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print report as JSON.",
				Destination: &f.json,
			},
		},
		Action: func(c *cli.Context) error {
			f.chunkSet, f.seedSet = c.IsSet("chunk"), c.IsSet("seed")
			f.mergeFile(c.IsSet)
			pc, e := parseArgs(c.Args().Slice(), f)
			if e != nil {
				return e
			}
			return execute(pc, c.App.Writer)
		},
	}
}

func main() {
	e := newApp().Run(os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
