package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/usnistgov/mcpi/montecarlo"
	"github.com/usnistgov/mcpi/rng"
	"github.com/usnistgov/mcpi/workerpool"
)

var errNoIterations = errors.New("number of iterations not specified")

// fileConfig contains options from the --config YAML document.
type fileConfig struct {
	Rng       *string `json:"rng"`
	Precision *string `json:"precision"`
	Seed      *uint64 `json:"seed"`
	Chunk     *uint64 `json:"chunk"`
	Runs      *int    `json:"runs"`
}

// commandFlags contains flag values, as assigned by cli.
type commandFlags struct {
	parallel  bool
	chunk     uint64
	chunkSet  bool
	rng       string
	precision string
	seed      uint64
	seedSet   bool
	runs      int
	json      bool
	file      fileConfig
}

// mergeFile fills options not given on the command line or environment from the --config document.
func (f *commandFlags) mergeFile(isSet func(name string) bool) {
	if v := f.file.Rng; v != nil && !isSet("rng") {
		f.rng = *v
	}
	if v := f.file.Precision; v != nil && !isSet("precision") {
		f.precision = *v
	}
	if v := f.file.Seed; v != nil && !isSet("seed") {
		f.seed, f.seedSet = *v, true
	}
	if v := f.file.Chunk; v != nil && !isSet("chunk") {
		f.chunk, f.chunkSet = *v, true
	}
	if v := f.file.Runs; v != nil && !isSet("runs") {
		f.runs = *v
	}
}

type parsedCommand struct {
	n         uint64
	parallel  bool
	chunkSize uint64 // zero selects montecarlo.DefaultChunkSize
	runs      int
	json      bool
	cfg       montecarlo.Config
}

func parseArgs(args []string, f commandFlags) (pc parsedCommand, e error) {
	switch len(args) {
	case 0:
		return pc, errNoIterations
	case 1, 2:
	default:
		return pc, fmt.Errorf("unexpected arguments %q", args[2:])
	}

	if pc.n, e = strconv.ParseUint(args[0], 0, 64); e != nil {
		return pc, fmt.Errorf("invalid number of iterations %q: %w", args[0], e)
	}
	if pc.n == 0 {
		return pc, fmt.Errorf("invalid number of iterations %q: must be positive", args[0])
	}

	pc.parallel = f.parallel
	if len(args) == 2 {
		if strings.HasPrefix(args[1], "-") {
			return pc, fmt.Errorf("flag %q must precede ITERATIONS", args[1])
		}
		pc.parallel = true
		if chunk, e := strconv.ParseUint(args[1], 0, 64); e == nil {
			if chunk == 0 {
				return pc, fmt.Errorf("invalid chunk size %q: %w", args[1], workerpool.ErrChunkSize)
			}
			pc.chunkSize = chunk
		}
	}
	if f.chunkSet {
		if f.chunk == 0 {
			return pc, fmt.Errorf("invalid --chunk 0: %w", workerpool.ErrChunkSize)
		}
		if pc.chunkSize != 0 && pc.chunkSize != f.chunk {
			return pc, fmt.Errorf("conflicting chunk sizes %d and %d", pc.chunkSize, f.chunk)
		}
		pc.parallel, pc.chunkSize = true, f.chunk
	}

	if pc.runs = f.runs; pc.runs < 1 {
		return pc, fmt.Errorf("invalid --runs %d: must be positive", f.runs)
	}
	pc.json = f.json

	pc.cfg = montecarlo.Config{
		Algorithm: rng.Algorithm(f.rng),
		Precision: montecarlo.Precision(f.precision),
	}
	if f.seedSet {
		pc.cfg.Seeder = rng.FixedSeeder(f.seed)
	}
	if e = pc.cfg.Validate(); e != nil {
		return pc, e
	}
	return pc, nil
}

func joinAlgorithms(list []rng.Algorithm) string {
	names := make([]string, len(list))
	for i, alg := range list {
		names[i] = string(alg)
	}
	return strings.Join(names, ", ")
}
