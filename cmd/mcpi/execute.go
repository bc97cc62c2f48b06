package main

import (
	"io"
	"time"

	"github.com/usnistgov/mcpi/core/logging"
	"github.com/usnistgov/mcpi/core/runningstat"
	"github.com/usnistgov/mcpi/montecarlo"
	"github.com/usnistgov/mcpi/rng"
	"go.uber.org/zap"
)

var logger = logging.New("main")

// engineForRun creates the engine for repetition number run.
// With a fixed seed, each repetition derives its own master seed, so repetitions differ while the invocation stays reproducible.
func engineForRun(cfg montecarlo.Config, run int) (*montecarlo.Engine, error) {
	if fixed, ok := cfg.Seeder.(rng.FixedSeeder); ok {
		cfg.Seeder = fixed.Derive(run)
	}
	return montecarlo.New(cfg)
}

func execute(pc parsedCommand, w io.Writer) error {
	eng, e := engineForRun(pc.cfg, 0)
	if e != nil {
		return e
	}
	cfg := eng.Config()

	r := report{
		Mode:      "sequential",
		Algorithm: cfg.Algorithm,
		Precision: cfg.Precision,
	}
	if pc.parallel {
		r.Mode, r.Workers, r.ChunkSize = "parallel", eng.Workers(), pc.chunkSize
		if r.ChunkSize == 0 {
			r.ChunkSize = montecarlo.DefaultChunkSize(pc.n, eng.Workers())
		}
	}
	logger.Debug("starting", zap.String("mode", r.Mode), zap.Uint64("n", pc.n), zap.Int("workers", r.Workers),
		zap.Uint64("chunk-size", r.ChunkSize), zap.Int("runs", pc.runs))

	_, fixedSeed := pc.cfg.Seeder.(rng.FixedSeeder)
	var stat runningstat.RunningStat
	for i := 0; i < pc.runs; i++ {
		if fixedSeed && i > 0 {
			if eng, e = engineForRun(pc.cfg, i); e != nil {
				return e
			}
		}

		t0 := time.Now()
		var inside uint64
		if pc.parallel {
			inside = eng.RunParallel(pc.n, r.ChunkSize)
		} else {
			inside = eng.Run(pc.n)
		}
		run := newRunReport(montecarlo.Estimate{Total: pc.n, Inside: inside, Elapsed: time.Since(t0)})
		if run.Pi != nil {
			stat.Push(*run.Pi)
		}
		r.Runs = append(r.Runs, run)
	}
	if pc.runs > 1 {
		summary := stat.Read()
		r.Summary = &summary
	}

	if pc.json {
		return r.WriteJSON(w)
	}
	return r.WriteText(w)
}
