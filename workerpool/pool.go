// Package workerpool provides a fixed-size fork-join worker pool.
//
// A Run divides the iteration space into chunks and spawns one goroutine per worker.
// Workers claim chunks dynamically, so a worker that finishes early takes more chunks.
// Each worker sets up its own context when it claims its first chunk, and reuses it for every later chunk
// of the same Run, so that worker-local state such as a PRNG needs no locking.
package workerpool

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/usnistgov/mcpi/core/hwinfo"
	"github.com/usnistgov/mcpi/core/logging"
	"github.com/zyedidia/generic"
	"go.uber.org/zap"
)

var logger = logging.New("workerpool")

// Config contains Pool configuration.
type Config struct {
	// Workers is the number of workers.
	// Default is the number of logical cores usable by this process.
	Workers int
}

func (cfg *Config) applyDefaults() {
	if cfg.Workers <= 0 {
		cfg.Workers = hwinfo.NumWorkers(hwinfo.Default)
	}
}

// Pool is a fixed-size worker pool.
// It holds no goroutines between runs.
type Pool struct {
	workers int
}

// New creates a Pool.
func New(cfg Config) *Pool {
	cfg.applyDefaults()
	return &Pool{workers: cfg.Workers}
}

// Workers returns number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Job describes a fork-join computation with per-worker context W and result R.
type Job[W, R any] struct {
	// Setup constructs the context of a worker.
	// It is invoked at most once per worker in a Run, when the worker claims its first chunk.
	Setup func(worker int) W

	// Process computes the result of one chunk.
	// Calls on the same worker are sequential.
	Process func(w W, c Chunk) R

	// Merge combines two results.
	// It must be associative and commutative, because chunks complete in no particular order.
	Merge func(a, b R) R
}

type workerResult[R any] struct {
	value R
	ok    bool
}

// Run executes job over every chunk of part and returns the merged result.
// Returns zero R if part has no chunks.
// Run blocks until every chunk has been processed.
func Run[W, R any](p *Pool, part Partition, job Job[W, R]) (result R) {
	nWorkers := int(generic.Min(uint64(p.workers), part.Count()))
	if nWorkers == 0 {
		return result
	}

	logEntry := logger.With(zap.Uint64("n", part.N()), zap.Uint64("chunk-size", part.Size()),
		zap.Uint64("chunks", part.Count()), zap.Int("workers", nWorkers))
	logEntry.Debug("run starting")
	t0 := time.Now()

	var cursor atomic.Uint64
	results := make([]workerResult[R], nWorkers)
	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go func(worker int) {
			defer wg.Done()
			results[worker] = work(worker, &cursor, part, job)
		}(i)
	}
	wg.Wait()

	var ok bool
	for _, wr := range results {
		switch {
		case !wr.ok:
		case ok:
			result = job.Merge(result, wr.value)
		default:
			result, ok = wr.value, true
		}
	}
	logEntry.Debug("run finished", zap.Duration("elapsed", time.Since(t0)))
	return result
}

func work[W, R any](worker int, cursor *atomic.Uint64, part Partition, job Job[W, R]) (wr workerResult[R]) {
	var w W
	hasContext := false
	for {
		i := cursor.Add(1) - 1
		if i >= part.Count() {
			return wr
		}
		if !hasContext {
			w, hasContext = job.Setup(worker), true
			logger.Debug("worker context created", zap.Int("worker", worker), zap.Uint64("first-chunk", i))
		}
		r := job.Process(w, part.Chunk(i))
		if wr.ok {
			wr.value = job.Merge(wr.value, r)
		} else {
			wr.value, wr.ok = r, true
		}
	}
}
