// Package montecarlo estimates π by sampling random points in the unit square.
//
// Each trial draws x and y uniformly in [0,1) and classifies the point as inside when x²+y² ≤ 1.
// The fraction of inside points approaches π/4.
package montecarlo

import (
	"io"

	"github.com/usnistgov/mcpi/core/events"
	"github.com/usnistgov/mcpi/core/logging"
	"github.com/usnistgov/mcpi/rng"
	"github.com/usnistgov/mcpi/workerpool"
	"go.uber.org/zap"
)

var logger = logging.New("montecarlo")

type engineEvent int

const (
	evtSourceCreated engineEvent = iota // listener receives seed context number
)

// Inside determines whether (x,y) is inside the unit circle.
// Points on the circle are inside.
// Each square is rounded to F before the sum, so the result does not depend on fused multiply-add.
func Inside[F float32 | float64](x, y F) bool {
	return F(x*x)+F(y*y) <= 1
}

func countInside32(src rng.Source, n uint64) (inside uint64) {
	for i := uint64(0); i < n; i++ {
		x := rng.Float32(src)
		y := rng.Float32(src)
		if Inside(x, y) {
			inside++
		}
	}
	return inside
}

func countInside64(src rng.Source, n uint64) (inside uint64) {
	for i := uint64(0); i < n; i++ {
		x := rng.Float64(src)
		y := rng.Float64(src)
		if Inside(x, y) {
			inside++
		}
	}
	return inside
}

// WorkerContext is the state owned by one parallel worker.
type WorkerContext struct {
	Worker int
	Source rng.Source
}

// Engine runs Monte Carlo trials.
// Run and RunParallel may be invoked concurrently; each invocation uses its own PRNG instances.
type Engine struct {
	cfg     Config
	pool    *workerpool.Pool
	emitter *events.Emitter
	count   func(src rng.Source, n uint64) uint64
}

// New creates an Engine.
func New(cfg Config) (*Engine, error) {
	cfg.applyDefaults()
	if e := cfg.Validate(); e != nil {
		return nil, e
	}

	eng := &Engine{
		cfg:     cfg,
		pool:    workerpool.New(workerpool.Config{Workers: cfg.Workers}),
		emitter: events.NewEmitter(),
		count:   countInside32,
	}
	if cfg.Precision == F64 {
		eng.count = countInside64
	}
	eng.cfg.Workers = eng.pool.Workers()
	return eng, nil
}

// Config returns the configuration with defaults applied.
func (eng *Engine) Config() Config {
	return eng.cfg
}

// Workers returns the worker pool size.
func (eng *Engine) Workers() int {
	return eng.pool.Workers()
}

// OnSourceCreated registers a callback when a PRNG instance has been constructed.
// The callback receives the seed context number.
// Returns an io.Closer that cancels the callback registration.
func (eng *Engine) OnSourceCreated(cb func(ctx int)) io.Closer {
	return eng.emitter.On(evtSourceCreated, cb)
}

func (eng *Engine) newSource(ctx int) rng.Source {
	src, e := eng.cfg.Algorithm.New(eng.cfg.Seeder.Seed(ctx))
	if e != nil {
		logger.Panic("Algorithm.New", zap.Error(e))
	}
	eng.emitter.Emit(evtSourceCreated, ctx)
	return src
}

// Run executes n trials sequentially and returns the number of inside points.
func (eng *Engine) Run(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	inside := eng.count(eng.newSource(0), n)
	logger.Debug("sequential run finished", zap.Uint64("n", n), zap.Uint64("inside", inside))
	return inside
}

// RunParallel executes n trials on the worker pool and returns the number of inside points.
//
// Trials are divided into chunks of chunkSize; chunkSize not less than n yields one chunk.
// Each worker constructs one PRNG instance when it claims its first chunk.
// Panics if chunkSize is zero; callers should validate it first.
func (eng *Engine) RunParallel(n, chunkSize uint64) uint64 {
	part := workerpool.MustNewPartition(n, chunkSize)
	inside := workerpool.Run(eng.pool, part, workerpool.Job[*WorkerContext, uint64]{
		Setup: func(worker int) *WorkerContext {
			return &WorkerContext{
				Worker: worker,
				Source: eng.newSource(worker),
			}
		},
		Process: func(w *WorkerContext, c workerpool.Chunk) uint64 {
			return eng.count(w.Source, c.Len())
		},
		Merge: func(a, b uint64) uint64 {
			return a + b
		},
	})
	logger.Debug("parallel run finished", zap.Uint64("n", n), zap.Uint64("chunk-size", chunkSize),
		zap.Uint64("inside", inside))
	return inside
}
