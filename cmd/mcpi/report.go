package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/usnistgov/mcpi/core/runningstat"
	"github.com/usnistgov/mcpi/montecarlo"
	"github.com/usnistgov/mcpi/rng"
)

type runReport struct {
	montecarlo.Estimate
	Pi         *float64 `json:"pi"`
	Throughput float64  `json:"throughput"`
}

func newRunReport(est montecarlo.Estimate) (r runReport) {
	r.Estimate = est
	if pi, ok := est.Pi(); ok {
		r.Pi = &pi
	}
	r.Throughput = est.Throughput()
	return r
}

type report struct {
	Mode      string                `json:"mode"`
	Algorithm rng.Algorithm         `json:"rng"`
	Precision montecarlo.Precision  `json:"precision"`
	Workers   int                   `json:"workers,omitempty"`
	ChunkSize uint64                `json:"chunkSize,omitempty"`
	Runs      []runReport           `json:"runs"`
	Summary   *runningstat.Snapshot `json:"summary,omitempty"`
}

func (r report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (r report) WriteText(w io.Writer) (e error) {
	p := func(format string, args ...any) {
		if e == nil {
			_, e = fmt.Fprintf(w, format, args...)
		}
	}

	if r.Mode == "parallel" {
		p("Mode: parallel, %d workers, chunk size %d\n", r.Workers, r.ChunkSize)
	} else {
		p("Mode: sequential\n")
	}
	for i, run := range r.Runs {
		if len(r.Runs) > 1 {
			if i > 0 {
				p("\n")
			}
			p("Run %d/%d\n", i+1, len(r.Runs))
		}
		p("Total: %d\n", run.Total)
		p("Inside: %d\n", run.Inside)
		if run.Pi == nil {
			p("π: undefined\n")
		} else {
			p("π: %v\n", *run.Pi)
		}
		p("Time elapsed: %s\n", formatElapsed(run.Elapsed))
		p("Iterations/s: %.3fM\n", run.Throughput/1e6)
	}

	if r.Summary != nil {
		p("\nπ mean: %v\n", r.Summary.Mean)
		p("π stdev: %v\n", r.Summary.Stdev)
	}
	return e
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%d.%03ds", d/time.Second, (d%time.Second)/time.Millisecond)
}
