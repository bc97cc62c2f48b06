package montecarlo

import (
	"errors"
	"fmt"

	"github.com/usnistgov/mcpi/rng"
	"go.uber.org/multierr"
)

// ErrPrecision indicates the precision is not recognized.
var ErrPrecision = errors.New("unknown precision")

// Precision selects the floating point type of trial coordinates.
// The same type is used for drawing and for the inside/outside comparison.
type Precision string

// Precision values.
const (
	F32 Precision = "f32"
	F64 Precision = "f64"
)

// Valid determines whether the precision is recognized.
func (p Precision) Valid() bool {
	return p == F32 || p == F64
}

// Config contains Engine configuration.
type Config struct {
	// Algorithm selects the PRNG algorithm.
	// Default is rng.Default.
	Algorithm rng.Algorithm

	// Precision selects coordinate precision.
	// Default is F32.
	Precision Precision

	// Seeder provides PRNG seed material.
	// Default is rng.EntropySeeder.
	// The sequential run uses seed context 0; parallel worker i uses seed context i.
	Seeder rng.Seeder

	// Workers overrides the worker pool size.
	// Default is the number of logical cores usable by this process.
	Workers int
}

func (cfg *Config) applyDefaults() {
	if cfg.Algorithm == "" {
		cfg.Algorithm = rng.Default
	}
	if cfg.Precision == "" {
		cfg.Precision = F32
	}
	if cfg.Seeder == nil {
		cfg.Seeder = rng.EntropySeeder{}
	}
}

// Validate checks the configuration after applying defaults.
func (cfg Config) Validate() error {
	cfg.applyDefaults()
	var errs []error
	if !cfg.Algorithm.Valid() {
		errs = append(errs, fmt.Errorf("%w %q", rng.ErrUnknownAlgorithm, cfg.Algorithm))
	}
	if !cfg.Precision.Valid() {
		errs = append(errs, fmt.Errorf("%w %q", ErrPrecision, cfg.Precision))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", cfg.Workers))
	}
	return multierr.Combine(errs...)
}
