package main

import (
	"testing"

	"github.com/usnistgov/mcpi/core/testenv"
	"github.com/usnistgov/mcpi/montecarlo"
	"github.com/usnistgov/mcpi/rng"
	"github.com/usnistgov/mcpi/workerpool"
)

var makeAR = testenv.MakeAR

func defaultFlags() commandFlags {
	return commandFlags{
		rng:       string(rng.Default),
		precision: string(montecarlo.F32),
		runs:      1,
	}
}

func TestParseSequential(t *testing.T) {
	assert, require := makeAR(t)

	pc, e := parseArgs([]string{"1_000_000"}, defaultFlags())
	require.NoError(e)
	assert.EqualValues(1000000, pc.n)
	assert.False(pc.parallel)
	assert.Equal(1, pc.runs)
	assert.Equal(rng.Default, pc.cfg.Algorithm)
	assert.Nil(pc.cfg.Seeder)
}

func TestParseParallel(t *testing.T) {
	assert, require := makeAR(t)

	pc, e := parseArgs([]string{"1000", "par"}, defaultFlags())
	require.NoError(e)
	assert.True(pc.parallel)
	assert.Zero(pc.chunkSize)

	pc, e = parseArgs([]string{"1000", "64"}, defaultFlags())
	require.NoError(e)
	assert.True(pc.parallel)
	assert.EqualValues(64, pc.chunkSize)

	f := defaultFlags()
	f.parallel = true
	pc, e = parseArgs([]string{"1000"}, f)
	require.NoError(e)
	assert.True(pc.parallel)
	assert.Zero(pc.chunkSize)

	f = defaultFlags()
	f.chunk, f.chunkSet = 128, true
	pc, e = parseArgs([]string{"1000"}, f)
	require.NoError(e)
	assert.True(pc.parallel)
	assert.EqualValues(128, pc.chunkSize)

	pc, e = parseArgs([]string{"1000", "128"}, f)
	require.NoError(e)
	assert.EqualValues(128, pc.chunkSize)
}

func TestParseOptions(t *testing.T) {
	assert, require := makeAR(t)

	f := defaultFlags()
	f.rng, f.precision = "xoshiro", "f64"
	f.seed, f.seedSet = 99, true
	f.runs, f.json = 5, true
	pc, e := parseArgs([]string{"0x100"}, f)
	require.NoError(e)
	assert.EqualValues(256, pc.n)
	assert.Equal(rng.Xoshiro, pc.cfg.Algorithm)
	assert.Equal(montecarlo.F64, pc.cfg.Precision)
	assert.Equal(rng.FixedSeeder(99), pc.cfg.Seeder)
	assert.Equal(5, pc.runs)
	assert.True(pc.json)
}

func TestParseErrors(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := parseArgs(nil, defaultFlags())
	assert.ErrorIs(e, errNoIterations)

	for _, args := range [][]string{{"abc"}, {"-5"}, {"0"}, {"1.5"}} {
		_, e = parseArgs(args, defaultFlags())
		if assert.Error(e, "%v", args) {
			assert.Contains(e.Error(), "invalid number of iterations")
			assert.Contains(e.Error(), args[0])
		}
	}

	_, e = parseArgs([]string{"1000", "0"}, defaultFlags())
	assert.ErrorIs(e, workerpool.ErrChunkSize)

	f := defaultFlags()
	f.chunkSet = true
	_, e = parseArgs([]string{"1000"}, f)
	assert.ErrorIs(e, workerpool.ErrChunkSize)

	f.chunk = 10
	_, e = parseArgs([]string{"1000", "20"}, f)
	assert.ErrorContains(e, "conflicting")

	for _, flag := range []string{"--json", "-p", "--seed=5"} {
		_, e = parseArgs([]string{"1000", flag}, defaultFlags())
		assert.ErrorContains(e, "must precede ITERATIONS", flag)
	}

	_, e = parseArgs([]string{"1000", "1", "2"}, defaultFlags())
	assert.ErrorContains(e, "unexpected arguments")

	f = defaultFlags()
	f.runs = 0
	_, e = parseArgs([]string{"1000"}, f)
	assert.ErrorContains(e, "--runs")

	f = defaultFlags()
	f.rng, f.precision = "lcg", "f16"
	_, e = parseArgs([]string{"1000"}, f)
	assert.ErrorIs(e, rng.ErrUnknownAlgorithm)
	assert.ErrorIs(e, montecarlo.ErrPrecision)
}

func TestMergeFile(t *testing.T) {
	assert, require := makeAR(t)

	alg, seed, chunk, runs := "mt19937", uint64(3), uint64(500), 2
	f := defaultFlags()
	f.file = fileConfig{Rng: &alg, Seed: &seed, Chunk: &chunk, Runs: &runs}
	f.runs = 7
	f.mergeFile(func(name string) bool { return name == "runs" })

	pc, e := parseArgs([]string{"1000"}, f)
	require.NoError(e)
	assert.Equal(rng.MT19937, pc.cfg.Algorithm)
	assert.Equal(montecarlo.F32, pc.cfg.Precision)
	assert.Equal(rng.FixedSeeder(3), pc.cfg.Seeder)
	assert.True(pc.parallel)
	assert.EqualValues(500, pc.chunkSize)
	assert.Equal(7, pc.runs)
}
