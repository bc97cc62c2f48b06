package rng_test

import (
	"math"
	"testing"

	"github.com/usnistgov/mcpi/core/testenv"
	"github.com/usnistgov/mcpi/rng"
)

var makeAR = testenv.MakeAR

type constSource uint64

func (c constSource) Uint64() uint64 {
	return uint64(c)
}

func TestRegistry(t *testing.T) {
	assert, require := makeAR(t)

	assert.Equal([]rng.Algorithm{rng.ChaCha8, rng.MT19937, rng.PCG, rng.PCG128, rng.Xoshiro}, rng.Algorithms())
	assert.True(rng.Default.Valid())
	assert.False(rng.Algorithm("lcg").Valid())

	_, e := rng.Algorithm("lcg").New(rng.Seed{})
	require.ErrorIs(e, rng.ErrUnknownAlgorithm)
	assert.Contains(e.Error(), `"lcg"`)

	assert.Panics(func() { rng.Register(rng.PCG, nil) })
	assert.Panics(func() { rng.Register("", nil) })
}

func TestConversionBounds(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(0.0, rng.Float64(constSource(0)))
	assert.Equal(float32(0), rng.Float32(constSource(0)))

	f64 := rng.Float64(constSource(math.MaxUint64))
	assert.Less(f64, 1.0)
	assert.Equal(1-0x1p-53, f64)

	f32 := rng.Float32(constSource(math.MaxUint64))
	assert.Less(f32, float32(1))
	assert.Equal(float32(1-0x1p-24), f32)
}

func TestUniform(t *testing.T) {
	const n = 200000
	for _, alg := range rng.Algorithms() {
		alg := alg
		t.Run(string(alg), func(t *testing.T) {
			assert, require := makeAR(t)
			src, e := alg.New(rng.FixedSeeder(42).Seed(1))
			require.NoError(e)

			var sum64, sum32 float64
			var buckets [10]int
			for i := 0; i < n; i++ {
				x := rng.Float64(src)
				require.GreaterOrEqual(x, 0.0)
				require.Less(x, 1.0)
				sum64 += x
				buckets[int(x*10)]++

				y := rng.Float32(src)
				require.GreaterOrEqual(y, float32(0))
				require.Less(y, float32(1))
				sum32 += float64(y)
			}

			// standard error of the mean is 1/sqrt(12n) = 0.00065
			assert.InDelta(0.5, sum64/n, 0.004)
			assert.InDelta(0.5, sum32/n, 0.004)
			for i, cnt := range buckets {
				assert.InDelta(n/10, cnt, 1000, "bucket %d", i)
			}
		})
	}
}

func TestFixedSeederDerive(t *testing.T) {
	assert, _ := makeAR(t)

	s := rng.FixedSeeder(7)
	assert.Equal(s, s.Derive(0))
	assert.Equal(s.Derive(3), rng.FixedSeeder(7).Derive(3))

	seen := map[rng.FixedSeeder]int{}
	for run := 0; run < 16; run++ {
		d := s.Derive(run)
		assert.NotContains(seen, d, "run %d collides with run %d", run, seen[d])
		seen[d] = run
	}
	assert.NotEqual(s.Derive(1), rng.FixedSeeder(8).Derive(1))
	assert.NotEqual(s.Derive(1).Seed(0), s.Seed(0))
}

func TestFixedSeeder(t *testing.T) {
	assert, _ := makeAR(t)

	s := rng.FixedSeeder(7)
	assert.Equal(s.Seed(0), s.Seed(0))
	assert.Equal(s.Seed(3), rng.FixedSeeder(7).Seed(3))
	assert.NotEqual(s.Seed(0), s.Seed(1))
	assert.NotEqual(s.Seed(0), rng.FixedSeeder(8).Seed(0))

	seed := s.Seed(0)
	assert.NotEqual(seed[0], seed[1])

	for _, alg := range rng.Algorithms() {
		a, _ := alg.New(s.Seed(5))
		b, _ := alg.New(s.Seed(5))
		c, _ := alg.New(s.Seed(6))
		var sameAB, sameAC int
		for i := 0; i < 64; i++ {
			va, vb, vc := a.Uint64(), b.Uint64(), c.Uint64()
			if va == vb {
				sameAB++
			}
			if va == vc {
				sameAC++
			}
		}
		assert.Equal(64, sameAB, "%s reproducible", alg)
		assert.Zero(sameAC, "%s decorrelated", alg)
	}
}

func TestEntropySeeder(t *testing.T) {
	assert, _ := makeAR(t)

	var s rng.EntropySeeder
	a, b := s.Seed(0), s.Seed(0)
	assert.NotEqual(a, b)
	assert.NotEqual(rng.Seed{}, a)
}
