package rng

import (
	"encoding/binary"
	randv2 "math/rand/v2"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// Registered algorithms.
const (
	// PCG is PCG-DXSM 128/64 with separate state and stream words.
	PCG Algorithm = "pcg"
	// ChaCha8 is the ChaCha8 stream cipher used as a generator.
	ChaCha8 Algorithm = "chacha8"
	// Xoshiro is xoshiro256**.
	Xoshiro Algorithm = "xoshiro"
	// MT19937 is the 64-bit Mersenne Twister.
	MT19937 Algorithm = "mt19937"
	// PCG128 is PCG XSL-RR 128/64.
	PCG128 Algorithm = "pcg128"
)

func init() {
	Register(PCG, func(seed Seed) Source {
		return randv2.NewPCG(seed[0], seed[1])
	})
	Register(ChaCha8, func(seed Seed) Source {
		var key [32]byte
		for i, word := range seed {
			binary.LittleEndian.PutUint64(key[8*i:], word)
		}
		return randv2.NewChaCha8(key)
	})
	Register(Xoshiro, func(seed Seed) Source {
		return prng.NewXoshiro256starstar(seed[0])
	})
	Register(MT19937, func(seed Seed) Source {
		src := prng.NewMT19937_64()
		src.SeedFromKeys(seed[:])
		return src
	})
	Register(PCG128, func(seed Seed) Source {
		src := &exprand.PCGSource{}
		src.Seed(seed[0])
		return src
	})
}
