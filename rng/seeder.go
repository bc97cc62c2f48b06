package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	farm "github.com/dgryski/go-farm"
)

// Seeder provides seed material for execution contexts.
// Implementations must be thread-safe.
type Seeder interface {
	// Seed returns seed material for context number ctx.
	Seed(ctx int) Seed
}

// EntropySeeder seeds every context from the operating system entropy source.
// Each call returns fresh material, so repeated runs are independent.
type EntropySeeder struct{}

var _ Seeder = EntropySeeder{}

// Seed implements Seeder.
// Panics if the operating system entropy source fails.
func (EntropySeeder) Seed(int) (seed Seed) {
	var b [32]byte
	if _, e := crand.Read(b[:]); e != nil {
		panic(fmt.Errorf("crypto/rand.Read %w", e))
	}
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return seed
}

// FixedSeeder derives reproducible seed material from a master seed.
// Different contexts receive decorrelated material; the same (master, ctx) pair always yields the same material.
type FixedSeeder uint64

var _ Seeder = FixedSeeder(0)

// Seed implements Seeder.
func (master FixedSeeder) Seed(ctx int) (seed Seed) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(ctx))
	for i := range seed {
		binary.LittleEndian.PutUint64(b[8:], uint64(i))
		seed[i] = farm.Hash64WithSeed(b[:], uint64(master))
	}
	return seed
}

// Derive returns the master seed for repetition number run of the same invocation.
// Repetition 0 uses master itself; later repetitions receive decorrelated master seeds.
func (master FixedSeeder) Derive(run int) FixedSeeder {
	if run == 0 {
		return master
	}
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(run))
	copy(b[8:], "mcpi/run")
	return FixedSeeder(farm.Hash64WithSeed(b[:], uint64(master)))
}
