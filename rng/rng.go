// Package rng provides pluggable pseudo-random number generators.
//
// A Source is not thread-safe.
// Each execution context (a goroutine running one sequence of trials) should own its Source,
// seeded from a Seeder with a context number unique among the concurrent contexts.
package rng

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAlgorithm indicates the algorithm name is not registered.
var ErrUnknownAlgorithm = errors.New("unknown PRNG algorithm")

// Source produces uniformly distributed 64-bit values.
type Source interface {
	// Uint64 returns a pseudo-random number in [0, MaxUint64] and advances the generator state.
	Uint64() uint64
}

// Seed is seed material for constructing a Source.
// An algorithm may use only part of it.
type Seed [4]uint64

// Algorithm identifies a registered PRNG algorithm.
type Algorithm string

// Default is the default algorithm.
const Default Algorithm = PCG

// Valid determines whether the algorithm is registered.
func (alg Algorithm) Valid() bool {
	_, ok := ctors[alg]
	return ok
}

// New constructs a Source of this algorithm.
func (alg Algorithm) New(seed Seed) (Source, error) {
	ctor, ok := ctors[alg]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
	}
	return ctor(seed), nil
}

// Ctor constructs a Source from seed material.
type Ctor func(seed Seed) Source

var ctors = map[Algorithm]Ctor{}

// Register adds an algorithm.
// This should be called during init.
// Panics if the name is empty or already registered.
func Register(alg Algorithm, ctor Ctor) {
	if alg == "" || ctors[alg] != nil {
		panic(fmt.Errorf("rng.Register(%q) duplicate or empty", alg))
	}
	ctors[alg] = ctor
}

// Algorithms returns a sorted list of registered algorithms.
func Algorithms() (list []Algorithm) {
	for alg := range ctors {
		list = append(list, alg)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Float64 returns a uniformly distributed float64 in [0,1).
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) * 0x1p-53
}

// Float32 returns a uniformly distributed float32 in [0,1).
func Float32(src Source) float32 {
	return float32(src.Uint64()>>40) * 0x1p-24
}
