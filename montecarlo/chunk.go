package montecarlo

import (
	binutils "github.com/jfoster/binary-utilities"
	"github.com/zyedidia/generic"
)

// Default chunking parameters.
const (
	ChunksPerWorker     = 64
	MinDefaultChunkSize = 4096
)

// DefaultChunkSize chooses a chunk size when the caller requests parallel mode without one.
// It aims at ChunksPerWorker chunks per worker, rounded to a power of two and no less than MinDefaultChunkSize,
// but never exceeds n so that a small n becomes a single chunk.
// The result is always positive.
func DefaultChunkSize(n uint64, workers int) uint64 {
	target := n / (uint64(generic.Max(workers, 1)) * ChunksPerWorker)
	size := generic.Max(uint64(binutils.NearPowerOfTwo(int64(target))), MinDefaultChunkSize)
	return generic.Max(generic.Min(size, n), 1)
}
