package workerpool

import (
	"errors"
	"fmt"
)

// ErrChunkSize indicates the chunk size is zero.
var ErrChunkSize = errors.New("chunk size must be positive")

// Chunk is a contiguous range [Begin,End) of the iteration space.
type Chunk struct {
	Index uint64
	Begin uint64
	End   uint64
}

// Len returns number of iterations in the chunk.
func (c Chunk) Len() uint64 {
	return c.End - c.Begin
}

func (c Chunk) String() string {
	return fmt.Sprintf("%d[%d,%d)", c.Index, c.Begin, c.End)
}

// Partition divides [0,n) into chunks of equal size, except that the last chunk holds the remainder.
type Partition struct {
	n     uint64
	size  uint64
	count uint64
}

// NewPartition creates a Partition.
// If size is not less than n, the whole range is one chunk.
func NewPartition(n, size uint64) (p Partition, e error) {
	if size == 0 {
		return p, ErrChunkSize
	}
	p.n, p.size = n, size
	p.count = n / size
	if n%size != 0 {
		p.count++
	}
	return p, nil
}

// MustNewPartition creates a Partition, and panics on error.
func MustNewPartition(n, size uint64) Partition {
	p, e := NewPartition(n, size)
	if e != nil {
		panic(e)
	}
	return p
}

// N returns size of the iteration space.
func (p Partition) N() uint64 {
	return p.n
}

// Size returns nominal chunk size.
func (p Partition) Size() uint64 {
	return p.size
}

// Count returns number of chunks.
func (p Partition) Count() uint64 {
	return p.count
}

// Chunk returns the i-th chunk.
// i must be less than Count().
func (p Partition) Chunk(i uint64) (c Chunk) {
	c.Index = i
	c.Begin = i * p.size
	c.End = c.Begin + p.size
	if c.End > p.n || c.End < c.Begin {
		c.End = p.n
	}
	return c
}
