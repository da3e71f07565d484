package road

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultChunkLength is the length of one chunk along the travel axis
	DefaultChunkLength = 39.49791
	// DefaultChunkMargin keeps spawns off the far boundary of a chunk
	DefaultChunkMargin = 1.0
)

var (
	ErrInvalidChunkLength = errors.New("chunk length must be positive")
	ErrInvalidMargin      = errors.New("chunk margin must be non-negative and shorter than the chunk")
)

// Chunker partitions the travel axis into fixed-length chunks.
// Chunk c spans [(c-1)*L, c*L - margin] in travel distance; chunk indices are
// unbounded, so zero and negative chunks are valid coordinates.
type Chunker struct {
	length float64
	margin float64
	rng    *rand.Rand
}

// NewChunker creates a chunker. A nil rng uses a time-seeded source.
func NewChunker(length, margin float64, rng *rand.Rand) (*Chunker, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChunkLength, length)
	}
	if margin < 0 || margin >= length || math.IsNaN(margin) {
		return nil, fmt.Errorf("%w: margin %v, length %v", ErrInvalidMargin, margin, length)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Chunker{length: length, margin: margin, rng: rng}, nil
}

// Length returns the chunk length
func (c *Chunker) Length() float64 {
	return c.length
}

// Margin returns the spawn margin at the end of each chunk
func (c *Chunker) Margin() float64 {
	return c.margin
}

// ChunkStart returns the travel distance at which chunk starts
func (c *Chunker) ChunkStart(chunk int) float64 {
	return float64(chunk-1) * c.length
}

// ChunkEnd returns the last travel distance at which an actor may spawn in chunk
func (c *Chunker) ChunkEnd(chunk int) float64 {
	return float64(chunk)*c.length - c.margin
}

// ChunkOf maps a travel-axis coordinate to a chunk coordinate: floor(z / L).
// World positions run toward negative Z, so actors ahead of the origin map to
// negative values.
func (c *Chunker) ChunkOf(z float64) int {
	return int(math.Floor(z / c.length))
}

// CourseChunk maps a world Z (forward is negative) to the 1-based chunk the
// position lies in, matching the index given to SpawnDepth.
func (c *Chunker) CourseChunk(z float64) int {
	return int(math.Floor(-z/c.length)) + 1
}

// SpawnDepth samples a travel distance uniformly from [ChunkStart, ChunkEnd]
func (c *Chunker) SpawnDepth(chunk int) float64 {
	return c.Uniform(c.ChunkStart(chunk), c.ChunkEnd(chunk))
}

// Uniform samples uniformly from [lo, hi]
func (c *Chunker) Uniform(lo, hi float64) float64 {
	return c.rng.Float64()*(hi-lo) + lo
}

// Intn exposes the chunker's source for lane and kind selection
func (c *Chunker) Intn(n int) int {
	return c.rng.Intn(n)
}
