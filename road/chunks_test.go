package road

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChunker(t *testing.T) *Chunker {
	t.Helper()
	c, err := NewChunker(DefaultChunkLength, DefaultChunkMargin, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return c
}

func TestNewChunker_RejectsBadConfig(t *testing.T) {
	_, err := NewChunker(0, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidChunkLength)

	_, err = NewChunker(-39.5, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidChunkLength)

	_, err = NewChunker(10, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidMargin)

	_, err = NewChunker(10, 10, nil)
	assert.ErrorIs(t, err, ErrInvalidMargin)
}

func TestChunker_Bounds(t *testing.T) {
	c := newTestChunker(t)

	assert.Equal(t, DefaultChunkLength, c.Length())
	assert.Equal(t, DefaultChunkMargin, c.Margin())
	assert.Equal(t, 0.0, c.ChunkStart(1))
	assert.InDelta(t, 38.49791, c.ChunkEnd(1), 1e-9)
	assert.InDelta(t, 39.49791, c.ChunkStart(2), 1e-9)

	for chunk := -50; chunk <= 50; chunk++ {
		assert.Less(t, c.ChunkStart(chunk), c.ChunkEnd(chunk), "chunk %d", chunk)
	}
}

func TestChunker_SpawnDepthWithinChunk(t *testing.T) {
	c := newTestChunker(t)

	for _, chunk := range []int{-3, 0, 1, 2, 17, 1000} {
		for i := 0; i < 500; i++ {
			d := c.SpawnDepth(chunk)
			assert.GreaterOrEqual(t, d, c.ChunkStart(chunk))
			assert.LessOrEqual(t, d, c.ChunkEnd(chunk))
		}
	}
}

func TestChunker_ChunkOf(t *testing.T) {
	c := newTestChunker(t)

	assert.Equal(t, 0, c.ChunkOf(0))
	assert.Equal(t, 0, c.ChunkOf(39.4))
	assert.Equal(t, 1, c.ChunkOf(39.5))
	assert.Equal(t, -1, c.ChunkOf(-0.1))
	assert.Equal(t, -1, c.ChunkOf(-39.49791))
	assert.Equal(t, -2, c.ChunkOf(-39.5))
}

func TestChunker_CourseChunkRoundTrip(t *testing.T) {
	c := newTestChunker(t)

	for chunk := 1; chunk <= 20; chunk++ {
		for i := 0; i < 50; i++ {
			z := -c.SpawnDepth(chunk)
			assert.Equal(t, chunk, c.CourseChunk(z))
		}
	}
}
