package road

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegments(t *testing.T) {
	input := `# warm-up
2
3C

4
4c
3
`
	segments, err := ParseSegments(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, segments, 5)

	assert.Equal(t, Segment{Chunk: 1, NumLanes: 2}, segments[0])
	assert.Equal(t, Segment{Chunk: 2, NumLanes: 3, Checkpoint: true}, segments[1])
	assert.Equal(t, Segment{Chunk: 4, NumLanes: 4, Checkpoint: true}, segments[3])
	assert.Equal(t, 5, segments[4].Chunk)
}

func TestParseSegments_Invalid(t *testing.T) {
	_, err := ParseSegments(strings.NewReader("2\nthree\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseSegments(strings.NewReader("0\n"))
	require.Error(t, err)
}

func TestNewCourse_Markers(t *testing.T) {
	chunks := newTestChunker(t)
	course, err := DefaultCourse(6, 3, 2, 1.5, chunks)
	require.NoError(t, err)

	// checkpoints at 2 and 4; chunk 6 is the finish, not a checkpoint
	require.Len(t, course.Markers, 3)
	assert.Equal(t, MarkerCheckpoint, course.Markers[0].Kind)
	assert.Equal(t, 2, course.Markers[0].Chunk)
	assert.Equal(t, MarkerCheckpoint, course.Markers[1].Kind)
	assert.Equal(t, MarkerFinish, course.Markers[2].Kind)
	assert.InDelta(t, -6*DefaultChunkLength, course.Markers[2].Z, 1e-9)

	// gates span every lane
	box := course.Markers[0].Box
	assert.LessOrEqual(t, box.Min.X, LaneX(0))
	assert.GreaterOrEqual(t, box.Max.X, LaneX(course.LaneOffset(2)))
	assert.NotEqual(t, course.Markers[0].ID, course.Markers[1].ID)
}

func TestCourse_Bounds(t *testing.T) {
	chunks := newTestChunker(t)
	course, err := DefaultCourse(6, 3, 2, 1.5, chunks)
	require.NoError(t, err)

	b := course.Bounds()
	assert.InDelta(t, LaneX(-0.75), b.Min.X, 1e-9)
	assert.InDelta(t, LaneX(course.LaneOffset(2)+0.75), b.Max.X, 1e-9)
	assert.Less(t, b.Min.Z, course.Markers[2].Z)
	assert.Greater(t, b.Max.Z, course.Markers[0].Z)
}

func TestNewCourse_Rejects(t *testing.T) {
	chunks := newTestChunker(t)

	_, err := NewCourse(nil, 1, chunks)
	assert.Error(t, err)

	_, err = DefaultCourse(3, 2, 0, 0, chunks)
	assert.Error(t, err)
}

func TestCourse_SegmentAt(t *testing.T) {
	course, err := DefaultCourse(3, 2, 0, 1, newTestChunker(t))
	require.NoError(t, err)

	assert.Nil(t, course.SegmentAt(0))
	assert.Nil(t, course.SegmentAt(4))
	assert.Equal(t, 3, course.SegmentAt(3).Chunk)
	assert.Equal(t, 2, course.MaxLanes())
	assert.Equal(t, 3, course.Length())
}

func TestLoadCourseFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turnpike.course")
	require.NoError(t, os.WriteFile(path, []byte("2\n3C\n3\n"), 0644))

	course, err := LoadCourseFromFile(path, 1, newTestChunker(t))
	require.NoError(t, err)
	assert.Equal(t, 3, course.Length())
	assert.Len(t, course.Markers, 2)

	_, err = LoadCourseFromFile(filepath.Join(dir, "missing"), 1, newTestChunker(t))
	assert.Error(t, err)
}
