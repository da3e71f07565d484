package road

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golangdaddy/turnpike/geom"
	"github.com/google/uuid"
)

// LaneBaseX is the lateral coordinate of lane offset zero
const LaneBaseX = 0.5

// markerDepth and markerHeight size the trigger boxes across the road
const (
	markerDepth  = 0.5
	markerHeight = 3.0
)

// LaneX returns the world X for a lateral lane offset
func LaneX(offset float64) float64 {
	return LaneBaseX + offset
}

// MarkerKind distinguishes checkpoint gates from the finish line
type MarkerKind int

const (
	MarkerCheckpoint MarkerKind = iota
	MarkerFinish
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerCheckpoint:
		return "checkpoint"
	case MarkerFinish:
		return "finish"
	default:
		return fmt.Sprintf("MarkerKind(%d)", int(k))
	}
}

// Marker is a trigger zone spanning the road at the end of a chunk
type Marker struct {
	ID    uuid.UUID
	Kind  MarkerKind
	Chunk int
	Z     float64
	Box   geom.Box3
}

// Segment is one chunk of the course
type Segment struct {
	Chunk      int  // 1-based chunk index
	NumLanes   int  // Number of lanes open in this chunk
	Checkpoint bool // Whether a checkpoint gate closes this chunk
}

// Course is the road the player drives, one segment per chunk, finishing at
// the end of the last segment.
type Course struct {
	Segments  []Segment
	LaneWidth float64
	Markers   []Marker
}

// NewCourse lays out markers for segments using chunks for the geometry
func NewCourse(segments []Segment, laneWidth float64, chunks *Chunker) (*Course, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("course has no segments")
	}
	if !(laneWidth > 0) {
		return nil, fmt.Errorf("lane width must be positive, got %v", laneWidth)
	}

	c := &Course{
		Segments:  segments,
		LaneWidth: laneWidth,
	}

	left := LaneX(-laneWidth / 2)
	right := LaneX(float64(c.MaxLanes())*laneWidth - laneWidth/2)
	gate := func(kind MarkerKind, chunk int) Marker {
		z := -(float64(chunk) * chunks.Length())
		return Marker{
			ID:    uuid.New(),
			Kind:  kind,
			Chunk: chunk,
			Z:     z,
			Box: geom.Box3{
				Min: geom.V3(left, 0, z-markerDepth/2),
				Max: geom.V3(right, markerHeight, z+markerDepth/2),
			},
		}
	}

	last := len(segments) - 1
	for i, seg := range segments {
		if seg.Checkpoint && i != last {
			c.Markers = append(c.Markers, gate(MarkerCheckpoint, seg.Chunk))
		}
	}
	c.Markers = append(c.Markers, gate(MarkerFinish, segments[last].Chunk))

	return c, nil
}

// DefaultCourse builds a course of n chunks with a checkpoint every
// checkpointEvery chunks (zero disables checkpoints).
func DefaultCourse(n, lanes, checkpointEvery int, laneWidth float64, chunks *Chunker) (*Course, error) {
	segments := make([]Segment, 0, n)
	for i := 1; i <= n; i++ {
		segments = append(segments, Segment{
			Chunk:      i,
			NumLanes:   lanes,
			Checkpoint: checkpointEvery > 0 && i%checkpointEvery == 0,
		})
	}
	return NewCourse(segments, laneWidth, chunks)
}

// LoadCourseFromFile loads a course from a level file
func LoadCourseFromFile(filename string, laneWidth float64, chunks *Chunker) (*Course, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open course file: %w", err)
	}
	defer file.Close()

	segments, err := ParseSegments(file)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", filename, err)
	}
	return NewCourse(segments, laneWidth, chunks)
}

// ParseSegments reads one segment per line. Each line holds the lane count for
// the next chunk, optionally suffixed with 'C' when a checkpoint closes the
// chunk. Blank lines and lines starting with '#' are skipped.
func ParseSegments(r io.Reader) ([]Segment, error) {
	var segments []Segment

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		checkpoint := false
		laneStr := line
		if last := line[len(line)-1]; last == 'C' || last == 'c' {
			checkpoint = true
			laneStr = strings.TrimSpace(line[:len(line)-1])
		}

		numLanes, err := strconv.Atoi(laneStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid lane count %q: %w", lineNo, line, err)
		}
		if numLanes < 1 {
			return nil, fmt.Errorf("line %d: lane count must be at least 1, got %d", lineNo, numLanes)
		}

		segments = append(segments, Segment{
			Chunk:      len(segments) + 1,
			NumLanes:   numLanes,
			Checkpoint: checkpoint,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading course: %w", err)
	}

	return segments, nil
}

// Length returns the number of chunks in the course
func (c *Course) Length() int {
	return len(c.Segments)
}

// MaxLanes returns the widest lane count on the course
func (c *Course) MaxLanes() int {
	n := 0
	for _, s := range c.Segments {
		n = max(n, s.NumLanes)
	}
	return n
}

// SegmentAt returns the segment for chunk, or nil outside the course
func (c *Course) SegmentAt(chunk int) *Segment {
	if chunk < 1 || chunk > len(c.Segments) {
		return nil
	}
	return &c.Segments[chunk-1]
}

// Bounds returns the box covering every gate: the full road width from the
// first gate to the finish.
func (c *Course) Bounds() geom.Box3 {
	b := geom.EmptyBox
	for _, m := range c.Markers {
		b = b.Union(m.Box)
	}
	return b
}

// LaneOffset returns the lateral offset of lane index i
func (c *Course) LaneOffset(i int) float64 {
	return float64(i) * c.LaneWidth
}
