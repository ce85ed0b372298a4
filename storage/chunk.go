package storage

import (
	"fmt"

	"github.com/dolthub/colstore/types"
)

// Chunk is an ordered sequence of segments sharing a row domain: all
// segments in a chunk have identical length, and segment i stores column
// i's values for this chunk's rows.
type Chunk struct {
	segments []Segment
}

// NewChunk returns an empty chunk with no segments.
func NewChunk() *Chunk {
	return &Chunk{}
}

// AddSegment appends a segment as the chunk's next column.
func (c *Chunk) AddSegment(s Segment) {
	c.segments = append(c.segments, s)
}

// Segment returns the segment at columnID.
func (c *Chunk) Segment(columnID ColumnID) (Segment, error) {
	if int(columnID) >= len(c.segments) {
		return nil, fmt.Errorf("%w: column %d (chunk has %d columns)", ErrUnknownColumn, columnID, len(c.segments))
	}
	return c.segments[columnID], nil
}

// ColumnCount returns the number of segments (columns) in the chunk.
func (c *Chunk) ColumnCount() int { return len(c.segments) }

// Size returns the chunk's row count: 0 if it has no segments, else the
// length of its first segment (all segments share this length).
func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}

// Append appends one row, dispatching each value to its column's segment.
func (c *Chunk) Append(values []types.Value) error {
	if len(values) != len(c.segments) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrInvariantViolation, len(values), len(c.segments))
	}
	for i, v := range values {
		if err := c.segments[i].Append(v); err != nil {
			return err
		}
	}
	return nil
}
