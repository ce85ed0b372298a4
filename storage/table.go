package storage

import (
	"fmt"
	"sync"

	"github.com/dolthub/colstore/types"
)

// ColumnDefinition names one column of a table's schema, in declaration
// order.
type ColumnDefinition struct {
	Name string
	Tag  types.Tag
}

// Table is a column schema plus an ordered list of chunks and a chunk-size
// policy. A newly constructed table always has one (possibly empty) chunk,
// so Append always has a target without a nil check.
//
// Chunk-list mutation (compress, emplace) synchronizes on mu per
// SPEC_FULL.md §5: readers take an RLock to look at the chunk slice,
// CompressChunk builds its replacement chunk outside the lock and only
// takes the exclusive lock for the pointer swap.
type Table struct {
	mu        sync.RWMutex
	chunkSize int
	columns   []ColumnDefinition
	chunks    []*Chunk
}

// NewTable returns a table with the given chunk size policy and a single
// empty chunk.
func NewTable(chunkSize int) *Table {
	t := &Table{chunkSize: chunkSize}
	t.chunks = append(t.chunks, NewChunk())
	return t
}

// ChunkSize returns the table's chunk-size policy.
func (t *Table) ChunkSize() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.chunkSize
}

// ColumnCount returns the number of columns in the schema.
func (t *Table) ColumnCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.columns)
}

// ChunkCount returns the number of chunks.
func (t *Table) ChunkCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.chunks)
}

// RowCount returns the total number of rows across all chunks.
func (t *Table) RowCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rowCountLocked()
}

func (t *Table) rowCountLocked() int {
	count := 0
	for _, c := range t.chunks {
		count += c.Size()
	}
	return count
}

// ColumnName returns the name of column columnID.
func (t *Table) ColumnName(columnID ColumnID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(columnID) >= len(t.columns) {
		return "", fmt.Errorf("%w: column %d", ErrUnknownColumn, columnID)
	}
	return t.columns[columnID].Name, nil
}

// ColumnTag returns the element type tag of column columnID.
func (t *Table) ColumnTag(columnID ColumnID) (types.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(columnID) >= len(t.columns) {
		return 0, fmt.Errorf("%w: column %d", ErrUnknownColumn, columnID)
	}
	return t.columns[columnID].Tag, nil
}

// ColumnIDByName returns the id of the column named name.
func (t *Table) ColumnIDByName(name string) (ColumnID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, c := range t.columns {
		if c.Name == name {
			return ColumnID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: column %q", ErrUnknownColumn, name)
}

// AddColumnDefinition adds a column to the schema only, without touching
// any existing chunk's segments. Used by operator output tables, whose
// chunks are populated directly with reference segments rather than
// through the value-segment append path.
func (t *Table) AddColumnDefinition(name string, tag types.Tag) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.columns {
		if c.Name == name {
			return fmt.Errorf("%w: column %q already defined", ErrInvariantViolation, name)
		}
	}
	t.columns = append(t.columns, ColumnDefinition{Name: name, Tag: tag})
	return nil
}

// AddColumn adds a column to the schema and appends an empty value segment
// of that type to the last chunk. The table must have no rows yet.
func (t *Table) AddColumn(name string, tag types.Tag) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rowCountLocked() > 0 {
		return fmt.Errorf("%w: cannot add column %q to a non-empty table", ErrInvariantViolation, name)
	}
	for _, c := range t.columns {
		if c.Name == name {
			return fmt.Errorf("%w: column %q already defined", ErrInvariantViolation, name)
		}
	}
	seg, err := newEmptyValueSegment(tag)
	if err != nil {
		return err
	}
	t.columns = append(t.columns, ColumnDefinition{Name: name, Tag: tag})
	t.chunks[len(t.chunks)-1].AddSegment(seg)
	return nil
}

// Append appends one row of values, one per column in schema order,
// starting a new chunk first if the last one is full.
func (t *Table) Append(values []types.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrInvariantViolation, len(values), len(t.columns))
	}
	last := t.chunks[len(t.chunks)-1]
	if last.Size() == t.chunkSize {
		nc, err := t.newChunkForColumnsLocked()
		if err != nil {
			return err
		}
		t.chunks = append(t.chunks, nc)
		last = nc
	}
	return last.Append(values)
}

func (t *Table) newChunkForColumnsLocked() (*Chunk, error) {
	c := NewChunk()
	for _, col := range t.columns {
		seg, err := newEmptyValueSegment(col.Tag)
		if err != nil {
			return nil, err
		}
		c.AddSegment(seg)
	}
	return c, nil
}

// GetChunk returns the chunk at chunkID for reading.
func (t *Table) GetChunk(chunkID ChunkID) (*Chunk, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(chunkID) >= len(t.chunks) {
		return nil, fmt.Errorf("%w: chunk %d", ErrUnknownChunk, chunkID)
	}
	return t.chunks[chunkID], nil
}

// EmplaceChunk appends a prebuilt chunk after the existing ones. The
// chunk's column count must match the table's schema. The table scan does
// not use it: it fills its output table's initial chunk in place.
func (t *Table) EmplaceChunk(c *Chunk) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c.ColumnCount() != len(t.columns) {
		return fmt.Errorf("%w: chunk has %d columns, table schema has %d", ErrInvariantViolation, c.ColumnCount(), len(t.columns))
	}
	t.chunks = append(t.chunks, c)
	return nil
}

// CompressChunk replaces every value segment in a full chunk with a
// dictionary segment carrying identical logical values. It fails if the
// chunk hasn't reached the table's chunk size. The dictionary segments are
// built on a private copy of the chunk's segments, outside any lock; the
// table's chunk list is only locked for the pointer swap, so concurrent
// readers always observe either the whole old chunk or the whole new one.
func (t *Table) CompressChunk(chunkID ChunkID) error {
	t.mu.RLock()
	if int(chunkID) >= len(t.chunks) {
		t.mu.RUnlock()
		return fmt.Errorf("%w: chunk %d", ErrUnknownChunk, chunkID)
	}
	chunk := t.chunks[chunkID]
	chunkSize := t.chunkSize
	t.mu.RUnlock()

	if chunk.Size() != chunkSize {
		return fmt.Errorf("%w: compress_chunk requires a full chunk (size %d, chunk_size %d)", ErrInvariantViolation, chunk.Size(), chunkSize)
	}

	replacement := NewChunk()
	for i := 0; i < chunk.ColumnCount(); i++ {
		seg, err := chunk.Segment(ColumnID(i))
		if err != nil {
			return err
		}
		compressed, err := compressSegment(seg)
		if err != nil {
			return err
		}
		replacement.AddSegment(compressed)
	}

	t.mu.Lock()
	t.chunks[chunkID] = replacement
	t.mu.Unlock()
	return nil
}

func newEmptyValueSegment(tag types.Tag) (Segment, error) {
	switch tag {
	case types.TagInt:
		return NewValueSegment[int32](), nil
	case types.TagLong:
		return NewValueSegment[int64](), nil
	case types.TagFloat:
		return NewValueSegment[float32](), nil
	case types.TagDouble:
		return NewValueSegment[float64](), nil
	case types.TagString:
		return NewValueSegment[string](), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized column type %s", ErrTypeMismatch, tag)
	}
}

func compressSegment(seg Segment) (Segment, error) {
	switch s := seg.(type) {
	case *ValueSegment[int32]:
		return NewDictionarySegment[int32](s)
	case *ValueSegment[int64]:
		return NewDictionarySegment[int64](s)
	case *ValueSegment[float32]:
		return NewDictionarySegment[float32](s)
	case *ValueSegment[float64]:
		return NewDictionarySegment[float64](s)
	case *ValueSegment[string]:
		return NewDictionarySegment[string](s)
	case *DictionarySegment[int32], *DictionarySegment[int64], *DictionarySegment[float32],
		*DictionarySegment[float64], *DictionarySegment[string]:
		// Already compressed: compress_chunk is idempotent on a chunk that
		// has already been through it.
		return seg, nil
	default:
		return nil, fmt.Errorf("%w: cannot compress segment of kind %v", ErrInvariantViolation, seg.Kind())
	}
}
