package storage

import "math"

// ChunkID identifies a chunk's position within a table's chunk list.
type ChunkID uint32

// ColumnID identifies a column's position within a table's schema.
type ColumnID uint16

// ChunkOffset identifies a row's position within a chunk.
type ChunkOffset uint32

// ValueID indexes a dictionary segment's sorted dictionary.
type ValueID uint32

// InvalidValueID is the sentinel returned by LowerBound/UpperBound when no
// dictionary entry satisfies the bound. It is the maximum value of the
// widest attribute-vector form; a narrowing cast of it to a 1- or 2-byte
// ValueID still reads as that width's maximum, so callers must compare
// against InvalidValueID before narrowing, never rely on the cast alone.
const InvalidValueID ValueID = ValueID(math.MaxUint32)

// RowID locates a single element: the chunk it lives in, and its offset
// within that chunk.
type RowID struct {
	ChunkID ChunkID
	Offset  ChunkOffset
}

// PosList is an ordered sequence of row ids, the shared result of a scan:
// every output reference segment of one scan carries the same PosList.
type PosList []RowID
