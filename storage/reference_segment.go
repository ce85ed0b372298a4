package storage

import (
	"fmt"

	"github.com/dolthub/colstore/types"
)

// ReferenceSegment is a virtual segment: it holds no values of its own,
// only a shared reference to a base table, a column id within it, and a
// shared position list. It is the only segment variant ever produced by an
// operator rather than by direct construction/append, and it is never
// mutated once built. A reference segment never points at another
// reference segment — referencedTable is always a base (value- or
// dictionary-populated) table; maintaining that invariant is the
// responsibility of whatever constructs the segment (the table scan does
// so by resolving through any reference segment it scans before emitting
// its own output).
type ReferenceSegment struct {
	referencedTable *Table
	columnID        ColumnID
	posList         PosList
}

// NewReferenceSegment builds a reference segment over column columnID of
// referencedTable, selecting the rows named by posList.
func NewReferenceSegment(referencedTable *Table, columnID ColumnID, posList PosList) *ReferenceSegment {
	return &ReferenceSegment{referencedTable: referencedTable, columnID: columnID, posList: posList}
}

func (s *ReferenceSegment) ReferencedTable() *Table { return s.referencedTable }
func (s *ReferenceSegment) ColumnID() ColumnID { return s.columnID }
func (s *ReferenceSegment) PosList() PosList { return s.posList }

func (s *ReferenceSegment) Size() int { return len(s.posList) }

func (s *ReferenceSegment) ElementTag() types.Tag {
	tag, _ := s.referencedTable.ColumnTag(s.columnID)
	return tag
}

func (s *ReferenceSegment) Kind() Kind { return ReferenceKind }

// At resolves row i through the position list into the referenced table.
func (s *ReferenceSegment) At(i int) (types.Value, error) {
	if i < 0 || i >= len(s.posList) {
		return types.Value{}, fmt.Errorf("%w: offset %d out of range for segment of size %d", ErrOutOfRange, i, len(s.posList))
	}
	rowID := s.posList[i]
	chunk, err := s.referencedTable.GetChunk(rowID.ChunkID)
	if err != nil {
		return types.Value{}, err
	}
	seg, err := chunk.Segment(s.columnID)
	if err != nil {
		return types.Value{}, err
	}
	return seg.At(int(rowID.Offset))
}

// Append always fails: reference segments are never mutated after
// construction.
func (s *ReferenceSegment) Append(types.Value) error {
	return fmt.Errorf("%w: reference segment", ErrImmutableSegment)
}
