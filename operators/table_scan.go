package operators

import (
	"context"
	"fmt"

	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

// TableScan is a predicate scan: it reads one column of its input table,
// compares every value against a constant search value with one of the six
// comparison operators, and produces a new table whose schema matches the
// input's, holding a single chunk of reference segments that all share one
// position list.
type TableScan struct {
	baseOperator
	columnID    storage.ColumnID
	scanType    ScanType
	searchValue types.Value
}

// NewTableScan builds a scan over input's column columnID.
func NewTableScan(input Operator, columnID storage.ColumnID, scanType ScanType, searchValue types.Value) *TableScan {
	return &TableScan{
		baseOperator: baseOperator{inputs: []Operator{input}},
		columnID:     columnID,
		scanType:     scanType,
		searchValue:  searchValue,
	}
}

func (ts *TableScan) ColumnID() storage.ColumnID { return ts.columnID }
func (ts *TableScan) Type() ScanType             { return ts.scanType }
func (ts *TableScan) SearchValue() types.Value   { return ts.searchValue }

// Execute reads the column's type tag off the input table and specializes
// the scan algorithm to the corresponding Go type. This is the type tag +
// dynamic dispatch helper from SPEC_FULL.md's component list: everything
// past this switch runs monomorphic, generic code, never a runtime type
// assertion against an open set.
func (ts *TableScan) Execute(ctx context.Context) (*storage.Table, error) {
	input, err := ts.inputs[0].Execute(ctx)
	if err != nil {
		return nil, err
	}

	tag, err := input.ColumnTag(ts.columnID)
	if err != nil {
		return nil, err
	}

	switch tag {
	case types.TagInt:
		return scanTyped[int32](input, ts.columnID, ts.scanType, ts.searchValue)
	case types.TagLong:
		return scanTyped[int64](input, ts.columnID, ts.scanType, ts.searchValue)
	case types.TagFloat:
		return scanTyped[float32](input, ts.columnID, ts.scanType, ts.searchValue)
	case types.TagDouble:
		return scanTyped[float64](input, ts.columnID, ts.scanType, ts.searchValue)
	case types.TagString:
		return scanTyped[string](input, ts.columnID, ts.scanType, ts.searchValue)
	default:
		return nil, fmt.Errorf("%w: unrecognized column type %s", storage.ErrTypeMismatch, tag)
	}
}

// comparator builds one of the six monomorphic comparators once per scan,
// per SPEC_FULL.md's design note: rather than a closure built per row, a
// single comparator closure is selected here and passed into a generic
// inner loop.
func comparator[T types.Ordered](op ScanType, searchValue T) (func(T) bool, error) {
	switch op {
	case OpEquals:
		return func(x T) bool { return x == searchValue }, nil
	case OpNotEquals:
		return func(x T) bool { return x != searchValue }, nil
	case OpLessThan:
		return func(x T) bool { return x < searchValue }, nil
	case OpLessThanEquals:
		return func(x T) bool { return x <= searchValue }, nil
	case OpGreaterThan:
		return func(x T) bool { return x > searchValue }, nil
	case OpGreaterThanEquals:
		return func(x T) bool { return x >= searchValue }, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized scan type %v", storage.ErrInvariantViolation, op)
	}
}

// scanTyped is the three-way scan algorithm for a single element type T.
func scanTyped[T types.Ordered](input *storage.Table, columnID storage.ColumnID, op ScanType, searchValueBoxed types.Value) (*storage.Table, error) {
	searchValue, err := types.As[T](searchValueBoxed)
	if err != nil {
		return nil, err
	}
	cmp, err := comparator(op, searchValue)
	if err != nil {
		return nil, err
	}

	posList := make(storage.PosList, 0)

	// outputReferenceTable is the table every output reference segment will
	// point at. It starts as the input table (the common case: input's
	// segments are value/dictionary) and is overwritten with the resolved
	// base table the moment a reference segment is scanned, so the output
	// never points at an intermediate scan's table.
	var outputReferenceTable *storage.Table = input

	chunkCount := input.ChunkCount()
	for chunkID := storage.ChunkID(0); int(chunkID) < chunkCount; chunkID++ {
		chunk, err := input.GetChunk(chunkID)
		if err != nil {
			return nil, err
		}
		if chunk.Size() == 0 {
			continue
		}

		seg, err := chunk.Segment(columnID)
		if err != nil {
			return nil, err
		}

		switch s := seg.(type) {
		case *storage.ValueSegment[T]:
			for offset, v := range s.Values() {
				if cmp(v) {
					posList = append(posList, storage.RowID{ChunkID: chunkID, Offset: storage.ChunkOffset(offset)})
				}
			}

		case *storage.ReferenceSegment:
			referencedTable := s.ReferencedTable()
			outputReferenceTable = referencedTable
			referencedPosList := s.PosList()

			for _, rowID := range referencedPosList {
				refChunk, err := referencedTable.GetChunk(rowID.ChunkID)
				if err != nil {
					return nil, err
				}
				refSeg, err := refChunk.Segment(columnID)
				if err != nil {
					return nil, err
				}

				matched, err := evalResolvedSegment(refSeg, rowID.Offset, cmp)
				if err != nil {
					return nil, err
				}
				if matched {
					posList = append(posList, rowID)
				}
			}

		case *storage.DictionarySegment[T]:
			pred, err := dictionaryPredicate(op, s, searchValue)
			if err != nil {
				return nil, err
			}
			attrVec := s.AttributeVector()
			for offset := 0; offset < attrVec.Size(); offset++ {
				if pred(attrVec.Get(offset)) {
					posList = append(posList, storage.RowID{ChunkID: chunkID, Offset: storage.ChunkOffset(offset)})
				}
			}

		default:
			return nil, fmt.Errorf("%w: column %d holds a %v segment, not the expected element type", storage.ErrTypeMismatch, columnID, seg.Kind())
		}
	}

	return assembleOutput(input, outputReferenceTable, posList)
}

// evalResolvedSegment applies cmp to the value of a referenced column's
// segment at offset, handling the two variants a reference segment may
// transitively resolve through. A nested reference segment here is an
// invariant violation: reference segments never reference another
// reference segment.
func evalResolvedSegment[T types.Ordered](seg storage.Segment, offset storage.ChunkOffset, cmp func(T) bool) (bool, error) {
	switch rs := seg.(type) {
	case *storage.ValueSegment[T]:
		return cmp(rs.Values()[offset]), nil
	case *storage.DictionarySegment[T]:
		return cmp(rs.Get(int(offset))), nil
	case *storage.ReferenceSegment:
		return false, fmt.Errorf("%w: reference segment resolves to another reference segment", storage.ErrInvariantViolation)
	default:
		return false, fmt.Errorf("%w: column holds a %v segment, not the expected element type", storage.ErrTypeMismatch, seg.Kind())
	}
}

// dictionaryPredicate implements the sorted-dictionary index-set algorithm
// from SPEC_FULL.md §4.5: given the dictionary's lower/upper bound for the
// search value, it picks a predicate over value ids that a single pass
// over the attribute vector can evaluate in O(1) per row.
func dictionaryPredicate[T types.Ordered](op ScanType, seg *storage.DictionarySegment[T], searchValue T) (func(storage.ValueID) bool, error) {
	dict := seg.Dictionary()
	always := func(storage.ValueID) bool { return true }
	never := func(storage.ValueID) bool { return false }

	if len(dict) == 0 {
		return never, nil
	}
	last := dict[len(dict)-1]

	lower := seg.LowerBound(searchValue)
	upper := seg.UpperBound(searchValue)

	switch op {
	case OpEquals:
		if lower != storage.InvalidValueID && dict[lower] == searchValue {
			return func(vid storage.ValueID) bool { return vid == lower }, nil
		}
		return never, nil

	case OpNotEquals:
		if lower != storage.InvalidValueID && dict[lower] == searchValue {
			return func(vid storage.ValueID) bool { return vid != lower }, nil
		}
		return always, nil

	case OpLessThan:
		if lower != storage.InvalidValueID && dict[lower] == searchValue {
			return func(vid storage.ValueID) bool { return vid < lower }, nil
		}
		if last < searchValue {
			return always, nil
		}
		return never, nil

	case OpLessThanEquals:
		if lower != storage.InvalidValueID {
			if dict[lower] == searchValue {
				return func(vid storage.ValueID) bool { return vid <= lower }, nil
			}
			return func(vid storage.ValueID) bool { return vid < lower }, nil
		}
		if last < searchValue {
			return always, nil
		}
		return never, nil

	case OpGreaterThan:
		if upper != storage.InvalidValueID && dict[upper] == searchValue {
			return func(vid storage.ValueID) bool { return vid > upper }, nil
		}
		if upper != storage.InvalidValueID {
			return func(vid storage.ValueID) bool { return vid >= upper }, nil
		}
		return never, nil

	case OpGreaterThanEquals:
		if upper != storage.InvalidValueID {
			sp := upper
			if sp > 0 {
				sp--
			}
			return func(vid storage.ValueID) bool { return vid >= sp }, nil
		}
		return never, nil

	default:
		return nil, fmt.Errorf("%w: unrecognized scan type %v", storage.ErrInvariantViolation, op)
	}
}

// assembleOutput builds the scan's output table: same schema as input, one
// chunk, one reference segment per column, all sharing posList and all
// pointing at referenceTable.
func assembleOutput(input, referenceTable *storage.Table, posList storage.PosList) (*storage.Table, error) {
	output := storage.NewTable(input.ChunkSize())

	outputChunk, err := output.GetChunk(0)
	if err != nil {
		return nil, err
	}

	columnCount := input.ColumnCount()
	for colID := 0; colID < columnCount; colID++ {
		name, err := input.ColumnName(storage.ColumnID(colID))
		if err != nil {
			return nil, err
		}
		tag, err := input.ColumnTag(storage.ColumnID(colID))
		if err != nil {
			return nil, err
		}
		if err := output.AddColumnDefinition(name, tag); err != nil {
			return nil, err
		}
		outputChunk.AddSegment(storage.NewReferenceSegment(referenceTable, storage.ColumnID(colID), posList))
	}

	return output, nil
}
