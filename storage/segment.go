package storage

import "github.com/dolthub/colstore/types"

// Kind identifies a segment's physical representation.
type Kind int

const (
	ValueKind Kind = iota
	DictionaryKind
	ReferenceKind
)

func (k Kind) String() string {
	switch k {
	case ValueKind:
		return "value"
	case DictionaryKind:
		return "dictionary"
	case ReferenceKind:
		return "reference"
	default:
		return "unknown"
	}
}

// Segment is the common, type-erased contract every column's per-chunk
// storage satisfies, regardless of which of the three concrete variants
// (value, dictionary, reference) it actually is. Code that needs the
// monomorphic fast path (the table scan) type-switches on the concrete
// *ValueSegment[T] / *DictionarySegment[T] / *ReferenceSegment instead of
// going through this interface; At is the slow, boxing path used for
// generic/debug access, mirroring operator[] in the reference design this
// module is built from.
type Segment interface {
	// Size returns the number of rows in the segment.
	Size() int
	// ElementTag reports the scalar type this segment's column holds.
	ElementTag() types.Tag
	// Kind reports which of the three concrete variants this is.
	Kind() Kind
	// At returns the boxed value at row offset i.
	At(i int) (types.Value, error)
	// Append adds one value to the end of the segment. Only a value
	// segment inside a not-yet-full chunk permits this; every other
	// variant returns ErrImmutableSegment.
	Append(v types.Value) error
}
