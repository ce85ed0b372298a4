package storage

import (
	"fmt"
	"sort"

	"github.com/dolthub/colstore/types"
)

// DictionarySegment stores a column's values as a sorted, deduplicated
// dictionary plus a width-fitted attribute vector mapping each row offset
// to a dictionary index. It is built once, from a full value segment, and
// is immutable thereafter.
type DictionarySegment[T types.Ordered] struct {
	tag        types.Tag
	dictionary []T
	attrVec    AttributeVector
}

// NewDictionarySegment builds a dictionary segment carrying the same
// logical values as vs: sort + dedupe into a dictionary, then binary-search
// each original value to populate the attribute vector.
func NewDictionarySegment[T types.Ordered](vs *ValueSegment[T]) (*DictionarySegment[T], error) {
	values := vs.Values()

	dict := make([]T, len(values))
	copy(dict, values)
	sort.Slice(dict, func(i, j int) bool { return dict[i] < dict[j] })
	dict = dedupeSorted(dict)

	attrVec, err := NewFittedAttributeVector(uint64(len(dict)), uint64(len(values)))
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		idx := lowerBound(dict, v)
		if idx == len(dict) || dict[idx] != v {
			return nil, fmt.Errorf("%w: value %v missing from its own constructed dictionary", ErrInvariantViolation, v)
		}
		if err := attrVec.Set(i, ValueID(idx)); err != nil {
			return nil, err
		}
	}

	return &DictionarySegment[T]{tag: vs.ElementTag(), dictionary: dict, attrVec: attrVec}, nil
}

func dedupeSorted[T comparable](sorted []T) []T {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// lowerBound returns the index of the smallest element >= v, or len(s) if
// none exists.
func lowerBound[T types.Ordered](s []T, v T) int {
	return sort.Search(len(s), func(i int) bool { return !(s[i] < v) })
}

// upperBound returns the index of the smallest element > v, or len(s) if
// none exists.
func upperBound[T types.Ordered](s []T, v T) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > v })
}

// Get returns the value at row offset i.
func (s *DictionarySegment[T]) Get(i int) T { return s.dictionary[s.attrVec.Get(i)] }

// ValueByValueID returns the dictionary entry at value id id.
func (s *DictionarySegment[T]) ValueByValueID(id ValueID) (T, error) {
	var zero T
	if id == InvalidValueID || int(id) >= len(s.dictionary) {
		return zero, fmt.Errorf("%w: value id %d out of range for dictionary of size %d", ErrOutOfRange, id, len(s.dictionary))
	}
	return s.dictionary[id], nil
}

// LowerBound returns the smallest value id j with dictionary[j] >= v, or
// InvalidValueID if every entry is smaller than v.
func (s *DictionarySegment[T]) LowerBound(v T) ValueID {
	idx := lowerBound(s.dictionary, v)
	if idx == len(s.dictionary) {
		return InvalidValueID
	}
	return ValueID(idx)
}

// UpperBound returns the smallest value id j with dictionary[j] > v, or
// InvalidValueID if every entry is smaller than or equal to v.
func (s *DictionarySegment[T]) UpperBound(v T) ValueID {
	idx := upperBound(s.dictionary, v)
	if idx == len(s.dictionary) {
		return InvalidValueID
	}
	return ValueID(idx)
}

// Dictionary returns the sorted, deduplicated backing dictionary. Callers
// must not mutate the returned slice.
func (s *DictionarySegment[T]) Dictionary() []T { return s.dictionary }

// AttributeVector returns the segment's row-offset-to-value-id mapping.
func (s *DictionarySegment[T]) AttributeVector() AttributeVector { return s.attrVec }

// UniqueValuesCount returns the number of distinct values in the dictionary.
func (s *DictionarySegment[T]) UniqueValuesCount() int { return len(s.dictionary) }

func (s *DictionarySegment[T]) Size() int { return s.attrVec.Size() }
func (s *DictionarySegment[T]) ElementTag() types.Tag { return s.tag }
func (s *DictionarySegment[T]) Kind() Kind { return DictionaryKind }

func (s *DictionarySegment[T]) At(i int) (types.Value, error) {
	if i < 0 || i >= s.attrVec.Size() {
		return types.Value{}, fmt.Errorf("%w: offset %d out of range for segment of size %d", ErrOutOfRange, i, s.attrVec.Size())
	}
	return types.From(s.Get(i)), nil
}

// Append always fails: dictionary segments are immutable after construction.
func (s *DictionarySegment[T]) Append(types.Value) error {
	return fmt.Errorf("%w: dictionary segment", ErrImmutableSegment)
}
