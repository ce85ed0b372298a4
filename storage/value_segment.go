package storage

import (
	"fmt"

	"github.com/dolthub/colstore/types"
)

// ValueSegment is the simplest segment variant: a contiguous, typed array
// of element values. It is the only variant that is ever appended to, and
// only while its containing chunk hasn't reached the table's chunk size.
type ValueSegment[T types.Ordered] struct {
	tag    types.Tag
	values []T
}

// NewValueSegment returns an empty value segment over T.
func NewValueSegment[T types.Ordered]() *ValueSegment[T] {
	return &ValueSegment[T]{tag: types.TagOf[T]()}
}

// Values returns the segment's backing array. Callers must not mutate the
// returned slice; it aliases the segment's internal storage for scan speed.
func (s *ValueSegment[T]) Values() []T { return s.values }

// Get returns the value at row offset i.
func (s *ValueSegment[T]) Get(i int) T { return s.values[i] }

func (s *ValueSegment[T]) Size() int { return len(s.values) }
func (s *ValueSegment[T]) ElementTag() types.Tag { return s.tag }
func (s *ValueSegment[T]) Kind() Kind { return ValueKind }

func (s *ValueSegment[T]) At(i int) (types.Value, error) {
	if i < 0 || i >= len(s.values) {
		return types.Value{}, fmt.Errorf("%w: offset %d out of range for segment of size %d", ErrOutOfRange, i, len(s.values))
	}
	return types.From(s.values[i]), nil
}

// Append appends one element, converting from the boxed Value and failing
// if v's Tag doesn't match this segment's element type.
func (s *ValueSegment[T]) Append(v types.Value) error {
	value, err := types.As[T](v)
	if err != nil {
		return err
	}
	s.values = append(s.values, value)
	return nil
}
