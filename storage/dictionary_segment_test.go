package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/types"
)

func buildIntValueSegment(t *testing.T, values ...int32) *ValueSegment[int32] {
	t.Helper()
	seg := NewValueSegment[int32]()
	for _, v := range values {
		require.NoError(t, seg.Append(types.NewInt(v)))
	}
	return seg
}

func TestDictionarySegmentPreservesValues(t *testing.T) {
	original := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	vs := buildIntValueSegment(t, original...)

	ds, err := NewDictionarySegment[int32](vs)
	require.NoError(t, err)

	assert.Equal(t, len(original), ds.Size())
	for i, want := range original {
		assert.Equal(t, want, ds.Get(i))
	}

	dict := ds.Dictionary()
	for i := 1; i < len(dict); i++ {
		assert.Less(t, dict[i-1], dict[i], "dictionary must be strictly increasing")
	}
	assert.Equal(t, 7, ds.UniqueValuesCount())
}

func TestDictionarySegmentUniqueValuesCount(t *testing.T) {
	vs := buildIntValueSegment(t, 3, 1, 4, 1, 5, 9, 2, 6)
	ds, err := NewDictionarySegment[int32](vs)
	require.NoError(t, err)
	assert.Equal(t, 7, ds.UniqueValuesCount())
}

func TestDictionarySegmentBounds(t *testing.T) {
	vs := buildIntValueSegment(t, 10, 20, 30, 40)
	ds, err := NewDictionarySegment[int32](vs)
	require.NoError(t, err)

	assert.Equal(t, ValueID(0), ds.LowerBound(10))
	assert.Equal(t, ValueID(1), ds.LowerBound(15))
	assert.Equal(t, InvalidValueID, ds.LowerBound(100))

	assert.Equal(t, ValueID(1), ds.UpperBound(10))
	assert.Equal(t, InvalidValueID, ds.UpperBound(40))
}

func TestDictionarySegmentImmutable(t *testing.T) {
	vs := buildIntValueSegment(t, 1, 2, 3)
	ds, err := NewDictionarySegment[int32](vs)
	require.NoError(t, err)

	err = ds.Append(types.NewInt(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutableSegment)
}

func TestDictionarySegmentWidthScalesWithCardinality(t *testing.T) {
	values := make([]int32, 300)
	for i := range values {
		values[i] = int32(i)
	}
	vs := buildIntValueSegment(t, values...)
	ds, err := NewDictionarySegment[int32](vs)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.AttributeVector().Width())
}
