package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/types"
)

func newIntTable(t *testing.T, chunkSize int, rows ...int32) *Table {
	t.Helper()
	tbl := NewTable(chunkSize)
	require.NoError(t, tbl.AddColumn("a", types.TagInt))
	for _, v := range rows {
		require.NoError(t, tbl.Append([]types.Value{types.NewInt(v)}))
	}
	return tbl
}

func TestNewTableHasOneEmptyChunk(t *testing.T) {
	tbl := NewTable(2)
	assert.Equal(t, 1, tbl.ChunkCount())
	assert.Equal(t, 0, tbl.RowCount())
}

func TestAddColumnRequiresEmptyTable(t *testing.T) {
	tbl := newIntTable(t, 10, 1)
	err := tbl.AddColumn("b", types.TagString)
	require.Error(t, err)
}

func TestAppendStartsNewChunkWhenFull(t *testing.T) {
	tbl := newIntTable(t, 2, 1, 2, 3, 4)

	assert.Equal(t, 2, tbl.ChunkCount())
	assert.Equal(t, 4, tbl.RowCount())

	c0, err := tbl.GetChunk(0)
	require.NoError(t, err)
	assert.Equal(t, 2, c0.Size())

	c1, err := tbl.GetChunk(1)
	require.NoError(t, err)
	assert.Equal(t, 2, c1.Size())
}

func TestColumnIDByName(t *testing.T) {
	tbl := NewTable(10)
	require.NoError(t, tbl.AddColumn("a", types.TagInt))
	require.NoError(t, tbl.AddColumn("b", types.TagString))

	id, err := tbl.ColumnIDByName("b")
	require.NoError(t, err)
	assert.Equal(t, ColumnID(1), id)

	_, err = tbl.ColumnIDByName("missing")
	require.Error(t, err)
}

func TestCompressChunkRequiresFullChunk(t *testing.T) {
	tbl := newIntTable(t, 4, 1, 2)
	err := tbl.CompressChunk(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestCompressChunkPreservesValues(t *testing.T) {
	tbl := newIntTable(t, 4, 4, 2, 3, 2)

	require.NoError(t, tbl.CompressChunk(0))

	chunk, err := tbl.GetChunk(0)
	require.NoError(t, err)

	seg, err := chunk.Segment(0)
	require.NoError(t, err)
	ds, ok := seg.(*DictionarySegment[int32])
	require.True(t, ok)

	want := []int32{4, 2, 3, 2}
	for i, w := range want {
		assert.Equal(t, w, ds.Get(i))
	}
}

func TestCompressChunkIsIdempotent(t *testing.T) {
	tbl := newIntTable(t, 2, 1, 2)
	require.NoError(t, tbl.CompressChunk(0))
	require.NoError(t, tbl.CompressChunk(0))

	chunk, err := tbl.GetChunk(0)
	require.NoError(t, err)
	seg, err := chunk.Segment(0)
	require.NoError(t, err)
	_, ok := seg.(*DictionarySegment[int32])
	assert.True(t, ok)
}

func TestEmplaceChunkValidatesColumnCount(t *testing.T) {
	tbl := NewTable(10)
	require.NoError(t, tbl.AddColumnDefinition("a", types.TagInt))

	bad := NewChunk()
	err := tbl.EmplaceChunk(bad)
	require.Error(t, err)

	good := NewChunk()
	good.AddSegment(NewValueSegment[int32]())
	require.NoError(t, tbl.EmplaceChunk(good))
	assert.Equal(t, 2, tbl.ChunkCount())
}
