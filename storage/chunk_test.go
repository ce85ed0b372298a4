package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/types"
)

func TestChunkSizeReflectsFirstSegment(t *testing.T) {
	c := NewChunk()
	assert.Equal(t, 0, c.Size())

	c.AddSegment(NewValueSegment[int32]())
	assert.Equal(t, 0, c.Size())

	require.NoError(t, c.Append([]types.Value{types.NewInt(1)}))
	assert.Equal(t, 1, c.Size())
}

func TestChunkAppendMismatchedColumnCount(t *testing.T) {
	c := NewChunk()
	c.AddSegment(NewValueSegment[int32]())
	c.AddSegment(NewValueSegment[string]())

	err := c.Append([]types.Value{types.NewInt(1)})
	require.Error(t, err)
}

func TestChunkSegmentOutOfRange(t *testing.T) {
	c := NewChunk()
	_, err := c.Segment(0)
	require.Error(t, err)
}
