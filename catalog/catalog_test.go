package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

func TestAddGetDropTable(t *testing.T) {
	c := New()
	tbl := storage.NewTable(10)

	require.NoError(t, c.AddTable("t", tbl))
	assert.True(t, c.HasTable("t"))

	got, err := c.GetTable("t")
	require.NoError(t, err)
	assert.Same(t, tbl, got)

	require.NoError(t, c.DropTable("t"))
	assert.False(t, c.HasTable("t"))

	_, err = c.GetTable("t")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestAddTableDuplicateName(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTable("t", storage.NewTable(10)))
	err := c.AddTable("t", storage.NewTable(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableExists)
}

func TestDropUnknownTable(t *testing.T) {
	c := New()
	err := c.DropTable("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestTableNamesSorted(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTable("zebra", storage.NewTable(10)))
	require.NoError(t, c.AddTable("apple", storage.NewTable(10)))
	require.NoError(t, c.AddTable("mango", storage.NewTable(10)))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, c.TableNames())
}

func TestReset(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTable("t", storage.NewTable(10)))
	c.Reset()
	assert.Empty(t, c.TableNames())
}

func TestDefaultCatalogIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestCatalogWithDemoTable(t *testing.T) {
	c := New()
	tbl := storage.NewTable(10)
	require.NoError(t, tbl.AddColumn("a", types.TagInt))
	require.NoError(t, tbl.Append([]types.Value{types.NewInt(1)}))
	require.NoError(t, c.AddTable("demo", tbl))

	got, err := c.GetTable("demo")
	require.NoError(t, err)
	assert.Equal(t, 1, got.RowCount())
}
