package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		tag  Tag
	}{
		{"int", NewInt(7), TagInt},
		{"long", NewLong(7), TagLong},
		{"float", NewFloat(7.5), TagFloat},
		{"double", NewDouble(7.5), TagDouble},
		{"string", NewString("x"), TagString},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.tag, test.v.Tag())
		})
	}
}

func TestValueConversionMismatch(t *testing.T) {
	v := NewInt(3)

	_, err := v.Int64()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = v.Str()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	i, err := v.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(3), i)
}

func TestAsGeneric(t *testing.T) {
	i, err := As[int32](NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, int32(42), i)

	s, err := As[string](NewString("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	_, err = As[int64](NewInt(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestFromGeneric(t *testing.T) {
	assert.Equal(t, TagInt, From[int32](1).Tag())
	assert.Equal(t, TagLong, From[int64](1).Tag())
	assert.Equal(t, TagFloat, From[float32](1).Tag())
	assert.Equal(t, TagDouble, From[float64](1).Tag())
	assert.Equal(t, TagString, From[string]("a").Tag())
}

func TestTagOf(t *testing.T) {
	assert.Equal(t, TagInt, TagOf[int32]())
	assert.Equal(t, TagString, TagOf[string]())
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		spelling string
		want     Tag
		wantErr  bool
	}{
		{"int", TagInt, false},
		{"long", TagLong, false},
		{"float", TagFloat, false},
		{"double", TagDouble, false},
		{"string", TagString, false},
		{"bool", 0, true},
	}

	for _, test := range tests {
		t.Run(test.spelling, func(t *testing.T) {
			got, err := ParseTag(test.spelling)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.spelling, got.String())
		})
	}
}
