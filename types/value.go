package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTypeMismatch is the sentinel wrapped by every conversion failure in
// this package: a Value held one Tag but the caller asked for another, or a
// wire spelling didn't match any known Tag.
var ErrTypeMismatch = errors.New("type mismatch")

// Ordered is the type set a column's element type may instantiate segments
// over. It mirrors Tag's closed set of five scalar types.
type Ordered interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~string
}

// Value is a tagged variant over the closed scalar type set: exactly one of
// an int32, int64, float32, float64 or string, carried with its Tag so code
// that doesn't know the column's element type at compile time can still
// move the value around, compare Tags, and fail loudly on a mismatched
// conversion.
type Value struct {
	tag Tag
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string
}

func NewInt(v int32) Value      { return Value{tag: TagInt, i32: v} }
func NewLong(v int64) Value     { return Value{tag: TagLong, i64: v} }
func NewFloat(v float32) Value  { return Value{tag: TagFloat, f32: v} }
func NewDouble(v float64) Value { return Value{tag: TagDouble, f64: v} }
func NewString(v string) Value  { return Value{tag: TagString, str: v} }

// Tag reports which concrete type this Value currently holds.
func (v Value) Tag() Tag { return v.tag }

func (v Value) Int32() (int32, error) {
	if v.tag != TagInt {
		return 0, mismatch(TagInt, v.tag)
	}
	return v.i32, nil
}

func (v Value) Int64() (int64, error) {
	if v.tag != TagLong {
		return 0, mismatch(TagLong, v.tag)
	}
	return v.i64, nil
}

func (v Value) Float32() (float32, error) {
	if v.tag != TagFloat {
		return 0, mismatch(TagFloat, v.tag)
	}
	return v.f32, nil
}

func (v Value) Float64() (float64, error) {
	if v.tag != TagDouble {
		return 0, mismatch(TagDouble, v.tag)
	}
	return v.f64, nil
}

func (v Value) Str() (string, error) {
	if v.tag != TagString {
		return "", mismatch(TagString, v.tag)
	}
	return v.str, nil
}

// String renders the held value for logging/debugging; it never fails,
// unlike the typed accessors above.
func (v Value) String() string {
	switch v.tag {
	case TagInt:
		return strconv.FormatInt(int64(v.i32), 10)
	case TagLong:
		return strconv.FormatInt(v.i64, 10)
	case TagFloat:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case TagDouble:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case TagString:
		return v.str
	default:
		return "<invalid value>"
	}
}

func mismatch(want, got Tag) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}

// From boxes a concrete, statically-typed value into a Value. It is the
// generic counterpart of NewInt/NewLong/NewFloat/NewDouble/NewString, used
// by segment code that only knows its element type as a type parameter.
func From[T Ordered](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return NewInt(x)
	case int64:
		return NewLong(x)
	case float32:
		return NewFloat(x)
	case float64:
		return NewDouble(x)
	case string:
		return NewString(x)
	default:
		// unreachable: T satisfies Ordered, which is exactly this type set.
		panic(fmt.Sprintf("types: unsupported element type %T", v))
	}
}

// As converts a Value to the concrete type T, failing loudly (ErrTypeMismatch)
// if the Value's Tag doesn't correspond to T. This is the single conversion
// point a scan uses to turn a search value into the column's element type
// before building a comparator.
func As[T Ordered](v Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		i, err := v.Int32()
		if err != nil {
			return zero, err
		}
		return any(i).(T), nil
	case int64:
		i, err := v.Int64()
		if err != nil {
			return zero, err
		}
		return any(i).(T), nil
	case float32:
		f, err := v.Float32()
		if err != nil {
			return zero, err
		}
		return any(f).(T), nil
	case float64:
		f, err := v.Float64()
		if err != nil {
			return zero, err
		}
		return any(f).(T), nil
	case string:
		s, err := v.Str()
		if err != nil {
			return zero, err
		}
		return any(s).(T), nil
	default:
		return zero, fmt.Errorf("%w: unsupported element type %T", ErrTypeMismatch, zero)
	}
}

// TagOf returns the Tag corresponding to the type parameter T, independent
// of any Value instance. Used by segment constructors that need to stamp
// their element Tag at construction time.
func TagOf[T Ordered]() Tag {
	var zero T
	switch any(zero).(type) {
	case int32:
		return TagInt
	case int64:
		return TagLong
	case float32:
		return TagFloat
	case float64:
		return TagDouble
	case string:
		return TagString
	default:
		panic(fmt.Sprintf("types: unsupported element type %T", zero))
	}
}
