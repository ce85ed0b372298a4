package storage

import (
	"fmt"
	"math"
)

// AttributeVector is a packed sequence of small unsigned integers (value
// ids), stored at the narrowest width that can represent every entry of
// the dictionary it indexes into.
type AttributeVector interface {
	Get(i int) ValueID
	Set(i int, v ValueID) error
	Size() int
	// Width reports the storage width in bytes: 1, 2 or 4.
	Width() int
}

type attributeVector8 struct{ data []uint8 }

func (a *attributeVector8) Get(i int) ValueID { return ValueID(a.data[i]) }
func (a *attributeVector8) Size() int { return len(a.data) }
func (a *attributeVector8) Width() int { return 1 }
func (a *attributeVector8) Set(i int, v ValueID) error {
	if v > math.MaxUint8 {
		return fmt.Errorf("%w: value id %d does not fit in a 1-byte attribute vector", ErrOutOfRange, v)
	}
	a.data[i] = uint8(v)
	return nil
}

type attributeVector16 struct{ data []uint16 }

func (a *attributeVector16) Get(i int) ValueID { return ValueID(a.data[i]) }
func (a *attributeVector16) Size() int { return len(a.data) }
func (a *attributeVector16) Width() int { return 2 }
func (a *attributeVector16) Set(i int, v ValueID) error {
	if v > math.MaxUint16 {
		return fmt.Errorf("%w: value id %d does not fit in a 2-byte attribute vector", ErrOutOfRange, v)
	}
	a.data[i] = uint16(v)
	return nil
}

type attributeVector32 struct{ data []uint32 }

func (a *attributeVector32) Get(i int) ValueID { return ValueID(a.data[i]) }
func (a *attributeVector32) Size() int { return len(a.data) }
func (a *attributeVector32) Width() int { return 4 }
func (a *attributeVector32) Set(i int, v ValueID) error {
	if uint64(v) > math.MaxUint32 {
		return fmt.Errorf("%w: value id %d does not fit in a 4-byte attribute vector", ErrOutOfRange, v)
	}
	a.data[i] = uint32(v)
	return nil
}

// NewFittedAttributeVector picks the width from dictionarySize (up to 255:
// 1 byte; up to 65535: 2 bytes; up to 2^32-1: 4 bytes), and returns a vector
// of the given length with every entry initialized to 0. It fails if
// dictionarySize exceeds 2^32-1.
func NewFittedAttributeVector(dictionarySize, segmentSize uint64) (AttributeVector, error) {
	switch {
	case dictionarySize <= math.MaxUint8:
		return &attributeVector8{data: make([]uint8, segmentSize)}, nil
	case dictionarySize <= math.MaxUint16:
		return &attributeVector16{data: make([]uint16, segmentSize)}, nil
	case dictionarySize <= math.MaxUint32:
		return &attributeVector32{data: make([]uint32, segmentSize)}, nil
	default:
		return nil, fmt.Errorf("%w: dictionary size %d exceeds 2^32-1", ErrOutOfRange, dictionarySize)
	}
}
