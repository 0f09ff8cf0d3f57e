// Package internal implements the PackStream marker and size
// primitives shared by the packval encoder and decoder.
package internal

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Marker bytes. Tiny forms fold small sizes (or small integers) into
// the marker byte itself; the sized forms carry a big-endian length
// of the indicated width.
const (
	MarkerNull  = 0xC0
	MarkerFloat = 0xC1
	MarkerFalse = 0xC2
	MarkerTrue  = 0xC3

	MarkerInt8  = 0xC8
	MarkerInt16 = 0xC9
	MarkerInt32 = 0xCA
	MarkerInt64 = 0xCB

	MarkerTinyString = 0x80 // 0x80..0x8F
	MarkerString8    = 0xD0
	MarkerString16   = 0xD1
	MarkerString32   = 0xD2

	MarkerTinyList = 0x90 // 0x90..0x9F
	MarkerList8    = 0xD4
	MarkerList16   = 0xD5
	MarkerList32   = 0xD6

	MarkerTinyMap = 0xA0 // 0xA0..0xAF
	MarkerMap8    = 0xD8
	MarkerMap16   = 0xD9
	MarkerMap32   = 0xDA

	MarkerTinyStruct = 0xB0 // 0xB0..0xBF
	MarkerStruct8    = 0xDC
	MarkerStruct16   = 0xDD
)

// Size ceilings imposed by the wire format.
const (
	MaxSize       = math.MaxUint32
	MaxStructSize = math.MaxUint16
	minTinyInt    = -16
	maxTinyInt    = 127
	tinySizeBound = 16
	u8SizeBound   = 1 << 8
	u16SizeBound  = 1 << 16
)

var (
	ErrTooLong       = errors.New("size exceeds wire format range")
	ErrInvalidMarker = errors.New("invalid marker byte")
	ErrShortBuffer   = errors.New("buffer too short")
)

// Kind is the coarse wire category resolved from a marker byte.
type Kind int

const (
	KindNull Kind = iota
	KindFalse
	KindTrue
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindStruct
)

/* writers */

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func WriteNull(w io.Writer) error { return writeByte(w, MarkerNull) }

func WriteBool(w io.Writer, v bool) error {
	if v {
		return writeByte(w, MarkerTrue)
	}
	return writeByte(w, MarkerFalse)
}

// WriteInt writes v in its minimal encoding: a single tiny-int byte
// for -16..127, otherwise the narrowest of the sized forms.
func WriteInt(w io.Writer, v int64) error {
	switch {
	case v >= minTinyInt && v <= maxTinyInt:
		return writeByte(w, byte(int8(v)))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		_, err := w.Write([]byte{MarkerInt8, byte(int8(v))})
		return err
	case v >= math.MinInt16 && v <= math.MaxInt16:
		var b [3]byte
		b[0] = MarkerInt16
		binary.BigEndian.PutUint16(b[1:], uint16(int16(v)))
		_, err := w.Write(b[:])
		return err
	case v >= math.MinInt32 && v <= math.MaxInt32:
		var b [5]byte
		b[0] = MarkerInt32
		binary.BigEndian.PutUint32(b[1:], uint32(int32(v)))
		_, err := w.Write(b[:])
		return err
	default:
		var b [9]byte
		b[0] = MarkerInt64
		binary.BigEndian.PutUint64(b[1:], uint64(v))
		_, err := w.Write(b[:])
		return err
	}
}

func WriteFloat(w io.Writer, v float64) error {
	var b [9]byte
	b[0] = MarkerFloat
	binary.BigEndian.PutUint64(b[1:], math.Float64bits(v))
	_, err := w.Write(b[:])
	return err
}

// writeSized writes a tiny/8/16/32 header for the marker family
// rooted at tiny (strings, lists, maps).
func writeSized(w io.Writer, tiny byte, m8, m16, m32 byte, n int) error {
	switch {
	case n < 0 || int64(n) > MaxSize:
		return ErrTooLong
	case n < tinySizeBound:
		return writeByte(w, tiny|byte(n))
	case n < u8SizeBound:
		_, err := w.Write([]byte{m8, byte(n)})
		return err
	case n < u16SizeBound:
		var b [3]byte
		b[0] = m16
		binary.BigEndian.PutUint16(b[1:], uint16(n))
		_, err := w.Write(b[:])
		return err
	default:
		var b [5]byte
		b[0] = m32
		binary.BigEndian.PutUint32(b[1:], uint32(n))
		_, err := w.Write(b[:])
		return err
	}
}

// WriteStringHeader writes the marker for a string of n bytes; the
// caller writes the bytes.
func WriteStringHeader(w io.Writer, n int) error {
	return writeSized(w, MarkerTinyString, MarkerString8, MarkerString16, MarkerString32, n)
}

// WriteListHeader writes the marker for a list of n elements.
func WriteListHeader(w io.Writer, n int) error {
	return writeSized(w, MarkerTinyList, MarkerList8, MarkerList16, MarkerList32, n)
}

// WriteMapHeader writes the marker for a map of n entries.
func WriteMapHeader(w io.Writer, n int) error {
	return writeSized(w, MarkerTinyMap, MarkerMap8, MarkerMap16, MarkerMap32, n)
}

// WriteStructHeader writes the marker and signature for a struct of n
// fields. Structs cap at 65535 fields.
func WriteStructHeader(w io.Writer, signature byte, n int) error {
	switch {
	case n < 0 || n > MaxStructSize:
		return ErrTooLong
	case n < tinySizeBound:
		_, err := w.Write([]byte{MarkerTinyStruct | byte(n), signature})
		return err
	case n < u8SizeBound:
		_, err := w.Write([]byte{MarkerStruct8, byte(n), signature})
		return err
	default:
		var b [4]byte
		b[0] = MarkerStruct16
		binary.BigEndian.PutUint16(b[1:], uint16(n))
		b[3] = signature
		_, err := w.Write(b[:])
		return err
	}
}

/* readers */

// DecodeMarker parses the marker at the start of b. It returns the
// resolved kind, the argument n (the integer value for KindInt; the
// byte length for KindString; the element, entry or field count for
// the containers; 0 otherwise), and the number of bytes consumed.
// For KindFloat the 8 payload bytes follow; for KindStruct the
// signature byte follows. Reserved marker bytes yield
// ErrInvalidMarker.
func DecodeMarker(b []byte) (k Kind, n int64, used int, err error) {
	if len(b) == 0 {
		return 0, 0, 0, ErrShortBuffer
	}
	m := b[0]
	switch {
	case m <= 0x7F: // positive tiny int
		return KindInt, int64(m), 1, nil
	case m >= 0xF0: // negative tiny int
		return KindInt, int64(int8(m)), 1, nil
	case m&0xF0 == MarkerTinyString:
		return KindString, int64(m & 0x0F), 1, nil
	case m&0xF0 == MarkerTinyList:
		return KindList, int64(m & 0x0F), 1, nil
	case m&0xF0 == MarkerTinyMap:
		return KindMap, int64(m & 0x0F), 1, nil
	case m&0xF0 == MarkerTinyStruct:
		return KindStruct, int64(m & 0x0F), 1, nil
	}

	switch m {
	case MarkerNull:
		return KindNull, 0, 1, nil
	case MarkerFloat:
		return KindFloat, 0, 1, nil
	case MarkerFalse:
		return KindFalse, 0, 1, nil
	case MarkerTrue:
		return KindTrue, 0, 1, nil
	case MarkerInt8:
		if len(b) < 2 {
			return 0, 0, 0, ErrShortBuffer
		}
		return KindInt, int64(int8(b[1])), 2, nil
	case MarkerInt16:
		if len(b) < 3 {
			return 0, 0, 0, ErrShortBuffer
		}
		return KindInt, int64(int16(binary.BigEndian.Uint16(b[1:]))), 3, nil
	case MarkerInt32:
		if len(b) < 5 {
			return 0, 0, 0, ErrShortBuffer
		}
		return KindInt, int64(int32(binary.BigEndian.Uint32(b[1:]))), 5, nil
	case MarkerInt64:
		if len(b) < 9 {
			return 0, 0, 0, ErrShortBuffer
		}
		return KindInt, int64(binary.BigEndian.Uint64(b[1:])), 9, nil
	case MarkerString8, MarkerList8, MarkerMap8, MarkerStruct8:
		if len(b) < 2 {
			return 0, 0, 0, ErrShortBuffer
		}
		return sizedKind(m), int64(b[1]), 2, nil
	case MarkerString16, MarkerList16, MarkerMap16, MarkerStruct16:
		if len(b) < 3 {
			return 0, 0, 0, ErrShortBuffer
		}
		return sizedKind(m), int64(binary.BigEndian.Uint16(b[1:])), 3, nil
	case MarkerString32, MarkerList32, MarkerMap32:
		if len(b) < 5 {
			return 0, 0, 0, ErrShortBuffer
		}
		return sizedKind(m), int64(binary.BigEndian.Uint32(b[1:])), 5, nil
	}
	return 0, 0, 0, ErrInvalidMarker
}

func sizedKind(m byte) Kind {
	switch m {
	case MarkerString8, MarkerString16, MarkerString32:
		return KindString
	case MarkerList8, MarkerList16, MarkerList32:
		return KindList
	case MarkerMap8, MarkerMap16, MarkerMap32:
		return KindMap
	default:
		return KindStruct
	}
}

// DecodeFloat reads the 8 payload bytes following a float marker.
func DecodeFloat(b []byte) (float64, int, error) {
	if len(b) < 8 {
		return 0, 0, ErrShortBuffer
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), 8, nil
}
