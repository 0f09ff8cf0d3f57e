package packval

import (
	"io"

	"github.com/graphsmith/packval/internal"
)

// Encoder writes wire-encoded values to an io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new streaming encoder.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes the wire encoding of v.
func (e *Encoder) Encode(v Value) error { return v.Serialize(e.w) }

// Primitive writers, for a framing layer that composes messages
// directly rather than building Values first.

func (e *Encoder) WriteNull() error           { return internal.WriteNull(e.w) }
func (e *Encoder) WriteBool(v bool) error     { return internal.WriteBool(e.w, v) }
func (e *Encoder) WriteInt(v int64) error     { return internal.WriteInt(e.w, v) }
func (e *Encoder) WriteFloat(v float64) error { return internal.WriteFloat(e.w, v) }

// WriteString writes a complete string value.
func (e *Encoder) WriteString(s string) error {
	if err := internal.WriteStringHeader(e.w, len(s)); err != nil {
		return sizeError(err, "string")
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// WriteListHeader announces a list of n elements; the caller encodes
// the elements.
func (e *Encoder) WriteListHeader(n int) error {
	return sizeError(internal.WriteListHeader(e.w, n), "list")
}

// WriteMapHeader announces a map of n entries; the caller encodes
// alternating keys and values.
func (e *Encoder) WriteMapHeader(n int) error {
	return sizeError(internal.WriteMapHeader(e.w, n), "map")
}

// WriteStructHeader announces a struct of n fields under the given
// signature; the caller encodes the fields.
func (e *Encoder) WriteStructHeader(signature byte, n int) error {
	return sizeError(internal.WriteStructHeader(e.w, signature, n), "struct")
}
