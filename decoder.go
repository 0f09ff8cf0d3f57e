package packval

import (
	"github.com/graphsmith/packval/internal"
)

// Decoder reads wire-encoded values from a byte buffer. Decoded
// String values are zero-copy views into the buffer, so the buffer
// must outlive them and stay unmodified; container backing arrays are
// allocated by the decoder and owned by the returned values' users.
type Decoder struct {
	buf []byte
	off int
}

// Values nested deeper than this fail with ErrNestingTooDeep. Genuine
// protocol payloads are a handful of levels deep; the guard bounds
// recursion on hostile input.
const maxNestingDepth = 512

// NewDecoder creates a decoder over data.
func NewDecoder(data []byte) *Decoder { return &Decoder{buf: data} }

// More reports whether input remains.
func (d *Decoder) More() bool { return d.off < len(d.buf) }

// Offset returns the current byte position.
func (d *Decoder) Offset() int { return d.off }

// Decode reads the next value. Structs carrying a known composite
// signature and arity are rebuilt through the validating graph
// constructors, so a successful decode upholds every construction
// invariant; a matching signature with invalid fields is a decode
// error, not a silent generic struct.
func (d *Decoder) Decode() (Value, error) {
	return d.decodeValue(0)
}

func (d *Decoder) errAt(off int, kind ErrorKind, detail string) error {
	return &Error{Offset: int64(off), Kind: kind, Detail: detail}
}

// at stamps the input position onto construction errors surfaced
// during composite rebuilding.
func at(err error, off int) error {
	if e, ok := err.(*Error); ok && e.Offset == 0 {
		e.Offset = int64(off)
	}
	return err
}

func (d *Decoder) decodeValue(depth int) (Value, error) {
	if depth > maxNestingDepth {
		return Null, d.errAt(d.off, ErrNestingTooDeep, "value nesting exceeds limit")
	}
	start := d.off
	k, n, used, err := internal.DecodeMarker(d.buf[d.off:])
	if err != nil {
		if err == internal.ErrShortBuffer {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated marker")
		}
		return Null, d.errAt(start, ErrInvalidMarker, "reserved marker byte")
	}
	d.off += used

	switch k {
	case internal.KindNull:
		return Null, nil
	case internal.KindFalse:
		return Bool(false), nil
	case internal.KindTrue:
		return Bool(true), nil
	case internal.KindInt:
		return Int(n), nil
	case internal.KindFloat:
		f, used, err := internal.DecodeFloat(d.buf[d.off:])
		if err != nil {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated float")
		}
		d.off += used
		return Float(f), nil
	case internal.KindString:
		if n > int64(len(d.buf)-d.off) {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated string")
		}
		b := d.buf[d.off : d.off+int(n)]
		d.off += int(n)
		return UString(b), nil
	case internal.KindList:
		// Every element takes at least one byte, so a count beyond
		// the remaining input is bogus; checking first keeps hostile
		// headers from driving huge allocations.
		if n > int64(len(d.buf)-d.off) {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated list")
		}
		items := make([]Value, n)
		for i := range items {
			if items[i], err = d.decodeValue(depth + 1); err != nil {
				return Null, err
			}
		}
		return List(items), nil
	case internal.KindMap:
		if 2*n > int64(len(d.buf)-d.off) {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated map")
		}
		entries := make([]MapEntry, n)
		for i := range entries {
			if entries[i].Key, err = d.decodeValue(depth + 1); err != nil {
				return Null, err
			}
			if entries[i].Value, err = d.decodeValue(depth + 1); err != nil {
				return Null, err
			}
		}
		m, err := Map(entries)
		if err != nil {
			return Null, at(err, start)
		}
		return m, nil
	default: // internal.KindStruct
		if d.off >= len(d.buf) {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated struct signature")
		}
		sig := d.buf[d.off]
		d.off++
		if n > int64(len(d.buf)-d.off) {
			return Null, d.errAt(start, ErrUnexpectedEOF, "truncated struct")
		}
		fields := make([]Value, n)
		for i := range fields {
			if fields[i], err = d.decodeValue(depth + 1); err != nil {
				return Null, err
			}
		}
		return d.buildStruct(start, sig, fields)
	}
}

// buildStruct routes decoded structs into the graph composites. The
// wire carries identities as plain integers; the identity-position
// fields are converted before re-validation.
func (d *Decoder) buildStruct(start int, sig byte, fields []Value) (Value, error) {
	switch {
	case sig == SignatureNode && len(fields) == 3:
		id, err := identityField(fields[0], false)
		if err != nil {
			return Null, at(err, start)
		}
		v, err := Node(id, fields[1], fields[2])
		if err != nil {
			return Null, at(err, start)
		}
		return v, nil
	case sig == SignatureRelationship && len(fields) == 5:
		id, err := identityField(fields[0], false)
		if err != nil {
			return Null, at(err, start)
		}
		startID, err := identityField(fields[1], true)
		if err != nil {
			return Null, at(err, start)
		}
		endID, err := identityField(fields[2], true)
		if err != nil {
			return Null, at(err, start)
		}
		v, err := Relationship(id, startID, endID, fields[3], fields[4])
		if err != nil {
			return Null, at(err, start)
		}
		return v, nil
	case sig == SignatureRelationship && len(fields) == 3:
		id, err := identityField(fields[0], false)
		if err != nil {
			return Null, at(err, start)
		}
		v, err := UnboundRelationship(id, fields[1], fields[2])
		if err != nil {
			return Null, at(err, start)
		}
		return v, nil
	case sig == SignaturePath && len(fields) == 3:
		v, err := Path(fields[0], fields[1], fields[2])
		if err != nil {
			return Null, at(err, start)
		}
		return v, nil
	}
	return Struct(sig, fields), nil
}

func identityField(f Value, nullable bool) (Value, error) {
	if nullable && f.IsNull() {
		return Null, nil
	}
	if f.Type() != TypeInt {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "identity field is " + f.Type().String()}
	}
	id := Identity(f.Int())
	if id.IsNull() {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "identity field is negative"}
	}
	return id, nil
}
