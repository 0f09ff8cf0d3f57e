package packval

import "io"

// Value is an immutable tagged view over a single protocol value. It
// never owns variable-length backing storage: string bytes, list
// items, map entries and struct fields are borrowed slices, valid for
// as long as whatever they point into (typically a decode buffer or
// caller-built slices). The zero Value is Null.
type Value struct {
	typ   Type
	vtOff uint8
	sig   byte

	num     uint64     // bool, int, float and identity payload bits
	bstr    []byte     // string bytes
	items   []Value    // list items or struct fields
	entries []MapEntry // map entries
}

// MapEntry is a single key/value pair of a Map value.
type MapEntry struct {
	Key   Value
	Value Value
}

// Type returns the semantic type of v.
func (v Value) Type() Type { return v.typ }

/* dispatch table */

// Dispatch offsets are distinct from semantic types: Identity routes
// through Integer behavior and the graph composites share struct
// serialization and equality, while remaining distinct Types.
const (
	vtNull uint8 = iota
	vtBool
	vtInt
	vtFloat
	vtString
	vtList
	vtMap
	vtNode
	vtRelationship
	vtPath
	vtIdentity
	vtStruct
)

type valueVT struct {
	str       func(v *Value, b *strbuf)
	runes     func(v *Value, buf []rune) int // nil when no wide rendering exists
	fprint    func(v *Value, w io.Writer) (int, error)
	serialize func(v *Value, w io.Writer) error
	eq        func(v, other *Value) bool
}

var valueVTs [12]*valueVT

// Several slots (container eq, composite fprint) recurse through Value
// methods that read the table, so a composite-literal initializer
// would be an initialization cycle. Populating in init breaks the
// cycle without indirection at dispatch time.
func init() {
	valueVTs = [12]*valueVT{
		vtNull: {
			str:       nullStr,
			runes:     nullRunes,
			fprint:    nullFprint,
			serialize: nullSerialize,
			eq:        nullEq,
		},
		vtBool: {
			str:       boolStr,
			runes:     boolRunes,
			fprint:    boolFprint,
			serialize: boolSerialize,
			eq:        boolEq,
		},
		vtInt: {
			str:       intStr,
			runes:     intRunes,
			fprint:    intFprint,
			serialize: intSerialize,
			eq:        intEq,
		},
		vtFloat: {
			str:       floatStr,
			runes:     floatRunes,
			fprint:    floatFprint,
			serialize: floatSerialize,
			eq:        floatEq,
		},
		vtString: {
			str:       stringStr,
			fprint:    stringFprint,
			serialize: stringSerialize,
			eq:        stringEq,
		},
		vtList: {
			str:       listStr,
			fprint:    listFprint,
			serialize: listSerialize,
			eq:        listEq,
		},
		vtMap: {
			str:       mapStr,
			fprint:    mapFprint,
			serialize: mapSerialize,
			eq:        mapEq,
		},
		vtNode: {
			str:       nodeStr,
			fprint:    nodeFprint,
			serialize: structSerialize,
			eq:        structEq,
		},
		vtRelationship: {
			str:       relStr,
			fprint:    relFprint,
			serialize: structSerialize,
			eq:        structEq,
		},
		vtPath: {
			str:       pathStr,
			fprint:    pathFprint,
			serialize: structSerialize,
			eq:        structEq,
		},
		vtIdentity: {
			str:       intStr,
			runes:     intRunes,
			fprint:    intFprint,
			serialize: intSerialize,
			eq:        intEq,
		},
		vtStruct: {
			str:       structStr,
			fprint:    structFprint,
			serialize: structSerialize,
			eq:        structEq,
		},
	}
}

// vt resolves the dispatch entry for v. The bounds can only be
// violated by memory corruption: every constructor pairs a valid
// offset with a valid type, so this fails fast.
func (v *Value) vt() *valueVT {
	if int(v.vtOff) >= len(valueVTs) || int(v.typ) >= len(typeNames) {
		panic("packval: value has corrupt dispatch index")
	}
	return valueVTs[v.vtOff]
}

/* method dispatch */

// NString renders v into buf. The output is truncated to fit, but the
// return is always the byte length of the complete rendering.
func (v Value) NString(buf []byte) int {
	b := strbuf{dst: buf}
	v.vt().str(&v, &b)
	return b.n
}

// RuneString renders v into a bounded rune buffer, returning the rune
// length of the complete rendering. Only the scalar variants provide
// a wide rendering; RuneString returns -1 for the rest.
func (v Value) RuneString(buf []rune) int {
	vt := v.vt()
	if vt.runes == nil {
		return -1
	}
	return vt.runes(&v, buf)
}

// Fprint writes the rendering of v to w and returns the number of
// bytes written. Containers are streamed without buffering the whole
// rendering.
func (v Value) Fprint(w io.Writer) (int, error) {
	return v.vt().fprint(&v, w)
}

// Serialize writes the wire encoding of v to w.
func (v Value) Serialize(w io.Writer) error {
	return v.vt().serialize(&v, w)
}

// Eq reports structural equality of v and other. Values of different
// semantic types are unequal, never an error: Identity(1) and Int(1)
// compare false. Lists compare in order; maps ignore entry order;
// structs compare signature, field count and fields in order.
func (v Value) Eq(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	return v.vt().eq(&v, &other)
}
