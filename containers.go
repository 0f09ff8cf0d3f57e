package packval

import "bytes"

/* string */

// String returns a string value over the bytes of s.
func String(s string) Value {
	return UString([]byte(s))
}

// UString returns a string value that borrows b without copying. The
// bytes need not be UTF-8 and are not required to be NUL terminated;
// the slice length is authoritative. The caller must keep b alive and
// unmodified for the lifetime of the value.
func UString(b []byte) Value {
	return Value{typ: TypeString, vtOff: vtString, bstr: b}
}

// Bytes returns the borrowed byte content of a String value, or nil
// if v is not a String.
func (v Value) Bytes() []byte {
	if v.typ != TypeString {
		return nil
	}
	return v.bstr
}

// StringValue returns a copy of the content of a String value as a Go
// string, or "" if v is not a String.
func (v Value) StringValue() string {
	if v.typ != TypeString {
		return ""
	}
	return string(v.bstr)
}

// StringLength returns the byte length of a String value, or 0 if v
// is not a String.
func (v Value) StringLength() int {
	if v.typ != TypeString {
		return 0
	}
	return len(v.bstr)
}

func stringEq(v, other *Value) bool {
	return bytes.Equal(v.bstr, other.bstr)
}

/* list */

// List returns a list value that borrows items without copying.
// Elements may be of any type, including nested containers; no
// validation is performed.
func List(items []Value) Value {
	return Value{typ: TypeList, vtOff: vtList, items: items}
}

// ListLength returns the number of elements of a List value, or 0 if
// v is not a List.
func (v Value) ListLength() int {
	if v.typ != TypeList {
		return 0
	}
	return len(v.items)
}

// ListGet returns element i of a List value, or Null if v is not a
// List or i is out of range.
func (v Value) ListGet(i int) Value {
	if v.typ != TypeList || i < 0 || i >= len(v.items) {
		return Null
	}
	return v.items[i]
}

func listEq(v, other *Value) bool {
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Eq(other.items[i]) {
			return false
		}
	}
	return true
}

/* map */

// Map returns a map value that borrows entries without copying. Every
// key must be a String; the first violation aborts construction with
// ErrInvalidMapKeyType. Duplicate keys are not rejected.
func Map(entries []MapEntry) (Value, error) {
	for i := range entries {
		if entries[i].Key.typ != TypeString {
			return Null, &Error{Kind: ErrInvalidMapKeyType,
				Detail: "map key is " + entries[i].Key.typ.String()}
		}
	}
	return Value{typ: TypeMap, vtOff: vtMap, entries: entries}, nil
}

// MapKV builds a map entry with a string key.
func MapKV(key string, value Value) MapEntry {
	return MapEntry{Key: String(key), Value: value}
}

// MapSize returns the number of entries of a Map value, or 0 if v is
// not a Map.
func (v Value) MapSize() int {
	if v.typ != TypeMap {
		return 0
	}
	return len(v.entries)
}

// MapGetEntry returns entry i of a Map value. The second result is
// false if v is not a Map or i is out of range.
func (v Value) MapGetEntry(i int) (MapEntry, bool) {
	if v.typ != TypeMap || i < 0 || i >= len(v.entries) {
		return MapEntry{}, false
	}
	return v.entries[i], true
}

// MapGet returns the value stored under key, or Null if v is not a
// Map or no entry matches. Lookup is a linear scan; with duplicate
// keys the first match wins.
func (v Value) MapGet(key Value) Value {
	if v.typ != TypeMap {
		return Null
	}
	for i := range v.entries {
		if v.entries[i].Key.Eq(key) {
			return v.entries[i].Value
		}
	}
	return Null
}

// Entry order is insignificant: every entry of v must have a matching
// key in other with an equal value. Lookup is a linear scan per key.
func mapEq(v, other *Value) bool {
	if len(v.entries) != len(other.entries) {
		return false
	}
	for i := range v.entries {
		ventry := &v.entries[i]
		var oentry *MapEntry
		for j := range other.entries {
			if ventry.Key.Eq(other.entries[j].Key) {
				oentry = &other.entries[j]
				break
			}
		}
		if oentry == nil || !ventry.Value.Eq(oentry.Value) {
			return false
		}
	}
	return true
}
