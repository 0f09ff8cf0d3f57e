package packval

import "math"

/* null */

// Null is the singleton null value. It doubles as the sentinel
// returned by accessors invoked on a mismatched type.
var Null = Value{typ: TypeNull, vtOff: vtNull}

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.typ == TypeNull }

func nullEq(v, other *Value) bool { return true }

/* bool */

// Bool returns a boolean value.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{typ: TypeBool, vtOff: vtBool, num: n}
}

// Bool returns the payload of a Boolean value, or false if v is not
// a Boolean.
func (v Value) Bool() bool {
	return v.typ == TypeBool && v.num != 0
}

func boolEq(v, other *Value) bool { return v.num == other.num }

/* int */

// Int returns an integer value.
func Int(i int64) Value {
	return Value{typ: TypeInt, vtOff: vtInt, num: uint64(i)}
}

// Int returns the payload of an Integer value, or 0 if v is not an
// Integer.
func (v Value) Int() int64 {
	if v.typ != TypeInt {
		return 0
	}
	return int64(v.num)
}

func intEq(v, other *Value) bool { return v.num == other.num }

/* float */

// Float returns a 64-bit IEEE floating point value.
func Float(f float64) Value {
	return Value{typ: TypeFloat, vtOff: vtFloat, num: math.Float64bits(f)}
}

// Float returns the payload of a Float value, or 0 if v is not a
// Float.
func (v Value) Float() float64 {
	if v.typ != TypeFloat {
		return 0
	}
	return math.Float64frombits(v.num)
}

// Exact bit-pattern-independent IEEE equality: +0 == -0, NaN != NaN.
func floatEq(v, other *Value) bool {
	return math.Float64frombits(v.num) == math.Float64frombits(other.num)
}

/* identity */

// Identity returns a graph entity identifier. Identifiers are
// non-negative: a negative id yields Null instead.
func Identity(id int64) Value {
	if id < 0 {
		return Null
	}
	return Value{typ: TypeIdentity, vtOff: vtIdentity, num: uint64(id)}
}

// ID returns the payload of an Identity value, or -1 if v is not an
// Identity.
func (v Value) ID() int64 {
	if v.typ != TypeIdentity {
		return -1
	}
	return int64(v.num)
}
