package packval

import "fmt"

// Type identifies the semantic type of a Value. Values have no
// inheritance: every Value carries exactly one Type and Instanceof is
// plain tag equality.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeList
	TypeMap
	TypeNode
	TypeRelationship
	TypePath
	TypeIdentity
	TypeStruct
)

var typeNames = [...]string{
	TypeNull:         "Null",
	TypeBool:         "Boolean",
	TypeInt:          "Integer",
	TypeFloat:        "Float",
	TypeString:       "String",
	TypeList:         "List",
	TypeMap:          "Map",
	TypeNode:         "Node",
	TypeRelationship: "Relationship",
	TypePath:         "Path",
	TypeIdentity:     "Identity",
	TypeStruct:       "Struct",
}

// String returns the fixed display name of t.
func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Instanceof reports whether v is of type t.
func Instanceof(v Value, t Type) bool {
	return v.Type() == t
}

// Signatures of the graph composite structs. Bound and unbound
// relationships share a signature and are discriminated by field
// count.
const (
	SignatureNode         byte = 0x4E
	SignatureRelationship byte = 0x52
	SignaturePath         byte = 0x50
)
