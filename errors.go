package packval

import "fmt"

// ErrorKind classifies construction and codec errors.
type ErrorKind int

const (
	// Construction-time validation failures.
	ErrInvalidMapKeyType ErrorKind = iota + 1
	ErrInvalidFieldType
	ErrInvalidLabelType
	ErrInvalidPathNodeType
	ErrInvalidPathRelationshipType
	ErrInvalidPathSequenceLength
	ErrInvalidPathSequenceIdxType
	ErrInvalidPathSequenceIdxRange

	// Codec failures.
	ErrInvalidMarker
	ErrLengthOverflow
	ErrUnexpectedEOF
	ErrNestingTooDeep
	ErrTrailingData
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidMapKeyType:           "invalid map key type",
	ErrInvalidFieldType:            "invalid field type",
	ErrInvalidLabelType:            "invalid label type",
	ErrInvalidPathNodeType:         "invalid path node type",
	ErrInvalidPathRelationshipType: "invalid path relationship type",
	ErrInvalidPathSequenceLength:   "invalid path sequence length",
	ErrInvalidPathSequenceIdxType:  "invalid path sequence index type",
	ErrInvalidPathSequenceIdxRange: "invalid path sequence index range",
	ErrInvalidMarker:               "invalid marker",
	ErrLengthOverflow:              "length overflow",
	ErrUnexpectedEOF:               "unexpected end of input",
	ErrNestingTooDeep:              "nesting too deep",
	ErrTrailingData:                "trailing data",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error carries offset and classification for better diagnostics.
// Offset is a byte position in the decode input, or 0 for
// construction-time errors.
type Error struct {
	Offset int64
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("packval: %v at %d: %s", e.Kind, e.Offset, e.Detail)
	}
	if e.Detail == "" {
		return fmt.Sprintf("packval: %v", e.Kind)
	}
	return fmt.Sprintf("packval: %v: %s", e.Kind, e.Detail)
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a
// packval error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok && e != nil {
		return e.Kind
	}
	return 0
}
