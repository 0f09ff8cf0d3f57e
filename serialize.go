package packval

import (
	"io"

	"github.com/graphsmith/packval/internal"
)

// The serialize slots of the dispatch table. Identity shares the
// integer encoding; Node, Relationship and Path serialize through the
// generic struct encoding of their fields.

func nullSerialize(v *Value, w io.Writer) error {
	return internal.WriteNull(w)
}

func boolSerialize(v *Value, w io.Writer) error {
	return internal.WriteBool(w, v.num != 0)
}

func intSerialize(v *Value, w io.Writer) error {
	return internal.WriteInt(w, int64(v.num))
}

func floatSerialize(v *Value, w io.Writer) error {
	return internal.WriteFloat(w, v.Float())
}

func stringSerialize(v *Value, w io.Writer) error {
	if err := internal.WriteStringHeader(w, len(v.bstr)); err != nil {
		return sizeError(err, "string")
	}
	_, err := w.Write(v.bstr)
	return err
}

func listSerialize(v *Value, w io.Writer) error {
	if err := internal.WriteListHeader(w, len(v.items)); err != nil {
		return sizeError(err, "list")
	}
	for i := range v.items {
		if err := v.items[i].Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func mapSerialize(v *Value, w io.Writer) error {
	if err := internal.WriteMapHeader(w, len(v.entries)); err != nil {
		return sizeError(err, "map")
	}
	for i := range v.entries {
		if err := v.entries[i].Key.Serialize(w); err != nil {
			return err
		}
		if err := v.entries[i].Value.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func structSerialize(v *Value, w io.Writer) error {
	if err := internal.WriteStructHeader(w, v.sig, len(v.items)); err != nil {
		return sizeError(err, "struct")
	}
	for i := range v.items {
		if err := v.items[i].Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func sizeError(err error, what string) error {
	if err == internal.ErrTooLong {
		return &Error{Kind: ErrLengthOverflow, Detail: what + " exceeds wire format range"}
	}
	return err
}
