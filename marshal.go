package packval

import "bytes"

// Marshal encodes v into a wire-format byte slice.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a single value from data. The input must contain
// exactly one value; leftover bytes are an ErrTrailingData error.
// String values in the result borrow from data.
func Unmarshal(data []byte) (Value, error) {
	d := NewDecoder(data)
	v, err := d.Decode()
	if err != nil {
		return Null, err
	}
	if d.More() {
		return Null, &Error{Offset: int64(d.off), Kind: ErrTrailingData,
			Detail: "input continues after value"}
	}
	return v, nil
}
