package main

import (
	"testing"

	"github.com/graphsmith/packval"
)

func TestLooksHex(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"c0", true},
		{"C0c1", true},
		{"  93010203\n", true},
		{"c0c", false},   // odd length
		{"hello", false}, // non-hex letters
		{"0x2A", false},  // prefix is not hex
	}
	for _, c := range cases {
		if got := looksHex([]byte(c.in)); got != c.want {
			t.Errorf("looksHex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDecodeAll(t *testing.T) {
	values, err := decodeAll([]byte{0x01, 0x85, 'h', 'e', 'l', 'l', 'o', 0xC3})
	if err != nil {
		t.Fatalf("decodeAll: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("decoded %d values, want 3", len(values))
	}
	if !values[0].Eq(packval.Int(1)) || !values[1].Eq(packval.String("hello")) ||
		!values[2].Eq(packval.Bool(true)) {
		t.Fatalf("decoded %v", values)
	}

	if _, err := decodeAll([]byte{0x85, 'h'}); err == nil {
		t.Error("truncated input must fail")
	}
}
