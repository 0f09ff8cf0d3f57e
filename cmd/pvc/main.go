// Command pvc converts between the packval text notation and the wire
// format. By default it encodes a text document to wire bytes;
// -decode reverses the direction and renders wire bytes as text.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/graphsmith/packval"
	"github.com/graphsmith/packval/textrep"
)

func main() {
	in := flag.String("in", "-", "input file (or - for stdin)")
	out := flag.String("out", "-", "output file (or - for stdout)")
	hexMode := flag.Bool("hex", false, "hex-encode wire output; force hex-decoding of wire input")
	decode := flag.Bool("decode", false, "decode wire bytes and render them as text")
	validate := flag.Bool("validate", false, "validate only; parse without writing output")
	info := flag.Bool("info", false, "print a summary of the decoded values (no output bytes)")
	flag.Parse()

	var inBytes []byte
	var err error
	if *in == "-" {
		inBytes, err = io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("read stdin: %v", err)
		}
	} else {
		inBytes, err = os.ReadFile(*in)
		if err != nil {
			fatalf("read input: %v", err)
		}
	}

	if *decode || *info {
		// Wire input may arrive hex-encoded; -hex forces it, otherwise
		// input that consists solely of hex digits is sniffed.
		if *hexMode || looksHex(inBytes) {
			inBytes, err = hex.DecodeString(string(bytes.TrimSpace(inBytes)))
			if err != nil {
				fatalf("hex input: %v", err)
			}
		}
		values, err := decodeAll(inBytes)
		if err != nil {
			fatalf("decode: %v", err)
		}
		if *info {
			for _, v := range values {
				fmt.Printf("%s: %s\n", v.Type(), v)
			}
			return
		}
		if *validate {
			return
		}
		w := openOut(*out)
		for _, v := range values {
			if _, err := v.Fprint(w); err != nil {
				fatalf("write: %v", err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				fatalf("write: %v", err)
			}
		}
		return
	}

	// Encode direction: text notation to wire bytes.
	outBytes, err := textrep.EncodeBytes(inBytes)
	if err != nil {
		fatalf("encode: %v", err)
	}
	if *validate {
		return
	}
	w := openOut(*out)
	if *hexMode {
		enc := hex.NewEncoder(w)
		if _, err := enc.Write(outBytes); err != nil {
			fatalf("write hex: %v", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			fatalf("write newline: %v", err)
		}
		return
	}
	if _, err := w.Write(outBytes); err != nil {
		fatalf("write: %v", err)
	}
}

func decodeAll(data []byte) ([]packval.Value, error) {
	d := packval.NewDecoder(data)
	var values []packval.Value
	for d.More() {
		v, err := d.Decode()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func looksHex(b []byte) bool {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || len(b)%2 != 0 {
		return false
	}
	for _, c := range b {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

func openOut(path string) io.Writer {
	if path == "-" {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		fatalf("create output: %v", err)
	}
	return f
}

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}
