package packval

import (
	"io"
	"strconv"

	"github.com/graphsmith/packval/internal"
)

// strbuf is a bounded render target. Writes past the end of dst are
// dropped, but n keeps advancing, so after rendering n holds the byte
// length the complete rendering requires.
type strbuf struct {
	dst []byte
	n   int
}

func (b *strbuf) Write(p []byte) (int, error) {
	if b.n < len(b.dst) {
		copy(b.dst[b.n:], p)
	}
	b.n += len(p)
	return len(p), nil
}

// printer accumulates a byte count across a streamed rendering and
// latches the first write error.
type printer struct {
	w   io.Writer
	n   int
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	n, err := io.WriteString(p.w, s)
	p.n += n
	p.err = err
}

func (p *printer) bytes(b []byte) {
	if p.err != nil || len(b) == 0 {
		return
	}
	n, err := p.w.Write(b)
	p.n += n
	p.err = err
}

func (p *printer) byte(c byte) {
	if p.err != nil {
		return
	}
	n, err := p.w.Write([]byte{c})
	p.n += n
	p.err = err
}

func (p *printer) value(v *Value) {
	if p.err != nil {
		return
	}
	n, err := v.vt().fprint(v, p.w)
	p.n += n
	p.err = err
}

// quoted writes b surrounded by double quotes, escaping backslashes
// and quotes. Other bytes pass through untouched.
func (p *printer) quoted(b []byte) {
	p.byte('"')
	start := 0
	for i := 0; i < len(b); i++ {
		if c := b[i]; c == '"' || c == '\\' {
			p.bytes(b[start:i])
			p.byte('\\')
			p.byte(c)
			start = i + 1
		}
	}
	p.bytes(b[start:])
	p.byte('"')
}

/* stream rendering */

func nullFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.raw("null")
	return p.n, p.err
}

func boolFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	if v.num != 0 {
		p.raw("true")
	} else {
		p.raw("false")
	}
	return p.n, p.err
}

func intFprint(v *Value, w io.Writer) (int, error) {
	var scratch [20]byte
	p := printer{w: w}
	p.bytes(strconv.AppendInt(scratch[:0], int64(v.num), 10))
	return p.n, p.err
}

func floatFprint(v *Value, w io.Writer) (int, error) {
	var scratch [32]byte
	p := printer{w: w}
	p.bytes(strconv.AppendFloat(scratch[:0], v.Float(), 'g', -1, 64))
	return p.n, p.err
}

func stringFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.quoted(v.bstr)
	return p.n, p.err
}

func listFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.byte('[')
	for i := range v.items {
		if i > 0 {
			p.byte(',')
		}
		p.value(&v.items[i])
	}
	p.byte(']')
	return p.n, p.err
}

// Map keys render unquoted.
func mapFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.byte('{')
	for i := range v.entries {
		if i > 0 {
			p.byte(',')
		}
		p.bytes(v.entries[i].Key.bstr)
		p.byte(':')
		p.value(&v.entries[i].Value)
	}
	p.byte('}')
	return p.n, p.err
}

// (:Label1:Label2{props})
func nodeFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.byte('(')
	labels := v.items[1]
	for i := range labels.items {
		p.byte(':')
		p.bytes(labels.items[i].bstr)
	}
	p.value(&v.items[2])
	p.byte(')')
	return p.n, p.err
}

// [:TYPE{props}] for bound and unbound alike.
func relFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.raw("[:")
	reltype := v.RelationshipType()
	p.bytes(reltype.bstr)
	props := v.RelationshipProperties()
	p.value(&props)
	p.byte(']')
	return p.n, p.err
}

// (n0)-[:T{}]->(n1), with the arrow reversed for hops traversed
// against the relationship's stored orientation.
func pathFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	node := v.PathGetNode(0)
	p.value(&node)
	length := v.PathLength()
	for hops := 0; hops < length; hops++ {
		rel, forward := v.PathGetRelationship(hops)
		if forward {
			p.byte('-')
			p.value(&rel)
			p.raw("->")
		} else {
			p.raw("<-")
			p.value(&rel)
			p.byte('-')
		}
		node = v.PathGetNode(hops + 1)
		p.value(&node)
	}
	return p.n, p.err
}

const hexdigits = "0123456789ABCDEF"

// struct<0xSS>(f1,f2)
func structFprint(v *Value, w io.Writer) (int, error) {
	p := printer{w: w}
	p.raw("struct<0x")
	p.byte(hexdigits[v.sig>>4])
	p.byte(hexdigits[v.sig&0x0F])
	p.raw(">(")
	for i := range v.items {
		if i > 0 {
			p.byte(',')
		}
		p.value(&v.items[i])
	}
	p.byte(')')
	return p.n, p.err
}

/* bounded rendering */

// The bounded renderers share the stream implementations: a strbuf
// absorbs the overflow while counting the required length.

func nullStr(v *Value, b *strbuf)   { nullFprint(v, b) }
func boolStr(v *Value, b *strbuf)   { boolFprint(v, b) }
func intStr(v *Value, b *strbuf)    { intFprint(v, b) }
func floatStr(v *Value, b *strbuf)  { floatFprint(v, b) }
func stringStr(v *Value, b *strbuf) { stringFprint(v, b) }
func listStr(v *Value, b *strbuf)   { listFprint(v, b) }
func mapStr(v *Value, b *strbuf)    { mapFprint(v, b) }
func nodeStr(v *Value, b *strbuf)   { nodeFprint(v, b) }
func relStr(v *Value, b *strbuf)    { relFprint(v, b) }
func pathStr(v *Value, b *strbuf)   { pathFprint(v, b) }
func structStr(v *Value, b *strbuf) { structFprint(v, b) }

/* wide rendering */

// Scalar renderings are ASCII, so the rune conversion is direct. The
// container and composite variants provide no wide rendering.
func scalarRunes(s string, buf []rune) int {
	for i := 0; i < len(s) && i < len(buf); i++ {
		buf[i] = rune(s[i])
	}
	return len(s)
}

func nullRunes(v *Value, buf []rune) int {
	return scalarRunes("null", buf)
}

func boolRunes(v *Value, buf []rune) int {
	if v.num != 0 {
		return scalarRunes("true", buf)
	}
	return scalarRunes("false", buf)
}

func intRunes(v *Value, buf []rune) int {
	var scratch [20]byte
	return scalarRunes(string(strconv.AppendInt(scratch[:0], int64(v.num), 10)), buf)
}

func floatRunes(v *Value, buf []rune) int {
	var scratch [32]byte
	return scalarRunes(string(strconv.AppendFloat(scratch[:0], v.Float(), 'g', -1, 64)), buf)
}

// String renders v in full. Implements fmt.Stringer.
func (v Value) String() string {
	b := internal.GetBuffer()
	defer internal.PutBuffer(b)
	v.Fprint(b) // writes to a bytes.Buffer cannot fail
	return b.String()
}
