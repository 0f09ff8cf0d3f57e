// Package textrep implements a small textual notation for authoring
// packval values:
//
//	null  true  42  -17  0x2A  3.14  "text"
//	[1,2,3]
//	{name: "Ada", "quoted key": true}
//	id(42)
//	struct<0x66>(1, "two")
//	node(id(1), ["Person"], {name: "Ada"})
//	rel(id(9), id(1), id(2), "KNOWS", {})
//	unbound(id(9), "KNOWS", {})
//	path([...nodes...], [...rels...], [1,1])
//
// Composite forms run the validating constructors, so a parsed
// document yields a well-formed value or an error. Line (`//`, `#`)
// and block comments are allowed, and integers may use `_` digit
// separators.
package textrep

import (
	"fmt"
	"io"
	"strconv"

	"github.com/graphsmith/packval"
)

// Parse reads a value document from r.
func Parse(r io.Reader) (packval.Value, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return packval.Null, err
	}
	return ParseBytes(src)
}

// ParseBytes parses a single value from src.
func ParseBytes(src []byte) (packval.Value, error) {
	p := &parser{lx: newLexer(src)}
	p.lx.next()
	v, err := p.parseValue()
	if err != nil {
		return packval.Null, err
	}
	if p.lx.cur.kind != tokEOF {
		return packval.Null, fmt.Errorf("trailing input at offset %d", p.lx.off)
	}
	if p.lx.err != nil {
		return packval.Null, p.lx.err
	}
	return v, nil
}

// EncodeBytes parses a value document and returns its wire encoding.
func EncodeBytes(src []byte) ([]byte, error) {
	v, err := ParseBytes(src)
	if err != nil {
		return nil, err
	}
	return packval.Marshal(v)
}

// Encode reads a value document from r and writes its wire encoding
// to w.
func Encode(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := EncodeBytes(src)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type parser struct {
	lx *lexer
}

func (p *parser) errf(format string, args ...any) error {
	if p.lx.err != nil {
		return p.lx.err
	}
	return fmt.Errorf(format, args...)
}

// expect consumes the current token if it matches kind.
func (p *parser) expect(kind tokKind, what string) error {
	if p.lx.cur.kind != kind {
		return p.errf("expected %s, got %q at offset %d", what, p.lx.cur.lit, p.lx.off)
	}
	p.lx.next()
	return nil
}

func (p *parser) parseValue() (packval.Value, error) {
	switch p.lx.cur.kind {
	case tokNull:
		p.lx.next()
		return packval.Null, nil
	case tokTrue:
		p.lx.next()
		return packval.Bool(true), nil
	case tokFalse:
		p.lx.next()
		return packval.Bool(false), nil
	case tokInt:
		i, err := p.parseIntLit()
		if err != nil {
			return packval.Null, err
		}
		return packval.Int(i), nil
	case tokFloat:
		f, err := strconv.ParseFloat(stripUnderscores(p.lx.cur.lit), 64)
		if err != nil {
			return packval.Null, p.errf("bad float %q: %v", p.lx.cur.lit, err)
		}
		p.lx.next()
		return packval.Float(f), nil
	case tokString:
		s := p.lx.cur.lit
		p.lx.next()
		return packval.String(s), nil
	case tokLBrack:
		return p.parseList()
	case tokLBrace:
		return p.parseMap()
	case tokID:
		return p.parseIdentity()
	case tokStruct:
		return p.parseStruct()
	case tokNode:
		return p.composite("node", 3, func(args []packval.Value) (packval.Value, error) {
			return packval.Node(args[0], args[1], args[2])
		})
	case tokRel:
		return p.composite("rel", 5, func(args []packval.Value) (packval.Value, error) {
			return packval.Relationship(args[0], args[1], args[2], args[3], args[4])
		})
	case tokUnbound:
		return p.composite("unbound", 3, func(args []packval.Value) (packval.Value, error) {
			return packval.UnboundRelationship(args[0], args[1], args[2])
		})
	case tokPath:
		return p.composite("path", 3, func(args []packval.Value) (packval.Value, error) {
			return packval.Path(args[0], args[1], args[2])
		})
	}
	return packval.Null, p.errf("unexpected token %q at offset %d", p.lx.cur.lit, p.lx.off)
}

func (p *parser) parseIntLit() (int64, error) {
	lit := stripUnderscores(p.lx.cur.lit)
	base := p.lx.cur.intBase
	if base == 16 {
		lit = lit[2:] // strip 0x
	}
	i, err := strconv.ParseInt(lit, base, 64)
	if err != nil {
		return 0, p.errf("bad integer %q: %v", p.lx.cur.lit, err)
	}
	p.lx.next()
	return i, nil
}

func (p *parser) parseList() (packval.Value, error) {
	p.lx.next() // consume [
	var items []packval.Value
	for p.lx.cur.kind != tokRBrack {
		v, err := p.parseValue()
		if err != nil {
			return packval.Null, err
		}
		items = append(items, v)
		if p.lx.cur.kind == tokComma {
			p.lx.next()
			continue
		}
		break
	}
	if err := p.expect(tokRBrack, "]"); err != nil {
		return packval.Null, err
	}
	return packval.List(items), nil
}

func (p *parser) parseMap() (packval.Value, error) {
	p.lx.next() // consume {
	var entries []packval.MapEntry
	for p.lx.cur.kind != tokRBrace {
		var key string
		switch p.lx.cur.kind {
		case tokIdent, tokString:
			key = p.lx.cur.lit
		default:
			return packval.Null, p.errf("expected map key, got %q at offset %d",
				p.lx.cur.lit, p.lx.off)
		}
		p.lx.next()
		if err := p.expect(tokColon, ":"); err != nil {
			return packval.Null, err
		}
		v, err := p.parseValue()
		if err != nil {
			return packval.Null, err
		}
		entries = append(entries, packval.MapKV(key, v))
		if p.lx.cur.kind == tokComma {
			p.lx.next()
			continue
		}
		break
	}
	if err := p.expect(tokRBrace, "}"); err != nil {
		return packval.Null, err
	}
	return packval.Map(entries)
}

func (p *parser) parseIdentity() (packval.Value, error) {
	p.lx.next() // consume id
	if err := p.expect(tokLParen, "("); err != nil {
		return packval.Null, err
	}
	if p.lx.cur.kind != tokInt {
		return packval.Null, p.errf("expected identity number at offset %d", p.lx.off)
	}
	i, err := p.parseIntLit()
	if err != nil {
		return packval.Null, err
	}
	if err := p.expect(tokRParen, ")"); err != nil {
		return packval.Null, err
	}
	v := packval.Identity(i)
	if v.IsNull() {
		return packval.Null, p.errf("identity must be non-negative, got %d", i)
	}
	return v, nil
}

func (p *parser) parseStruct() (packval.Value, error) {
	p.lx.next() // consume struct
	if err := p.expect(tokLt, "<"); err != nil {
		return packval.Null, err
	}
	if p.lx.cur.kind != tokInt {
		return packval.Null, p.errf("expected struct signature at offset %d", p.lx.off)
	}
	sig, err := p.parseIntLit()
	if err != nil {
		return packval.Null, err
	}
	if sig < 0 || sig > 0xFF {
		return packval.Null, p.errf("struct signature out of range: %d", sig)
	}
	if err := p.expect(tokGt, ">"); err != nil {
		return packval.Null, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return packval.Null, err
	}
	return packval.Struct(byte(sig), args), nil
}

// composite parses name(arg, ...) with a fixed arity and hands the
// arguments to the matching constructor.
func (p *parser) composite(name string, arity int,
	build func([]packval.Value) (packval.Value, error)) (packval.Value, error) {

	p.lx.next() // consume keyword
	args, err := p.parseArgs()
	if err != nil {
		return packval.Null, err
	}
	if len(args) != arity {
		return packval.Null, p.errf("%s takes %d arguments, got %d", name, arity, len(args))
	}
	return build(args)
}

func (p *parser) parseArgs() ([]packval.Value, error) {
	if err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var args []packval.Value
	for p.lx.cur.kind != tokRParen {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		if p.lx.cur.kind == tokComma {
			p.lx.next()
			continue
		}
		break
	}
	if err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return args, nil
}
