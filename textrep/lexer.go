package textrep

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	// keywords
	tokNull
	tokTrue
	tokFalse
	tokID
	tokStruct
	tokNode
	tokRel
	tokUnbound
	tokPath
	// symbols
	tokColon  // :
	tokComma  // ,
	tokLBrace // {
	tokRBrace // }
	tokLBrack // [
	tokRBrack // ]
	tokLParen // (
	tokRParen // )
	tokLt     // <
	tokGt     // >
)

type token struct {
	kind    tokKind
	lit     string
	intBase int // 10 or 16 for tokInt
}

type lexer struct {
	src []byte
	off int
	cur token
	err error
}

func newLexer(src []byte) *lexer { return &lexer{src: src} }

func (lx *lexer) fail(format string, args ...any) {
	if lx.err == nil {
		lx.err = fmt.Errorf(format, args...)
	}
	lx.cur = token{kind: tokEOF}
	lx.off = len(lx.src)
}

func (lx *lexer) next() {
	lx.skipSpaceAndComments()
	if lx.off >= len(lx.src) {
		lx.cur = token{kind: tokEOF}
		return
	}
	b := lx.src[lx.off]
	// identifiers/keywords
	if isIdentStart(b) {
		start := lx.off
		lx.off++
		for lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
			lx.off++
		}
		s := string(lx.src[start:lx.off])
		switch s {
		case "null":
			lx.cur = token{kind: tokNull, lit: s}
		case "true":
			lx.cur = token{kind: tokTrue, lit: s}
		case "false":
			lx.cur = token{kind: tokFalse, lit: s}
		case "id":
			lx.cur = token{kind: tokID, lit: s}
		case "struct":
			lx.cur = token{kind: tokStruct, lit: s}
		case "node":
			lx.cur = token{kind: tokNode, lit: s}
		case "rel":
			lx.cur = token{kind: tokRel, lit: s}
		case "unbound":
			lx.cur = token{kind: tokUnbound, lit: s}
		case "path":
			lx.cur = token{kind: tokPath, lit: s}
		default:
			lx.cur = token{kind: tokIdent, lit: s}
		}
		return
	}
	// numbers
	if isDigit(b) || (b == '-' && lx.peekIsDigit()) {
		start := lx.off
		lx.off++
		// hex prefix
		if lx.off < len(lx.src) && lx.src[start] == '0' &&
			(lx.src[lx.off] == 'x' || lx.src[lx.off] == 'X') {
			lx.off++
			for lx.off < len(lx.src) && (isHexDigit(lx.src[lx.off]) || lx.src[lx.off] == '_') {
				lx.off++
			}
			lx.cur = token{kind: tokInt, lit: string(lx.src[start:lx.off]), intBase: 16}
			return
		}
		// float or dec int
		isFloat := false
		for lx.off < len(lx.src) && (isDigit(lx.src[lx.off]) || lx.src[lx.off] == '_') {
			lx.off++
		}
		if lx.off < len(lx.src) && lx.src[lx.off] == '.' {
			isFloat = true
			lx.off++
			for lx.off < len(lx.src) && (isDigit(lx.src[lx.off]) || lx.src[lx.off] == '_') {
				lx.off++
			}
			if lx.off < len(lx.src) && (lx.src[lx.off] == 'e' || lx.src[lx.off] == 'E') {
				lx.off++
				if lx.off < len(lx.src) && (lx.src[lx.off] == '+' || lx.src[lx.off] == '-') {
					lx.off++
				}
				for lx.off < len(lx.src) && isDigit(lx.src[lx.off]) {
					lx.off++
				}
			}
		}
		lit := string(lx.src[start:lx.off])
		if isFloat {
			lx.cur = token{kind: tokFloat, lit: lit}
		} else {
			lx.cur = token{kind: tokInt, lit: lit, intBase: 10}
		}
		return
	}
	// strings
	if b == '"' {
		s, n, err := scanString(lx.src[lx.off:])
		if err != nil {
			lx.fail("string at offset %d: %v", lx.off, err)
			return
		}
		lx.cur = token{kind: tokString, lit: s}
		lx.off += n
		return
	}
	// single-char tokens
	switch b {
	case ':':
		lx.cur = token{kind: tokColon, lit: ":"}
	case ',':
		lx.cur = token{kind: tokComma, lit: ","}
	case '{':
		lx.cur = token{kind: tokLBrace, lit: "{"}
	case '}':
		lx.cur = token{kind: tokRBrace, lit: "}"}
	case '[':
		lx.cur = token{kind: tokLBrack, lit: "["}
	case ']':
		lx.cur = token{kind: tokRBrack, lit: "]"}
	case '(':
		lx.cur = token{kind: tokLParen, lit: "("}
	case ')':
		lx.cur = token{kind: tokRParen, lit: ")"}
	case '<':
		lx.cur = token{kind: tokLt, lit: "<"}
	case '>':
		lx.cur = token{kind: tokGt, lit: ">"}
	default:
		lx.fail("unexpected char %q at offset %d", b, lx.off)
		return
	}
	lx.off++
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.off < len(lx.src) {
		b := lx.src[lx.off]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.off++
			continue
		}
		// line comments: # or //
		if b == '#' || (b == '/' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '/') {
			for lx.off < len(lx.src) && lx.src[lx.off] != '\n' {
				lx.off++
			}
			continue
		}
		// block comments: /* ... */
		if b == '/' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '*' {
			lx.off += 2
			for lx.off+1 < len(lx.src) && !(lx.src[lx.off] == '*' && lx.src[lx.off+1] == '/') {
				lx.off++
			}
			if lx.off+1 < len(lx.src) {
				lx.off += 2
			}
			continue
		}
		break
	}
}

func isIdentStart(b byte) bool { return b == '_' || b == '$' || unicode.IsLetter(rune(b)) }
func isIdentPart(b byte) bool  { return isIdentStart(b) || unicode.IsDigit(rune(b)) }
func isDigit(b byte) bool      { return '0' <= b && b <= '9' }
func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func (lx *lexer) peekIsDigit() bool {
	if lx.off+1 >= len(lx.src) {
		return false
	}
	return isDigit(lx.src[lx.off+1])
}

func scanString(src []byte) (string, int, error) {
	// src begins with '"'
	i := 1
	for i < len(src) {
		c := src[i]
		if c == '"' {
			i++
			unq, err := strconv.Unquote(string(src[:i]))
			return unq, i, err
		}
		if c == '\\' {
			i++
			if i >= len(src) {
				return "", 0, fmt.Errorf("unterminated escape")
			}
			i++
			continue
		}
		if c < utf8.RuneSelf {
			i++
		} else {
			_, size := utf8.DecodeRune(src[i:])
			if size <= 0 {
				return "", 0, fmt.Errorf("invalid utf-8")
			}
			i += size
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}

func stripUnderscores(s string) string { return strings.ReplaceAll(s, "_", "") }
