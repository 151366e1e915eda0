package parser

import (
	"strconv"
	"strings"
)

// isSpace reports whether c is grammar whitespace: space, tab, CR, or LF.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// whitespace consumes one or more whitespace bytes.
func (p *state) whitespace(pos int) (int, error) {
	next := p.skipSpace(pos)
	if next == pos {
		return pos, errAt(pos, "expected whitespace")
	}
	return next, nil
}

// skipSpace consumes zero or more whitespace bytes.
func (p *state) skipSpace(pos int) int {
	for pos < len(p.src) && isSpace(p.src[pos]) {
		pos++
	}
	return pos
}

// literal consumes an exact token.
func (p *state) literal(pos int, lit string) (int, error) {
	if !strings.HasPrefix(p.src[pos:], lit) {
		return pos, errAt(pos, "expected "+strconv.Quote(lit))
	}
	return pos + len(lit), nil
}

// parenthesized parses "(" ws? inner ws? ")". The inner rule runs one
// nesting level deeper.
func parenthesized[T any](p *state, pos, depth int, inner func(int, int) (T, int, error)) (T, int, error) {
	var zero T
	next, err := p.literal(pos, "(")
	if err != nil {
		return zero, pos, err
	}
	next = p.skipSpace(next)
	v, next, err := inner(next, depth+1)
	if err != nil {
		return zero, pos, err
	}
	next = p.skipSpace(next)
	next, err = p.literal(next, ")")
	if err != nil {
		return zero, pos, err
	}
	return v, next, nil
}
