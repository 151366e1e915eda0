package parser

import (
	"math/big"

	"github.com/graphcost/costlang/internal/ast"
)

// intConst parses an optionally negative run of digits into an
// arbitrary-precision integer.
func (p *state) intConst(pos int) (*ast.IntConst, int, error) {
	next := pos
	if next < len(p.src) && p.src[next] == '-' {
		next++
	}
	start := next
	for next < len(p.src) && p.src[next] >= '0' && p.src[next] <= '9' {
		next++
	}
	if next == start {
		return nil, pos, errAt(pos, "expected integer")
	}
	n, ok := new(big.Int).SetString(p.src[pos:next], 10)
	if !ok {
		// Unreachable: the slice is a sign plus digits.
		return nil, pos, errAt(pos, "invalid integer")
	}
	return &ast.IntConst{Value: n}, next, nil
}

// boolConst parses "true" or "false".
func (p *state) boolConst(pos int) (*ast.BoolConst, int, error) {
	if next, err := p.literal(pos, "true"); err == nil {
		return &ast.BoolConst{Value: true}, next, nil
	}
	if next, err := p.literal(pos, "false"); err == nil {
		return &ast.BoolConst{Value: false}, next, nil
	}
	return nil, pos, errAt(pos, "expected boolean literal")
}

// variable parses a "$name" reference and returns the name without the
// leading "$". Names start with a letter or underscore.
func (p *state) variable(pos int) (string, int, error) {
	next, err := p.literal(pos, "$")
	if err != nil {
		return "", pos, err
	}
	if next >= len(p.src) || !isIdentStart(p.src[next]) {
		return "", pos, errAt(pos, "expected variable name after \"$\"")
	}
	start := next
	for next < len(p.src) && isIdent(p.src[next]) {
		next++
	}
	return p.src[start:next], next, nil
}
