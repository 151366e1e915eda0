package parser

import "github.com/graphcost/costlang/internal/ast"

// condition parses one condition leaf followed by any number of
// "(boolean operator, leaf)" pairs.
//
// Unlike arithmetic there is no precedence regrouping: pairs fold
// strictly left to right, so "||" and "&&" bind equally and
// "a || b && c" is "(a || b) && c". Existing cost models depend on this
// fold; do not reorder it to conventional precedence.
func (p *state) condition(pos, depth int) (ast.Condition, int, error) {
	first, next, err := p.conditionLeaf(pos, depth)
	if err != nil {
		return nil, pos, err
	}

	for {
		cur := p.skipSpace(next)
		op, cur, err := p.booleanOp(cur)
		if err != nil {
			break
		}
		cur = p.skipSpace(cur)
		leaf, cur, err := p.conditionLeaf(cur, depth)
		if err != nil {
			break
		}
		first = &ast.BooleanExpr{Lhs: first, Op: op, Rhs: leaf}
		next = cur
	}
	return first, next, nil
}

// conditionLeaf parses a parenthesized sub-condition, a comparison, a
// boolean-typed variable, or a boolean literal. Alternatives are tried
// in that order so "$a > 1" binds as a comparison before "$a" alone
// could match as a boolean variable.
func (p *state) conditionLeaf(pos, depth int) (ast.Condition, int, error) {
	if depth >= p.maxDepth {
		return nil, pos, errAt(pos, "condition nesting exceeds depth limit")
	}
	if cond, next, err := parenthesized(p, pos, depth, p.condition); err == nil {
		return cond, next, nil
	}
	if cmp, next, err := p.comparison(pos, depth); err == nil {
		return cmp, next, nil
	}
	if name, next, err := p.variable(pos); err == nil {
		return &ast.BoolVariable{Name: name}, next, nil
	}
	if b, next, err := p.boolConst(pos); err == nil {
		return b, next, nil
	}
	return nil, pos, errAt(pos, "expected condition")
}

// comparison parses "linear_expr cmp_op linear_expr" with optional
// whitespace around the operator.
func (p *state) comparison(pos, depth int) (*ast.Comparison, int, error) {
	lhs, next, err := p.linearExpression(pos, depth)
	if err != nil {
		return nil, pos, err
	}
	next = p.skipSpace(next)
	op, next, err := p.comparisonOp(next)
	if err != nil {
		return nil, pos, err
	}
	next = p.skipSpace(next)
	rhs, next, err := p.linearExpression(next, depth)
	if err != nil {
		return nil, pos, err
	}
	return &ast.Comparison{Lhs: lhs, Op: op, Rhs: rhs}, next, nil
}

// comparisonOp tries the two-character operators first so ">=" is never
// shadowed by ">".
func (p *state) comparisonOp(pos int) (ast.ComparisonOp, int, error) {
	for _, op := range []ast.ComparisonOp{ast.CmpEq, ast.CmpNe, ast.CmpGe, ast.CmpLe, ast.CmpGt, ast.CmpLt} {
		if next, err := p.literal(pos, string(op)); err == nil {
			return op, next, nil
		}
	}
	return "", pos, errAt(pos, "expected comparison operator")
}

func (p *state) booleanOp(pos int) (ast.BooleanOp, int, error) {
	for _, op := range []ast.BooleanOp{ast.BoolOr, ast.BoolAnd} {
		if next, err := p.literal(pos, string(op)); err == nil {
			return op, next, nil
		}
	}
	return "", pos, errAt(pos, "expected boolean operator")
}
