package parser

import "github.com/graphcost/costlang/internal/ast"

// arithPair is one "(operator, leaf)" step of a flat expression list,
// pending precedence regrouping.
type arithPair struct {
	op   ast.ArithOp
	expr ast.LinearExpression
}

// linearExpression parses one leaf followed by any number of
// "(operator, leaf)" pairs, then regroups the flat left-to-right list
// into a precedence-correct tree.
//
// Regrouping runs one pass per operator kind in the fixed order
// *, /, +, -. Each pass touches only operators of its own kind, so the
// higher-precedence passes complete before + and - see their results,
// yielding standard arithmetic precedence with left associativity
// within any run of a single operator: "a - b - c" is "(a - b) - c".
// Mixed runs of * and / do NOT fold left to right: the * pass rewrites
// a pending "/" pair's right operand before the / pass sees it, so
// "a / b * c" is "a / (b * c)" while "a * b / c" stays "(a * b) / c".
func (p *state) linearExpression(pos, depth int) (ast.LinearExpression, int, error) {
	first, next, err := p.linearLeaf(pos, depth)
	if err != nil {
		return nil, pos, err
	}

	var pairs []arithPair
	for {
		cur := p.skipSpace(next)
		op, cur, err := p.arithOp(cur)
		if err != nil {
			break
		}
		cur = p.skipSpace(cur)
		leaf, cur, err := p.linearLeaf(cur, depth)
		if err != nil {
			break
		}
		pairs = append(pairs, arithPair{op: op, expr: leaf})
		next = cur
	}

	for _, kind := range []ast.ArithOp{ast.OpMul, ast.OpDiv, ast.OpAdd, ast.OpSub} {
		first, pairs = regroup(first, pairs, kind)
	}
	if len(pairs) != 0 {
		// The four passes cover every operator the grammar admits.
		panic("parser: operator pairs left after regrouping")
	}
	return first, next, nil
}

// regroup folds every pair whose operator matches kind into the current
// retained expression - the most recently retained pair's right-hand
// operand if one exists, otherwise the leading leaf. Non-matching pairs
// carry forward to the next pass with their right-hand operands updated
// in place.
func regroup(first ast.LinearExpression, pairs []arithPair, kind ast.ArithOp) (ast.LinearExpression, []arithPair) {
	var remain []arithPair
	for _, pair := range pairs {
		if pair.op != kind {
			remain = append(remain, pair)
			continue
		}
		if len(remain) > 0 {
			last := &remain[len(remain)-1]
			last.expr = &ast.BinaryExpr{Lhs: last.expr, Op: pair.op, Rhs: pair.expr}
		} else {
			first = &ast.BinaryExpr{Lhs: first, Op: pair.op, Rhs: pair.expr}
		}
	}
	return first, remain
}

// linearLeaf parses a parenthesized sub-expression, an integer literal,
// or an integer-typed variable.
func (p *state) linearLeaf(pos, depth int) (ast.LinearExpression, int, error) {
	if depth >= p.maxDepth {
		return nil, pos, errAt(pos, "expression nesting exceeds depth limit")
	}
	if expr, next, err := parenthesized(p, pos, depth, p.linearExpression); err == nil {
		return expr, next, nil
	}
	if c, next, err := p.intConst(pos); err == nil {
		return c, next, nil
	}
	if name, next, err := p.variable(pos); err == nil {
		return &ast.IntVariable{Name: name}, next, nil
	}
	return nil, pos, errAt(pos, "expected expression")
}

func (p *state) arithOp(pos int) (ast.ArithOp, int, error) {
	if pos < len(p.src) {
		switch p.src[pos] {
		case '+':
			return ast.OpAdd, pos + 1, nil
		case '-':
			return ast.OpSub, pos + 1, nil
		case '*':
			return ast.OpMul, pos + 1, nil
		case '/':
			return ast.OpDiv, pos + 1, nil
		}
	}
	return "", pos, errAt(pos, "expected arithmetic operator")
}
