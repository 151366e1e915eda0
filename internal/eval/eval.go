package eval

import (
	"fmt"
	"math/big"

	"github.com/graphcost/costlang/internal/ast"
)

// LinearExpression evaluates an arithmetic tree to an integer.
//
// The returned big.Int is freshly allocated on every call; callers own
// it and may mutate it without touching the tree or the environment.
func LinearExpression(expr ast.LinearExpression, vars Vars) (*big.Int, error) {
	switch node := expr.(type) {
	case *ast.IntConst:
		return new(big.Int).Set(node.Value), nil

	case *ast.IntVariable:
		v, ok := vars[node.Name]
		if !ok {
			return nil, newUnknownVariable(node.Name)
		}
		n, ok := v.(Int)
		if !ok {
			return nil, newTypeMismatch(node.Name, "integer", kindOf(v))
		}
		return new(big.Int).Set(n.N), nil

	case *ast.BinaryExpr:
		lhs, err := LinearExpression(node.Lhs, vars)
		if err != nil {
			return nil, err
		}
		rhs, err := LinearExpression(node.Rhs, vars)
		if err != nil {
			return nil, err
		}
		switch node.Op {
		case ast.OpAdd:
			return lhs.Add(lhs, rhs), nil
		case ast.OpSub:
			return lhs.Sub(lhs, rhs), nil
		case ast.OpMul:
			return lhs.Mul(lhs, rhs), nil
		case ast.OpDiv:
			if rhs.Sign() == 0 {
				return nil, newDivisionByZero()
			}
			// Quo truncates toward zero, matching integer
			// division in the source system.
			return lhs.Quo(lhs, rhs), nil
		default:
			return nil, fmt.Errorf("unknown arithmetic operator %q", node.Op)
		}

	default:
		return nil, fmt.Errorf("unknown expression node %T", expr)
	}
}

// Condition evaluates a boolean guard tree.
//
// Both operands of "||" and "&&" are always evaluated; there is no
// short-circuiting, so whether a document evaluates cleanly does not
// depend on which side of an operator decides the result.
func Condition(cond ast.Condition, vars Vars) (bool, error) {
	switch node := cond.(type) {
	case *ast.BoolConst:
		return node.Value, nil

	case *ast.BoolVariable:
		v, ok := vars[node.Name]
		if !ok {
			return false, newUnknownVariable(node.Name)
		}
		b, ok := v.(Bool)
		if !ok {
			return false, newTypeMismatch(node.Name, "boolean", kindOf(v))
		}
		return bool(b), nil

	case *ast.Comparison:
		lhs, err := LinearExpression(node.Lhs, vars)
		if err != nil {
			return false, err
		}
		rhs, err := LinearExpression(node.Rhs, vars)
		if err != nil {
			return false, err
		}
		cmp := lhs.Cmp(rhs)
		switch node.Op {
		case ast.CmpEq:
			return cmp == 0, nil
		case ast.CmpNe:
			return cmp != 0, nil
		case ast.CmpGe:
			return cmp >= 0, nil
		case ast.CmpLe:
			return cmp <= 0, nil
		case ast.CmpGt:
			return cmp > 0, nil
		case ast.CmpLt:
			return cmp < 0, nil
		default:
			return false, fmt.Errorf("unknown comparison operator %q", node.Op)
		}

	case *ast.BooleanExpr:
		lhs, err := Condition(node.Lhs, vars)
		if err != nil {
			return false, err
		}
		rhs, err := Condition(node.Rhs, vars)
		if err != nil {
			return false, err
		}
		switch node.Op {
		case ast.BoolOr:
			return lhs || rhs, nil
		case ast.BoolAnd:
			return lhs && rhs, nil
		default:
			return false, fmt.Errorf("unknown boolean operator %q", node.Op)
		}

	default:
		return false, fmt.Errorf("unknown condition node %T", cond)
	}
}

// Statement evaluates one statement against an environment.
//
// The guard is evaluated first; when it holds (or the statement has
// none) the cost expression is evaluated and returned with matched
// true. A false guard returns (nil, false, nil) without touching the
// cost expression.
func Statement(stmt *ast.Statement, vars Vars) (cost *big.Int, matched bool, err error) {
	if where := stmt.Predicate.Where; where != nil {
		ok, err := Condition(where.Condition, vars)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
	}
	c, err := LinearExpression(stmt.Cost, vars)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
