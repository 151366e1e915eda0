package ast

import (
	"math/big"

	gqlast "github.com/vektah/gqlparser/v2/ast"
)

// Document is an ordered sequence of statements parsed from one input.
//
// Order is significant: downstream matching applies statements first-match
// wins, which is a policy of the consumer, not enforced here.
type Document struct {
	Statements []*Statement
}

// Statement associates a matching predicate with a cost expression.
// One statement per textual clause terminated by ";".
type Statement struct {
	Predicate Predicate
	Cost      LinearExpression
}

// Predicate is the matching condition of a statement: a single structural
// fact about the embedded GraphQL fragment plus an optional boolean guard.
type Predicate struct {
	Query TopLevelQueryItem
	Where *WhereClause // nil when the statement has no guard
}

// WhereClause is the optional boolean guard of a predicate.
type WhereClause struct {
	Condition Condition
}

// TopLevelQueryItem is the single structural fact extracted from an
// embedded GraphQL fragment: either one top-level selection item or one
// directive, never both.
//
// This is a sealed interface - only Selection and Directive implement it.
type TopLevelQueryItem interface {
	topLevelQueryItem() // Marker method - seals interface to this package
}

// Selection is a top-level selection item (field, fragment spread, or
// inline fragment) from the embedded query's selection set.
type Selection struct {
	Item gqlast.Selection
}

func (*Selection) topLevelQueryItem() {}

// Directive is a top-level directive attached to the embedded query
// operation.
type Directive struct {
	Directive *gqlast.Directive
}

func (*Directive) topLevelQueryItem() {}

// LinearExpression is an arithmetic AST over integers, variables, and the
// four basic operators. "Linear" names the grammar's shape; the evaluator
// does not enforce a mathematical restriction.
//
// This is a sealed interface - only IntConst, IntVariable, and BinaryExpr
// implement it.
type LinearExpression interface {
	linearExpression() // Marker method - seals interface to this package
}

// IntConst is an arbitrary-precision integer literal.
//
// Value is never mutated after parsing. The evaluator hands out copies,
// never the node's own big.Int.
type IntConst struct {
	Value *big.Int
}

func (*IntConst) linearExpression() {}

// IntVariable is an integer-typed variable reference, written "$name".
// It carries a name and an expected kind, not a value; resolution happens
// at evaluation time against the caller's environment.
type IntVariable struct {
	Name string
}

func (*IntVariable) linearExpression() {}

// BinaryExpr applies an arithmetic operator to two sub-expressions.
type BinaryExpr struct {
	Lhs LinearExpression
	Op  ArithOp
	Rhs LinearExpression
}

func (*BinaryExpr) linearExpression() {}

// Condition is the boolean guard AST.
//
// This is a sealed interface - only Comparison, BoolVariable, BoolConst,
// and BooleanExpr implement it.
type Condition interface {
	condition() // Marker method - seals interface to this package
}

// Comparison compares two linear expressions.
type Comparison struct {
	Lhs LinearExpression
	Op  ComparisonOp
	Rhs LinearExpression
}

func (*Comparison) condition() {}

// BoolVariable is a boolean-typed variable reference, written "$name".
type BoolVariable struct {
	Name string
}

func (*BoolVariable) condition() {}

// BoolConst is a boolean literal, "true" or "false".
type BoolConst struct {
	Value bool
}

func (*BoolConst) condition() {}

// BooleanExpr joins two conditions with "||" or "&&".
//
// The grammar folds boolean operators strictly left to right: "||" and
// "&&" have equal precedence, so "a || b && c" is "(a || b) && c". This
// deviates from common language convention and is preserved deliberately;
// existing cost models depend on it.
type BooleanExpr struct {
	Lhs Condition
	Op  BooleanOp
	Rhs Condition
}

func (*BooleanExpr) condition() {}
