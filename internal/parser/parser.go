package parser

import "github.com/graphcost/costlang/internal/ast"

// DefaultMaxDepth bounds nesting of parenthesized expressions and
// conditions. Deeply nested input fails with a ParseError instead of
// exhausting the call stack.
const DefaultMaxDepth = 64

// Option configures a parse.
type Option func(*state)

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(p *state) {
		if n >= 1 {
			p.maxDepth = n
		}
	}
}

// state carries the source text and limits through a single parse.
// Positions are passed explicitly; state itself is never mutated after
// construction.
type state struct {
	src      string
	maxDepth int
}

func newState(src string, opts []Option) *state {
	p := &state{src: src, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDocument parses a complete cost model document.
//
// The entire input must be consumed: a trailing fragment no statement
// matches is a syntax error, reported at the position the last statement
// attempt failed. Trailing whitespace is fine. An empty (or
// whitespace-only) input yields a document with zero statements.
func ParseDocument(src string, opts ...Option) (*ast.Document, error) {
	p := newState(src, opts)
	doc, next, stopErr := p.document(0)
	if next = p.skipSpace(next); next != len(src) {
		return nil, stopErr
	}
	return doc, nil
}

// ParseLinearExpression parses a standalone cost expression, requiring
// full input consumption.
func ParseLinearExpression(src string, opts ...Option) (ast.LinearExpression, error) {
	p := newState(src, opts)
	expr, next, err := p.linearExpression(0, 0)
	if err != nil {
		return nil, err
	}
	if next != len(src) {
		return nil, errAt(next, "unparsed trailing input")
	}
	return expr, nil
}

// ParseWhereClause parses a standalone "where ..." guard, requiring full
// input consumption.
func ParseWhereClause(src string, opts ...Option) (*ast.WhereClause, error) {
	p := newState(src, opts)
	wc, next, err := p.whereClause(0)
	if err != nil {
		return nil, err
	}
	if next != len(src) {
		return nil, errAt(next, "unparsed trailing input")
	}
	return wc, nil
}

// document parses zero or more consecutive statements, stopping at the
// first position where no further statement matches. It returns the stop
// position and the error that ended the loop so ParseDocument can report
// it when input remains.
func (p *state) document(pos int) (*ast.Document, int, error) {
	doc := &ast.Document{}
	next := pos
	for {
		stmt, cur, err := p.statement(next)
		if err != nil {
			return doc, next, err
		}
		doc.Statements = append(doc.Statements, stmt)
		next = cur
	}
}

// statement parses `predicate "=>" ws linear_expr ";" ws?`.
func (p *state) statement(pos int) (*ast.Statement, int, error) {
	pred, next, err := p.predicate(pos)
	if err != nil {
		return nil, pos, err
	}
	next, err = p.literal(next, "=>")
	if err != nil {
		return nil, pos, err
	}
	next, err = p.whitespace(next)
	if err != nil {
		return nil, pos, err
	}
	cost, next, err := p.linearExpression(next, 0)
	if err != nil {
		return nil, pos, err
	}
	next, err = p.literal(next, ";")
	if err != nil {
		return nil, pos, err
	}
	next = p.skipSpace(next)
	return &ast.Statement{Predicate: pred, Cost: cost}, next, nil
}

// predicate parses the embedded GraphQL fragment plus an optional where
// clause. A where clause must be followed by whitespace; if it is not,
// the clause is dropped and the statement fails later at "=>", matching
// the backtracking semantics of the grammar.
func (p *state) predicate(pos int) (ast.Predicate, int, error) {
	next := p.skipSpace(pos)
	item, next, err := p.graphqlQuery(next)
	if err != nil {
		return ast.Predicate{}, pos, err
	}
	// The fragment scan is greedy and already took surrounding
	// whitespace; skipping again is harmless.
	next = p.skipSpace(next)

	pred := ast.Predicate{Query: item}
	if wc, cur, err := p.whereClause(next); err == nil {
		if cur, err := p.whitespace(cur); err == nil {
			pred.Where = wc
			next = cur
		}
	}
	next = p.skipSpace(next)
	return pred, next, nil
}

// whereClause parses `"where" ws condition`.
func (p *state) whereClause(pos int) (*ast.WhereClause, int, error) {
	next, err := p.literal(pos, "where")
	if err != nil {
		return nil, pos, err
	}
	next, err = p.whitespace(next)
	if err != nil {
		return nil, pos, err
	}
	cond, next, err := p.condition(next, 0)
	if err != nil {
		return nil, pos, err
	}
	return &ast.WhereClause{Condition: cond}, next, nil
}
