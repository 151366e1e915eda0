package parser

import (
	"errors"
	"strings"

	gqlast "github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"

	"github.com/graphcost/costlang/internal/ast"
)

// graphqlQuery parses the embedded GraphQL fragment at pos and projects
// it to a single structural fact.
//
// gqlparser consumes complete documents rather than prefixes, so the
// extent of the fragment is scanned first: the fragment runs until a
// top-level "where" keyword or "=>" arrow, tracking bracket depth,
// string literals, and # comments so those tokens are only recognized
// between GraphQL tokens. The fragment is then handed to gqlparser.
//
// Any gqlparser error, and any violation of the accepted subset
// (anonymous query operation, zero variable definitions, exactly one
// top-level selection item or exactly one directive), fails with a
// generic *ParseError for this alternative.
func (p *state) graphqlQuery(pos int) (ast.TopLevelQueryItem, int, error) {
	end, err := p.queryExtent(pos)
	if err != nil {
		return nil, pos, err
	}
	fragment := p.src[pos:end]
	if strings.TrimSpace(fragment) == "" {
		return nil, pos, errAt(pos, "expected GraphQL fragment")
	}

	doc, err := gqlparser.ParseQuery(&gqlast.Source{Name: "predicate", Input: fragment})
	if err != nil {
		return nil, pos, errAt(pos, "invalid GraphQL fragment")
	}

	item, err := projectQuery(doc)
	if err != nil {
		return nil, pos, errAt(pos, err.Error())
	}
	return item, end, nil
}

// projectQuery reduces a parsed GraphQL document to its single
// structural fact.
//
// An operation carrying more than one top-level selection item, or more
// than one directive, is rejected outright. The system this replaces
// silently kept only the last list entry; that behavior was documented
// as a bug, so the count is enforced here instead.
func projectQuery(doc *gqlast.QueryDocument) (ast.TopLevelQueryItem, error) {
	if len(doc.Operations) != 1 || len(doc.Fragments) != 0 {
		return nil, errors.New("predicate must contain exactly one query operation")
	}

	op := doc.Operations[0]
	if op.Operation != gqlast.Query {
		return nil, errors.New("only query operations are supported")
	}
	if op.Name != "" {
		return nil, errors.New("query operation must be anonymous")
	}
	if len(op.VariableDefinitions) != 0 {
		return nil, errors.New("query operation must not declare variables")
	}

	directives := op.Directives
	selections := op.SelectionSet
	switch {
	case len(directives) == 1 && len(selections) == 0:
		return &ast.Directive{Directive: directives[0]}, nil
	case len(selections) == 1 && len(directives) == 0:
		return &ast.Selection{Item: selections[0]}, nil
	default:
		return nil, errors.New("query must carry exactly one top-level selection item or exactly one directive")
	}
}

// queryExtent returns the end offset of the GraphQL fragment starting at
// start: the position of the first top-level "where" keyword or "=>"
// arrow, or the end of input. Brackets, strings (including block
// strings), and # comments are tracked so a "where" field inside a
// selection set never terminates the fragment.
//
// Bracket nesting is bounded by the parser's depth limit; gqlparser
// recurses per nesting level and never sees a fragment past the limit.
func (p *state) queryExtent(start int) (int, error) {
	depth := 0
	i := start
	n := len(p.src)
	for i < n {
		c := p.src[i]
		switch {
		case c == '#':
			for i < n && p.src[i] != '\n' {
				i++
			}
		case c == '"':
			i = skipGraphQLString(p.src, i)
		case c == '{' || c == '(' || c == '[':
			depth++
			if depth > p.maxDepth {
				return 0, errAt(i, "GraphQL fragment nesting exceeds depth limit")
			}
			i++
		case c == '}' || c == ')' || c == ']':
			// A stray closer at depth 0 stays in the fragment;
			// gqlparser reports it.
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && c == '=' && i+1 < n && p.src[i+1] == '>':
			return i, nil
		case depth == 0 && p.whereKeywordAt(start, i):
			return i, nil
		default:
			i++
		}
	}
	return n, nil
}

// whereKeywordAt reports whether a standalone "where" keyword starts at
// i. The keyword only terminates the fragment when it sits between
// tokens: preceded by whitespace or a closing bracket and not followed
// by an identifier byte.
func (p *state) whereKeywordAt(start, i int) bool {
	if !strings.HasPrefix(p.src[i:], "where") {
		return false
	}
	if i > start {
		prev := p.src[i-1]
		if !isSpace(prev) && prev != '}' && prev != ')' && prev != ']' {
			return false
		}
	}
	after := i + len("where")
	return after >= len(p.src) || !isIdent(p.src[after])
}

// skipGraphQLString advances past the string literal opening at i.
// Unterminated strings run to the line end (or end of input) and are
// left for gqlparser to report.
func skipGraphQLString(s string, i int) int {
	if strings.HasPrefix(s[i:], `"""`) {
		j := i + 3
		for j < len(s) {
			if s[j] == '\\' {
				j += 2
				continue
			}
			if strings.HasPrefix(s[j:], `"""`) {
				return j + 3
			}
			j++
		}
		return len(s)
	}

	j := i + 1
	for j < len(s) {
		switch s[j] {
		case '\\':
			j += 2
		case '"':
			return j + 1
		case '\n':
			return j
		default:
			j++
		}
	}
	return len(s)
}
