// Package parser implements the cost model grammar.
//
// A document is a sequence of statements of the form
//
//	predicate => cost_expression;
//
// where the predicate embeds a GraphQL fragment (reduced to a single
// top-level selection item or a single directive) plus an optional
// "where" guard, and the cost expression is integer arithmetic over
// arbitrary-precision constants and $variables.
//
// The parser is a backtracking recursive descent over byte positions:
// every rule takes a position and returns the parsed node plus the next
// position, or a *ParseError at the offset where no alternative matched.
// Failed alternatives never commit input. Parenthesized leaves recurse,
// so the parser threads an explicit depth counter and fails closed past
// a configurable limit rather than exhausting the call stack on
// adversarial input.
//
// Parsing is pure: the same source text always yields a structurally
// identical tree, and the returned AST is never mutated afterwards.
package parser
