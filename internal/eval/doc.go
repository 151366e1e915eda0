// Package eval resolves variables against a caller-supplied environment
// and folds a parsed AST into a concrete value.
//
// Evaluation is a pure function over immutable inputs: the same tree and
// environment always produce the same result, and nothing is mutated, so
// one parsed document can be evaluated concurrently against independent
// environments.
//
// Policies fixed by this package (the grammar leaves them open):
//   - Integer division truncates toward zero; division by zero is an
//     *EvalError, never a panic.
//   - Boolean operators do not short-circuit. Both operands are always
//     evaluated, so an unknown variable or type mismatch on the right of
//     "||" surfaces even when the left side already decides the result.
package eval
