// Package ast defines the abstract syntax tree for cost model documents.
//
// This package contains type definitions only. Both parser and eval import
// ast; ast imports nothing internal. This keeps the AST the foundational
// layer with no circular dependencies.
//
// Key design constraints:
//   - Nodes are immutable after construction. The parser builds a tree and
//     hands it out; nothing mutates it afterwards, so one parsed Document
//     can be evaluated concurrently against independent environments.
//   - Integer constants are arbitrary-precision (math/big), never int64.
//   - Node variants are sealed interfaces with marker methods, enabling
//     exhaustive type switches in the evaluator.
package ast
