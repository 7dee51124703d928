// Package syntax implements the lossless concrete syntax tree for the
// expression language's front end: a tokenizer, a trivia-aware Pratt
// event parser with in-place error recovery, a red-green tree builder,
// a typed AST facade over the tree, and a semantic-lite validation pass.
//
// The pipeline is: text -> tokens -> events (+ diagnostics) -> CST -> AST.
// Every stage is pure and single-threaded; the tree builder is the only
// stage that allocates long-lived structure.
package syntax
