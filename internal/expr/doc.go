// Package expr implements the restricted formula mini-language shared by
// the evaluator and the symbolic renderer: a lexer and recursive descent
// parser producing one expression tree, a tree-walking evaluator over a
// name→Quantity context, and free-variable extraction for the vectorized
// compiler. The language has no assignment, no control flow and no
// attribute access; calls are limited to a fixed allow-list of functions.
package expr
