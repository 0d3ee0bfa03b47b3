package lang

import (
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// AST is a parsed expression. It is produced by [Parse] without evaluation
// or scope access, and may be evaluated later with [EvaluateValue].
type AST struct {
	// Source is the expression text the tree was parsed from.
	Source string

	tree *parser.Tree
}

// Parse parses an expression in the scripting grammar. It performs a pure
// parse: no evaluation, no scope access. Malformed input fails with a
// [*ParseError].
func Parse(text string) (*AST, error) {
	tree, err := parser.Parse(text)
	if err != nil {
		return nil, NewParseError(text, err)
	}

	return &AST{Source: text, tree: tree}, nil
}

// Node returns the root node of the parsed expression tree.
func (a *AST) Node() ast.Node {
	if a == nil || a.tree == nil {
		return nil
	}

	return a.tree.Node
}

// String returns the expression source text.
func (a *AST) String() string {
	if a == nil {
		return ""
	}

	return a.Source
}
