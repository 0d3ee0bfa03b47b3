// Package lang bridges the expression language into document templates.
//
// Expressions are written in the expr language (github.com/expr-lang/expr).
// [Parse] validates expression syntax without evaluating; [Evaluate] runs an
// expression under a scope built from a [scope.Frame], converts the result
// to its host representation, and re-parses the display string as a document
// fragment for splicing.
//
// Every failure crossing the evaluation boundary is normalized to a
// [RuntimeError] carrying the originating expression text. The only
// exception is [scope.ConfigurationError], which reports caller misuse and
// passes through untouched.
package lang
