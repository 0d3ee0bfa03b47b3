// Package stdlib defines the fixed set of callable entry points exposed to
// scripts through the global environment.
//
// The table is installed under the reserved namespace [pkg.NamespaceIdentifier]
// and offers four entries: parseExpression (pure parse), evalExpression
// (evaluate a parsed expression under a fresh scope), interpolate (template
// substitution), and baseUrl (execution-context identity probe).
package stdlib
