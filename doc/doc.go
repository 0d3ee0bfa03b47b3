// Package doc implements the document grammar for weft templates.
//
// A template is parsed into a tree of typed nodes. Plain text is kept
// verbatim in [KindText] nodes. Three marked forms are recognized:
//
//   - Expression directives: ${ expr } — the raw expression text is held in
//     a single [KindText] child of the [KindDirective] node.
//   - Escapes: \$ — the literal form that defeats directive recognition for
//     the marker character.
//   - References: [[ ... ]] — link-like nodes whose raw inner text is held
//     in a [KindText] child and may itself contain a directive when
//     re-parsed standalone.
//
// Rendering an unmodified tree reproduces the input exactly. Substitution
// replaces a matched node (and its subtree) with a [Fragment] while
// preserving sibling order.
package doc
