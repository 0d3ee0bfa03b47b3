// Package splice substitutes evaluated expression directives into parsed
// document templates.
//
// [Interpolate] parses a template, matches directive, escape, and reference
// nodes in a single depth-first pre-order pass, evaluates the matched
// expressions, and splices the resulting fragments back into the tree before
// rendering it to text. Spliced content is never re-scanned, so generated
// output cannot trigger further expansion.
//
// Independent matches may be evaluated concurrently (see [WithConcurrency]),
// but the rendered text is always reassembled in original document order.
package splice
