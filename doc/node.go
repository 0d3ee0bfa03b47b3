package doc

import "strings"

// Kind indicates the type of a document node.
type Kind int

const (
	// KindDocument is the root node produced by parsing.
	KindDocument Kind = iota

	// KindText is a run of literal text.
	KindText

	// KindDirective is an expression directive: ${ expr }.
	KindDirective

	// KindEscape is the two-character escape of the directive marker: \$.
	KindEscape

	// KindReference is a link-like node: [[ ... ]].
	KindReference
)

// String returns a string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindText:
		return "Text"
	case KindDirective:
		return "Directive"
	case KindEscape:
		return "Escape"
	case KindReference:
		return "Reference"
	default:
		return "Unknown"
	}
}

// Node is a typed node in a parsed document tree.
type Node struct {
	Kind     Kind
	Text     string // literal text (KindText, KindEscape)
	Children []*Node

	// Line and Col locate the node's first byte in the source (1-based).
	Line, Col int
}

// InnerText returns the concatenated literal text of the node's subtree.
// For directives this is the raw expression text; for references it is the
// raw text between the brackets.
func (n *Node) InnerText() string {
	if n == nil {
		return ""
	}

	if n.Kind == KindText || n.Kind == KindEscape {
		return n.Text
	}

	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.InnerText())
	}

	return sb.String()
}

// Fragment is an ordered list of sibling nodes produced by parsing a
// replacement string. Splicing a fragment in place of a node preserves the
// order of the surrounding siblings.
type Fragment []*Node

// NewText creates a fragment holding a single literal text node.
func NewText(s string) Fragment {
	return Fragment{{Kind: KindText, Text: s}}
}
