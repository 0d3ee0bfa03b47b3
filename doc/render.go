package doc

import "strings"

// Render writes the tree back to template text. Rendering an unmodified
// parse tree reproduces the original input exactly.
func Render(n *Node) string {
	var sb strings.Builder

	renderNode(&sb, n)

	return sb.String()
}

// Render writes the fragment's nodes to text in order.
func (f Fragment) Render() string {
	var sb strings.Builder

	for _, n := range f {
		renderNode(&sb, n)
	}

	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindText, KindEscape:
		sb.WriteString(n.Text)

	case KindDirective:
		sb.WriteString("${")

		for _, c := range n.Children {
			renderNode(sb, c)
		}

		sb.WriteString("}")

	case KindReference:
		sb.WriteString("[[")

		for _, c := range n.Children {
			renderNode(sb, c)
		}

		sb.WriteString("]]")

	case KindDocument:
		for _, c := range n.Children {
			renderNode(sb, c)
		}
	}
}
