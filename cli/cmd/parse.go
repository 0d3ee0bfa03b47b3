package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/weft/doc"
)

// Parse prints the document tree of a template without evaluating any
// directives.
type Parse struct {
	Source string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"source"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := readSource(p.Source)
	if err != nil {
		return err
	}

	root, err := doc.ParseString(text)
	if err != nil {
		return err
	}

	printNode(os.Stdout, root, 0)

	return nil
}

// printNode writes one line per node, indented by tree depth.
func printNode(w io.Writer, n *doc.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.Kind == doc.KindText {
		fmt.Fprintf(w, "%s%s %d:%d %q\n", indent, n.Kind, n.Line, n.Col, n.Text)
	} else {
		fmt.Fprintf(w, "%s%s %d:%d\n", indent, n.Kind, n.Line, n.Col)
	}

	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}
