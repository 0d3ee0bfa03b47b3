package doc

import (
	"io"
	"strings"
)

// ParseReader parses a document from an io.Reader.
func ParseReader(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(string(data))
}

// ParseString parses a template string into a document tree.
// The returned root node has kind [KindDocument].
func ParseString(s string) (*Node, error) {
	p := &parser{
		input: s,
		line:  1,
		col:   1,
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	return &Node{Kind: KindDocument, Children: children, Line: 1, Col: 1}, nil
}

// ParseFragment parses a replacement string into a fragment of sibling
// nodes suitable for splicing into an existing tree.
func ParseFragment(s string) (Fragment, error) {
	root, err := ParseString(s)
	if err != nil {
		return nil, err
	}

	return Fragment(root.Children), nil
}

// parser holds the scanning state.
type parser struct {
	input string
	pos   int
	line  int
	col   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

// peek returns the byte at offset from the current position,
// or 0 past the end of input.
func (p *parser) peek(offset int) byte {
	if p.pos+offset >= len(p.input) {
		return 0
	}

	return p.input[p.pos+offset]
}

// advance consumes n bytes, tracking line and column.
func (p *parser) advance(n int) {
	for i := 0; i < n && p.pos < len(p.input); i++ {
		if p.input[p.pos] == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}

		p.pos++
	}
}

// parseNodes scans the input into a flat list of sibling nodes.
func (p *parser) parseNodes() ([]*Node, error) {
	var (
		nodes []*Node
		text  strings.Builder

		textLine = p.line
		textCol  = p.col
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		nodes = append(nodes, &Node{
			Kind: KindText,
			Text: text.String(),
			Line: textLine,
			Col:  textCol,
		})
		text.Reset()
	}

	for !p.eof() {
		switch {
		case p.peek(0) == '\\' && p.peek(1) == '$':
			flush()

			nodes = append(nodes, &Node{
				Kind: KindEscape,
				Text: `\$`,
				Line: p.line,
				Col:  p.col,
			})
			p.advance(2)

		case p.peek(0) == '$' && p.peek(1) == '{':
			flush()

			node, err := p.parseDirective()
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, node)

		case p.peek(0) == '[' && p.peek(1) == '[':
			// An unterminated reference is literal text, so only commit to a
			// reference node when the closing brackets exist.
			if end := strings.Index(p.input[p.pos+2:], "]]"); end >= 0 {
				flush()
				nodes = append(nodes, p.parseReference(end))

				break
			}

			text.WriteByte(p.input[p.pos])
			p.advance(1)

		default:
			if text.Len() == 0 {
				textLine, textCol = p.line, p.col
			}

			text.WriteByte(p.input[p.pos])
			p.advance(1)
		}
	}

	flush()

	return nodes, nil
}

// parseDirective consumes "${ ... }" and returns a directive node holding
// the raw expression text in a single text child. Braces nest, and braces
// inside single- or double-quoted runs are ignored.
func (p *parser) parseDirective() (*Node, error) {
	line, col := p.line, p.col
	p.advance(2) // consume "${"

	exprLine, exprCol := p.line, p.col

	var (
		depth = 1
		quote byte
		start = p.pos
	)

	for !p.eof() {
		c := p.input[p.pos]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}

		case c == '"' || c == '\'':
			quote = c

		case c == '{':
			depth++

		case c == '}':
			depth--
			if depth == 0 {
				expr := p.input[start:p.pos]
				p.advance(1) // consume "}"

				return &Node{
					Kind: KindDirective,
					Line: line,
					Col:  col,
					Children: []*Node{{
						Kind: KindText,
						Text: expr,
						Line: exprLine,
						Col:  exprCol,
					}},
				}, nil
			}
		}

		p.advance(1)
	}

	return nil, newParseError(
		"unterminated expression directive", p.input, line, col,
	)
}

// parseReference consumes "[[ ... ]]" where end is the offset of "]]"
// relative to the first byte after the opening brackets.
func (p *parser) parseReference(end int) *Node {
	line, col := p.line, p.col
	p.advance(2) // consume "[["

	innerLine, innerCol := p.line, p.col
	inner := p.input[p.pos : p.pos+end]
	p.advance(end + 2) // consume inner text and "]]"

	return &Node{
		Kind: KindReference,
		Line: line,
		Col:  col,
		Children: []*Node{{
			Kind: KindText,
			Text: inner,
			Line: innerLine,
			Col:  innerCol,
		}},
	}
}
