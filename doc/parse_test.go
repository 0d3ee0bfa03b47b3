package doc

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	// Rendering an unmodified parse tree reproduces the input exactly.
	inputs := []string{
		"",
		"plain text",
		"multi\nline\ntext",
		"${1+1}",
		"a ${x} b ${y} c",
		`\$`,
		`literal \$ marker`,
		"[[reference]]",
		"[[${1+1}]]",
		"mixed ${a} and [[b]] and \\$ forms",
		"lone $ dollar",
		"lone [ bracket",
		"unclosed [[ reference",
		"${ nested { braces } }",
		`${"quoted } brace"}`,
	}

	for _, input := range inputs {
		root, err := ParseString(input)
		if err != nil {
			t.Fatalf("ParseString(%q) error = %v", input, err)
		}

		if got := Render(root); got != input {
			t.Errorf("Render(Parse(%q)) = %q", input, got)
		}
	}
}

func TestParseNodeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
	}{
		{
			name:  "text only",
			input: "hello",
			kinds: []Kind{KindText},
		},
		{
			name:  "directive between text",
			input: "a${x}b",
			kinds: []Kind{KindText, KindDirective, KindText},
		},
		{
			name:  "escape",
			input: `\$x`,
			kinds: []Kind{KindEscape, KindText},
		},
		{
			name:  "reference",
			input: "[[link]]",
			kinds: []Kind{KindReference},
		},
		{
			name:  "unclosed reference is text",
			input: "[[nope",
			kinds: []Kind{KindText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseString(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			if len(root.Children) != len(tt.kinds) {
				t.Fatalf("children = %d, want %d",
					len(root.Children), len(tt.kinds))
			}

			for i, kind := range tt.kinds {
				if root.Children[i].Kind != kind {
					t.Errorf("child %d kind = %v, want %v",
						i, root.Children[i].Kind, kind)
				}
			}
		})
	}
}

func TestParseDirectiveInnerText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "${1+1}", want: "1+1"},
		{name: "nested braces", input: "${ {a: 1} }", want: " {a: 1} "},
		{name: "quoted brace", input: `${"}"}`, want: `"}"`},
		{name: "single quoted brace", input: `${'}'}`, want: `'}'`},
		{name: "empty", input: "${}", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseString(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			if len(root.Children) != 1 ||
				root.Children[0].Kind != KindDirective {
				t.Fatalf("children = %+v, want one directive", root.Children)
			}

			if got := root.Children[0].InnerText(); got != tt.want {
				t.Errorf("InnerText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseUnterminatedDirective(t *testing.T) {
	_, err := ParseString("text ${1+1")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}

	if perr.Line != 1 || perr.Col != 6 {
		t.Errorf("location = %d:%d, want 1:6", perr.Line, perr.Col)
	}

	if !strings.Contains(err.Error(), "unterminated") {
		t.Errorf("error %q lacks a diagnostic", err)
	}
}

func TestParsePositions(t *testing.T) {
	root, err := ParseString("ab\ncd${x}")
	if err != nil {
		t.Fatal(err)
	}

	text, directive := root.Children[0], root.Children[1]

	if text.Line != 1 || text.Col != 1 {
		t.Errorf("text at %d:%d, want 1:1", text.Line, text.Col)
	}

	if directive.Line != 2 || directive.Col != 3 {
		t.Errorf("directive at %d:%d, want 2:3", directive.Line, directive.Col)
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader("a${x}b"))
	if err != nil {
		t.Fatal(err)
	}

	if got := Render(root); got != "a${x}b" {
		t.Errorf("Render = %q", got)
	}
}

func TestParseFragment(t *testing.T) {
	frag, err := ParseFragment("a${x}b")
	if err != nil {
		t.Fatal(err)
	}

	if len(frag) != 3 {
		t.Fatalf("fragment nodes = %d, want 3", len(frag))
	}

	if got := frag.Render(); got != "a${x}b" {
		t.Errorf("fragment Render = %q", got)
	}
}
