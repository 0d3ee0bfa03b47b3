package stdlib

import (
	"errors"
	"testing"

	"github.com/ardnew/weft/lang"
	"github.com/ardnew/weft/pkg"
	"github.com/ardnew/weft/scope"
	"github.com/ardnew/weft/splice"
)

func TestNewGlobal(t *testing.T) {
	global := NewGlobal()

	table, ok := global.Lookup(pkg.NamespaceIdentifier)
	if !ok {
		t.Fatalf("namespace %q is undefined", pkg.NamespaceIdentifier)
	}

	entries, ok := table.(map[string]any)
	if !ok {
		t.Fatalf("namespace value type = %T, want map", table)
	}

	for _, name := range []string{
		"parseExpression", "evalExpression", "interpolate", "baseUrl",
	} {
		if _, ok := entries[name].(scope.Builtin); !ok {
			t.Errorf("table entry %q is not a Builtin", name)
		}
	}

	// Ambient bindings are carried alongside the table.
	if _, ok := global.Lookup("hostname"); !ok {
		t.Error("ambient binding hostname is undefined")
	}
}

func TestParseExpressionBuiltin(t *testing.T) {
	frame := scope.NewFrame(NewGlobal())

	value, err := parseExpression(t.Context(), frame, "1 + 1")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := value.(*lang.AST); !ok {
		t.Errorf("parseExpression returned %T, want *lang.AST", value)
	}

	_, err = parseExpression(t.Context(), frame, "1 +")

	var perr *lang.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("malformed input error type = %T, want *ParseError", err)
	}

	if _, err := parseExpression(t.Context(), frame); err == nil {
		t.Error("missing argument accepted")
	}
}

func TestEvalExpressionBuiltin(t *testing.T) {
	frame := scope.NewFrame(NewGlobal())
	aug := map[string]any{"x": 5}

	// Both the projected name and the reserved whole-augmentation name
	// resolve to the same binding.
	for _, src := range []string{"x", "_.x"} {
		ast, err := lang.Parse(src)
		if err != nil {
			t.Fatal(err)
		}

		value, err := evalExpression(t.Context(), frame, ast, aug)
		if err != nil {
			t.Fatalf("evalExpression(%q) error = %v", src, err)
		}

		if value != int64(5) {
			t.Errorf("evalExpression(%q) = %v (%T), want 5", src, value, value)
		}
	}

	// Raw expression text is accepted in place of an AST handle.
	value, err := evalExpression(t.Context(), frame, "2 * 3")
	if err != nil {
		t.Fatal(err)
	}

	if value != int64(6) {
		t.Errorf("evalExpression(text) = %v, want 6", value)
	}

	if _, err := evalExpression(t.Context(), frame, 42); err == nil {
		t.Error("non-expression argument accepted")
	}
}

func TestInterpolateBuiltin(t *testing.T) {
	frame := scope.NewFrame(NewGlobal())

	value, err := interpolate(
		t.Context(), frame, "${x+1}", map[string]any{"x": int64(1)},
	)
	if err != nil {
		t.Fatal(err)
	}

	if value != "2" {
		t.Errorf("interpolate = %v, want 2", value)
	}
}

func TestBaseURLBuiltin(t *testing.T) {
	global := NewGlobal()

	t.Run("headless returns nil", func(t *testing.T) {
		value, err := baseURL(t.Context(), scope.NewFrame(global))
		if err != nil {
			t.Fatal(err)
		}

		if value != nil {
			t.Errorf("baseUrl = %v, want nil", value)
		}
	})

	t.Run("addressable returns origin", func(t *testing.T) {
		frame := scope.NewFrame(global, scope.WithOrigin("wiki://local"))

		value, err := baseURL(t.Context(), frame)
		if err != nil {
			t.Fatal(err)
		}

		if value != "wiki://local" {
			t.Errorf("baseUrl = %v, want wiki://local", value)
		}
	})
}

func TestTableReachableFromScripts(t *testing.T) {
	frame := scope.NewFrame(NewGlobal())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "script calls evalExpression",
			input: `${weft.evalExpression("6 * 7")}`,
			want:  "42",
		},
		{
			name:  "script calls interpolate",
			input: `${weft.interpolate("1 + 1 = ${1+1}")}`,
			want:  "1 + 1 = 2",
		},
		{
			name:  "script probes baseUrl",
			input: `${weft.baseUrl() == nil}`,
			want:  "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splice.Interpolate(t.Context(), frame, tt.input, nil)
			if err != nil {
				t.Fatalf("Interpolate(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
