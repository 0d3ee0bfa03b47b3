package lang

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/weft/scope"
)

func testFrame() *scope.Frame {
	return scope.NewFrame(scope.NewEnvironment(nil))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "integer arithmetic", input: "1 + 1", wantErr: false},
		{name: "string concat", input: `"a" + "b"`, wantErr: false},
		{name: "member access", input: "_.x", wantErr: false},
		{name: "dangling operator", input: "1+", wantErr: true},
		{name: "unbalanced paren", input: "(1 + 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, err := Parse(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v",
					tt.input, err, tt.wantErr)
			}

			if tt.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("Parse(%q) error type = %T, want *ParseError",
						tt.input, err)
				}

				return
			}

			if ast.Source != tt.input {
				t.Errorf("ast.Source = %q, want %q", ast.Source, tt.input)
			}

			if ast.Node() == nil {
				t.Error("ast.Node() = nil for valid input")
			}
		})
	}
}

func TestCompileCache(t *testing.T) {
	ClearCache()

	first, err := Compile("40 + 2")
	if err != nil {
		t.Fatal(err)
	}

	second, err := Compile("40 + 2")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("identical sources compiled to distinct programs")
	}

	if _, err := Compile("40 +"); err == nil {
		t.Error("Compile accepted malformed input")
	}
}

func TestEvaluateFragment(t *testing.T) {
	tests := []struct {
		name string
		expr string
		aug  scope.Augmentation
		want string
	}{
		{name: "scalar arithmetic", expr: "1+1", want: "2"},
		{name: "string verbatim", expr: `"a" + "b"`, want: "ab"},
		{name: "boolean", expr: "1 < 2", want: "true"},
		{name: "float", expr: "1.5 * 2.0", want: "3"},
		{name: "nil result", expr: "nil", want: ""},
		{name: "list display", expr: "[1, 2, 3]", want: "[1, 2, 3]"},
		{
			name: "augmented name",
			expr: "x * 2",
			aug:  scope.NewAugmentation(scope.Binding{Name: "x", Value: 5}),
			want: "10",
		},
		{
			name: "reserved augmentation name",
			expr: "_.x * 2",
			aug:  scope.NewAugmentation(scope.Binding{Name: "x", Value: 5}),
			want: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, err := Evaluate(t.Context(), testFrame(), tt.expr, tt.aug)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}

			if got := frag.Render(); got != tt.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateValueDualAccess(t *testing.T) {
	aug := scope.NewAugmentation(scope.Binding{Name: "x", Value: 5})

	for _, expr := range []string{"x", "_.x"} {
		ast, err := Parse(expr)
		if err != nil {
			t.Fatal(err)
		}

		value, err := EvaluateValue(t.Context(), testFrame(), ast, aug)
		if err != nil {
			t.Fatalf("EvaluateValue(%q) error = %v", expr, err)
		}

		if value != int64(5) {
			t.Errorf("EvaluateValue(%q) = %v (%T), want 5", expr, value, value)
		}
	}
}

func TestEvaluateErrorContract(t *testing.T) {
	t.Run("malformed expression", func(t *testing.T) {
		_, err := Evaluate(t.Context(), testFrame(), "1+", nil)

		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Fatalf("error type = %T, want *RuntimeError", err)
		}

		if !strings.Contains(err.Error(), "1+") {
			t.Errorf("error %q does not carry the expression text", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		global := scope.NewEnvironment(nil)
		global.Define("hostname", "h")

		frame := scope.NewFrame(global)

		_, err := Evaluate(t.Context(), frame, "hostnme", nil)

		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Fatalf("error type = %T, want *RuntimeError", err)
		}
	})

	t.Run("missing global environment", func(t *testing.T) {
		_, err := Evaluate(t.Context(), scope.NewFrame(nil), "1+1", nil)

		var cfg *scope.ConfigurationError
		if !errors.As(err, &cfg) {
			t.Fatalf("error type = %T, want *ConfigurationError", err)
		}

		var rerr *RuntimeError
		if errors.As(err, &rerr) {
			t.Error("configuration error was converted to RuntimeError")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := Evaluate(ctx, testFrame(), "1+1", nil)

		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			t.Fatalf("error type = %T, want *RuntimeError", err)
		}

		if !errors.Is(err, context.Canceled) {
			t.Error("cancellation cause is not context.Canceled")
		}
	})
}

func TestEvaluateBuiltinBinding(t *testing.T) {
	global := scope.NewEnvironment(nil)
	global.Define("probe", scope.Builtin(
		func(_ context.Context, frame *scope.Frame, _ ...any) (any, error) {
			origin, _ := frame.Origin()

			return origin, nil
		},
	))

	frame := scope.NewFrame(global, scope.WithOrigin("wiki://local"))

	frag, err := Evaluate(t.Context(), frame, "probe()", nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := frag.Render(); got != "wiki://local" {
		t.Errorf("probe() = %q, want wiki://local", got)
	}
}

func TestUnknownName(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		want  string
		found bool
	}{
		{
			name:  "fetch failure",
			err:   errors.New("cannot fetch foo from map[string]interface {}"),
			want:  "foo",
			found: true,
		},
		{
			name:  "unrelated failure",
			err:   errors.New("integer divide by zero"),
			found: false,
		},
		{name: "nil error", err: nil, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unknownName(tt.err)
			if ok != tt.found || got != tt.want {
				t.Errorf("unknownName() = %q, %v, want %q, %v",
					got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "scalar string verbatim", value: "a b", want: "a b"},
		{name: "int64", value: int64(42), want: "42"},
		{name: "float trims zeros", value: float64(3), want: "3"},
		{name: "bool", value: true, want: "true"},
		{
			name:  "nested strings quoted",
			value: []any{"a", int64(1)},
			want:  `["a", 1]`,
		},
		{
			name:  "map sorted keys",
			value: map[string]any{"b": int64(2), "a": int64(1)},
			want:  "{a: 1, b: 2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestHostValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "int widens", value: int(7), want: int64(7)},
		{name: "uint widens", value: uint32(7), want: int64(7)},
		{name: "float32 widens", value: float32(0.5), want: float64(0.5)},
		{name: "string passes", value: "s", want: "s"},
		{name: "nil passes", value: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HostValue(tt.value); got != tt.want {
				t.Errorf("HostValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
