package lang

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr/vm"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/weft/doc"
	"github.com/ardnew/weft/log"
	"github.com/ardnew/weft/scope"
)

// Evaluate parses exprText, evaluates it under a scope built from frame,
// converts the result to its display string, and re-parses that string as a
// document fragment. The result is never inserted as raw unescaped text.
//
// Any failure at any stage is re-raised as a [*RuntimeError] carrying the
// originating expression text, except a [*scope.ConfigurationError], which
// passes through untouched.
func Evaluate(
	ctx context.Context,
	frame *scope.Frame,
	exprText string,
	aug scope.Augmentation,
) (doc.Fragment, error) {
	value, err := evaluate(ctx, frame, exprText, aug)
	if err != nil {
		return nil, err
	}

	text := FormatValue(value)

	frag, err := doc.ParseFragment(text)
	if err != nil {
		return nil, newRuntimeError(exprText, err)
	}

	return frag, nil
}

// EvaluateValue evaluates an already-parsed expression under a freshly
// built scope derived from frame and returns the host value. Failures are
// normalized exactly as in [Evaluate].
func EvaluateValue(
	ctx context.Context,
	frame *scope.Frame,
	ast *AST,
	aug scope.Augmentation,
) (any, error) {
	if ast == nil {
		return nil, newRuntimeError("", errors.New("nil expression"))
	}

	return evaluate(ctx, frame, ast.Source, aug)
}

// evaluate runs the full bridge pipeline up to host-value conversion.
func evaluate(
	ctx context.Context,
	frame *scope.Frame,
	exprText string,
	aug scope.Augmentation,
) (any, error) {
	// Caller misuse is never converted to a runtime error.
	err := frame.Validate()
	if err != nil {
		return nil, err
	}

	prog, err := Compile(exprText)
	if err != nil {
		return nil, newRuntimeError(exprText, err)
	}

	env, err := scope.NewScope(frame, aug)
	if err != nil {
		var cfg *scope.ConfigurationError
		if errors.As(err, &cfg) {
			return nil, err
		}

		return nil, newRuntimeError(exprText, err)
	}

	flat := bindScope(ctx, frame, env.Flatten())

	if err := ctx.Err(); err != nil {
		return nil, newRuntimeError(exprText, err)
	}

	log.TraceContext(ctx, "evaluate expression",
		slog.String("expr", exprText),
		slog.Int("scope_names", len(flat)),
	)

	result, err := vm.Run(prog, flat)
	if err != nil {
		// A pending evaluation cancelled from outside surfaces as a
		// RuntimeError wrapping the context error.
		if cause := ctx.Err(); cause != nil {
			err = cause
		}

		return nil, newRuntimeError(exprText, err).With(suggest(err, flat)...)
	}

	// The expression engine yields exactly one value, so the multi-value
	// reduction required by the bridge contract is the identity here.
	return HostValue(result), nil
}

// bindScope prepares a flattened scope chain for the expression engine.
// Builtin entries are bound to the current context and frame so scripts
// invoke them with arguments only; nested namespace maps are copied so the
// shared global bindings are never mutated.
func bindScope(
	ctx context.Context,
	frame *scope.Frame,
	flat map[string]any,
) map[string]any {
	out := make(map[string]any, len(flat))

	for name, value := range flat {
		switch v := value.(type) {
		case scope.Builtin:
			out[name] = v.Bind(ctx, frame)

		case map[string]any:
			out[name] = bindScope(ctx, frame, v)

		default:
			out[name] = value
		}
	}

	return out
}

// suggest attaches nearest-name attributes when an evaluation failed on an
// unknown identifier.
func suggest(err error, env map[string]any) []slog.Attr {
	name, ok := unknownName(err)
	if !ok {
		return nil
	}

	candidates := make([]string, 0, len(env))
	for key := range env {
		candidates = append(candidates, key)
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return nil
	}

	return []slog.Attr{
		slog.String("unknown", name),
		slog.String("did_you_mean", matches[0].Str),
	}
}

// unknownName extracts the identifier from an unknown-name evaluation
// failure reported by the expression engine.
func unknownName(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	msg := err.Error()

	_, rest, found := strings.Cut(msg, "cannot fetch ")
	if !found {
		return "", false
	}

	name, _, found := strings.Cut(rest, " from ")
	if !found || name == "" {
		return "", false
	}

	return name, true
}
