package stdlib

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/weft/lang"
	"github.com/ardnew/weft/pkg"
	"github.com/ardnew/weft/scope"
	"github.com/ardnew/weft/splice"
)

// Predefined errors (sentinel values).
var (
	ErrArgCount = NewError("wrong number of arguments")
	ErrArgType  = NewError("wrong argument type")
)

// NewGlobal creates a global environment carrying the ambient bindings and
// the standard library table. It is the usual entry point for hosts: create
// one global per process, then one [scope.Frame] per evaluation.
func NewGlobal() *scope.Environment {
	global := scope.NewGlobal()
	Install(global)

	return global
}

// Install binds the standard library table in env under the reserved
// namespace [pkg.NamespaceIdentifier].
func Install(env *scope.Environment) {
	env.Define(pkg.NamespaceIdentifier, Table())
}

// Table returns the standard library table. Every entry is a
// [scope.Builtin]: the evaluation bridge binds the calling context and
// frame before scripts can invoke it.
func Table() map[string]any {
	return map[string]any{
		"parseExpression": scope.Builtin(parseExpression),
		"evalExpression":  scope.Builtin(evalExpression),
		"interpolate":     scope.Builtin(interpolate),
		"baseUrl":         scope.Builtin(baseURL),
	}
}

// parseExpression performs a pure parse of an expression: no evaluation, no
// scope access. Malformed input fails with a [*lang.ParseError].
func parseExpression(
	_ context.Context,
	_ *scope.Frame,
	args ...any,
) (any, error) {
	text, err := stringArg("parseExpression", args, 0)
	if err != nil {
		return nil, err
	}

	return lang.Parse(text)
}

// evalExpression evaluates an already-parsed expression under a freshly
// built scope derived from the calling frame, returning the host value.
// It accepts either the AST handle produced by parseExpression or raw
// expression text, plus an optional augmentation map.
func evalExpression(
	ctx context.Context,
	frame *scope.Frame,
	args ...any,
) (any, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, ErrArgCount.With(
			slog.String("builtin", "evalExpression"),
			slog.Int("got", len(args)),
		)
	}

	var (
		ast *lang.AST
		err error
	)

	switch arg := args[0].(type) {
	case *lang.AST:
		ast = arg

	case string:
		ast, err = lang.Parse(arg)
		if err != nil {
			return nil, err
		}

	default:
		return nil, ErrArgType.With(
			slog.String("builtin", "evalExpression"),
			slog.String("want", "AST or string"),
			slog.String("got", fmt.Sprintf("%T", args[0])),
		)
	}

	aug, err := augmentArg("evalExpression", args, 1)
	if err != nil {
		return nil, err
	}

	return lang.EvaluateValue(ctx, frame.Fork(), ast, aug)
}

// interpolate substitutes directives in a template string, delegating to
// the document splicer. It accepts an optional augmentation map.
func interpolate(
	ctx context.Context,
	frame *scope.Frame,
	args ...any,
) (any, error) {
	text, err := stringArg("interpolate", args, 0)
	if err != nil {
		return nil, err
	}

	aug, err := augmentArg("interpolate", args, 1)
	if err != nil {
		return nil, err
	}

	return splice.Interpolate(ctx, frame.Fork(), text, aug)
}

// baseURL returns the origin identifier of the executing context, or nil
// when no addressable context exists (e.g. a headless execution). It has no
// failure mode and performs no mutation.
func baseURL(_ context.Context, frame *scope.Frame, _ ...any) (any, error) {
	origin, ok := frame.Origin()
	if !ok {
		return nil, nil
	}

	return origin, nil
}

// stringArg extracts a required string argument at position idx.
func stringArg(builtin string, args []any, idx int) (string, error) {
	if len(args) <= idx {
		return "", ErrArgCount.With(
			slog.String("builtin", builtin),
			slog.Int("want", idx+1),
			slog.Int("got", len(args)),
		)
	}

	text, ok := args[idx].(string)
	if !ok {
		return "", ErrArgType.With(
			slog.String("builtin", builtin),
			slog.String("want", "string"),
			slog.String("got", fmt.Sprintf("%T", args[idx])),
		)
	}

	return text, nil
}

// augmentArg extracts an optional augmentation map argument at position idx.
func augmentArg(builtin string, args []any, idx int) (scope.Augmentation, error) {
	if len(args) <= idx {
		return nil, nil
	}

	m, ok := args[idx].(map[string]any)
	if !ok {
		return nil, ErrArgType.With(
			slog.String("builtin", builtin),
			slog.String("want", "map"),
			slog.String("got", fmt.Sprintf("%T", args[idx])),
		)
	}

	return scope.AugmentationFromMap(m), nil
}
