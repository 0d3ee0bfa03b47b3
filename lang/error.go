package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// ParseError reports malformed expression syntax. The wrapped cause is the
// expression parser's own error, which carries its location and snippet.
type ParseError struct {
	Source string // The original expression input
	err    error
}

// NewParseError wraps an expression parser error.
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, err: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.err == nil {
		return "parse error"
	}

	return "parse error: " + e.err.Error()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *ParseError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 2)
	attrs = append(attrs, slog.String("source", e.Source))

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// RuntimeError reports an evaluation-time failure. It always carries the
// originating expression text and the failing cause. No stage-specific
// error type escapes the evaluation boundary: parse, scope, evaluation,
// conversion, and fragment re-parse failures all surface as RuntimeError.
type RuntimeError struct {
	Expr  string // The originating expression text
	cause error
	attrs []slog.Attr
}

// newRuntimeError wraps a failing cause with the originating expression.
func newRuntimeError(expr string, cause error) *RuntimeError {
	return &RuntimeError{Expr: expr, cause: cause}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	var sb strings.Builder

	sb.WriteString("Error evaluating ")
	sb.WriteString(strconv.Quote(e.Expr))
	sb.WriteString(": ")

	if e.cause != nil {
		sb.WriteString(e.cause.Error())
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As. Cancellation
// surfaces as a RuntimeError wrapping the context error, so callers can
// test errors.Is(err, context.Canceled).
func (e *RuntimeError) Unwrap() error { return e.cause }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *RuntimeError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("expr", e.Expr))

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// With adds attributes to the error for structured logging.
// This creates a new RuntimeError instance to maintain immutability.
func (e *RuntimeError) With(attrs ...slog.Attr) *RuntimeError {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &RuntimeError{
		Expr:  e.Expr,
		cause: e.cause,
		attrs: newAttrs,
	}
}
