// Package log provides structured logging for the weft module.
//
// It wraps [log/slog] with a Trace level below Debug, selectable json/text
// output formats, optional colorized pretty printing, and a package-level
// default logger configured through functional options.
//
// The zero value of [Logger] is valid and discards all messages, so library
// packages can accept a Logger without requiring callers to configure one.
package log
