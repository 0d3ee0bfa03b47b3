package scope

import "log/slog"

// ErrNoGlobalEnv is returned when a frame carries no global environment
// handle. This is a caller-misuse condition, not a recoverable runtime
// state: it must never be swallowed or converted to a runtime error.
//
//nolint:gochecknoglobals
var ErrNoGlobalEnv = &ConfigurationError{
	msg: "frame has no global environment",
}

// ConfigurationError reports caller misuse of the evaluation entry points.
type ConfigurationError struct {
	msg string
}

// NewConfigurationError creates a ConfigurationError with a message.
func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{msg: msg}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string { return e.msg }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *ConfigurationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.msg),
		slog.String("kind", "configuration"),
	)
}
