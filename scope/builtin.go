package scope

import "context"

// Builtin is a callable entry exposed to scripts through the global
// environment. The evaluation bridge binds the current context and frame
// before handing the callable to the expression engine, so scripts invoke
// it with arguments only.
type Builtin func(ctx context.Context, frame *Frame, args ...any) (any, error)

// Bind closes over ctx and frame, producing the argument-only form invoked
// by the expression engine.
func (b Builtin) Bind(ctx context.Context, frame *Frame) func(...any) (any, error) {
	return func(args ...any) (any, error) {
		return b(ctx, frame, args...)
	}
}
