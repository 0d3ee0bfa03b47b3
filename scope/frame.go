package scope

import (
	"github.com/ardnew/weft/pkg"
)

// Frame is the per-evaluation execution context. Each logical evaluation
// request owns exactly one frame; frames are never shared across unrelated
// calls. The frame carries the global environment handle explicitly so that
// a misconfigured caller fails with a [ConfigurationError] instead of
// silently falling back to ambient state.
type Frame struct {
	global *Environment
	origin string
	hasOrg bool
}

// FrameOption applies a configuration option to a Frame.
type FrameOption func(*Frame)

// WithOrigin sets the origin identifier of the executing context, reported
// by the baseUrl builtin. Headless executions leave it unset.
func WithOrigin(origin string) FrameOption {
	return func(f *Frame) {
		f.origin = origin
		f.hasOrg = true
	}
}

// NewFrame creates a frame bound to the given global environment.
func NewFrame(global *Environment, opts ...FrameOption) *Frame {
	f := &Frame{global: global}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Global returns the global environment handle, or nil when the frame was
// constructed without one.
func (f *Frame) Global() *Environment {
	if f == nil {
		return nil
	}

	return f.global
}

// Origin returns the origin identifier of the executing context.
// The second return is false for headless executions.
func (f *Frame) Origin() (string, bool) {
	if f == nil || !f.hasOrg {
		return "", false
	}

	return f.origin, true
}

// Fork creates a fresh frame derived from the receiver for a nested logical
// evaluation. The new frame shares the global handle and origin identity but
// nothing else.
func (f *Frame) Fork() *Frame {
	child := &Frame{}

	if f != nil {
		child.global = f.global
		child.origin = f.origin
		child.hasOrg = f.hasOrg
	}

	return child
}

// Validate reports a [ConfigurationError] when the frame carries no global
// environment handle. Every entry point checks this before proceeding.
func (f *Frame) Validate() error {
	if f == nil || f.global == nil {
		return ErrNoGlobalEnv
	}

	return nil
}

// NewScope builds a child scope of the frame's global environment for one
// evaluation. When an augmentation is given, the whole augmentation is bound
// under the reserved name [pkg.AugmentIdentifier] and each of its entries is
// projected as an individually addressable local binding.
func NewScope(frame *Frame, aug Augmentation) (*Environment, error) {
	err := frame.Validate()
	if err != nil {
		return nil, err
	}

	env := NewEnvironment(frame.global)

	if aug != nil {
		env.Define(pkg.AugmentIdentifier, aug.Map())

		for _, bind := range aug {
			env.Define(bind.Name, bind.Value)
		}
	}

	return env, nil
}
