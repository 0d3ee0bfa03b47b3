//go:build pprof

package profile

// Option applies a single profiler setting.
type Option func(settings) settings

// newSettings builds profiler settings from the provided options.
func newSettings(opts ...Option) settings {
	var s settings

	for _, opt := range opts {
		s = opt(s)
	}

	return s
}
