//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the list of supported profiling modes when built with the
// pprof build tag. The special mode "quiet" is omitted from the list.
var Modes = sync.OnceValue(
	func() []string {
		m := maps.Clone(mode)
		delete(m, "quiet")

		return slices.Sorted(maps.Keys(m))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
	"quiet":     profile.Quiet,
}

// settings collects the profile options passed to profile.Start.
type settings struct {
	opts []func(*profile.Profile)
}

func start(name, path string, quiet bool) interface{ Stop() } {
	// Unrecognized mode names start nothing.
	if _, ok := mode[name]; !ok {
		return ignore{}
	}

	s := newSettings(withMode(name), withPath(path), withQuiet(quiet))

	return profile.Start(s.opts...)
}

func withMode(name string) Option {
	return func(s settings) settings {
		if fn, ok := mode[name]; ok {
			s.opts = append(s.opts, fn)
		}

		return s
	}
}

func withPath(path string) Option {
	return func(s settings) settings {
		if path != "" {
			s.opts = append(s.opts, profile.ProfilePath(path))
		}

		return s
	}
}

func withQuiet(quiet bool) Option {
	return func(s settings) settings {
		if quiet {
			s.opts = append(s.opts, profile.Quiet)
		}

		return s
	}
}
