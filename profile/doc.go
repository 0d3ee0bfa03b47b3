// Package profile provides optional runtime profiling for the weft
// application.
//
// It integrates [github.com/pkg/profile] behind conditional compilation:
// profiling must be enabled at build time with the "pprof" build tag. When
// built without the tag (the default), all operations are no-ops with zero
// runtime overhead.
//
// Use [Modes] to retrieve the list of supported profiling modes, and the
// --pprof-mode and --pprof-dir flags of the weft command to enable one.
// Profile files are written to the output directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof) for analysis with
// go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
