package lang

import (
	"strconv"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/zeebo/xxh3"
)

// programCache stores compiled programs keyed by source hash. Identifier
// resolution is deferred to run time, so a compiled program is valid under
// any scope and the cache key depends on source text alone.
//
//nolint:gochecknoglobals
var programCache sync.Map

// program tracks one-time compilation state for a source text.
type program struct {
	once sync.Once
	prog *vm.Program
	err  error
}

// Compile compiles an expression for evaluation, caching the result by
// xxh3 hash of the source. Malformed input fails with a [*ParseError].
func Compile(source string) (*vm.Program, error) {
	sourceKey := strconv.FormatUint(xxh3.Hash([]byte(source)), 36)

	entry := new(program)
	value, _ := programCache.LoadOrStore(sourceKey, entry)

	state, ok := value.(*program)
	if !ok {
		// Unreachable unless the cache is corrupted; recompile uncached.
		state = entry
	}

	state.once.Do(func() {
		// No environment is bound at compile time: identifiers resolve at
		// run time against the scope chain, and unknown names fail there.
		prog, err := expr.Compile(source)
		if err != nil {
			state.err = NewParseError(source, err)

			return
		}

		state.prog = prog
	})

	return state.prog, state.err
}

// ClearCache removes all cached compiled programs.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	programCache = sync.Map{}
}
