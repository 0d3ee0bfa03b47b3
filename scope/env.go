package scope

import (
	"maps"
	"sync"
)

// Environment is a name-to-value mapping with optional parent fallback.
// All methods are safe for concurrent use; the global environment is shared
// by every evaluation in the process.
type Environment struct {
	mu     sync.RWMutex
	vars   map[string]any
	parent *Environment
}

// NewEnvironment creates an empty environment whose lookups fall back to
// parent. A nil parent creates a root environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]any),
		parent: parent,
	}
}

// Parent returns the fallback environment, or nil for a root environment.
func (e *Environment) Parent() *Environment { return e.parent }

// Lookup resolves name in the receiver, walking outward through parent
// environments until the name is found.
func (e *Environment) Lookup(name string) (any, bool) {
	for env := e; env != nil; env = env.parent {
		env.mu.RLock()
		value, ok := env.vars[name]
		env.mu.RUnlock()

		if ok {
			return value, true
		}
	}

	return nil, false
}

// Define binds name to value in the receiver, shadowing any binding of the
// same name in a parent environment.
func (e *Environment) Define(name string, value any) {
	e.mu.Lock()
	e.vars[name] = value
	e.mu.Unlock()
}

// Set assigns value to the nearest environment, from the receiver outward,
// that already defines name. When no environment defines it, the name is
// defined locally in the receiver.
func (e *Environment) Set(name string, value any) {
	for env := e; env != nil; env = env.parent {
		env.mu.Lock()
		_, ok := env.vars[name]
		if ok {
			env.vars[name] = value
			env.mu.Unlock()

			return
		}
		env.mu.Unlock()
	}

	e.Define(name, value)
}

// Flatten collects the full binding chain into a single map, with inner
// bindings shadowing outer ones. The returned map is owned by the caller.
func (e *Environment) Flatten() map[string]any {
	var flat map[string]any

	if e.parent != nil {
		flat = e.parent.Flatten()
	} else {
		flat = make(map[string]any)
	}

	e.mu.RLock()
	maps.Copy(flat, e.vars)
	e.mu.RUnlock()

	return flat
}

// Names returns the names bound directly in the receiver, excluding parents.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}

	return names
}
