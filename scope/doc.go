// Package scope implements lexical environments for expression evaluation.
//
// An [Environment] is a name-to-value mapping with an optional parent for
// fallback lookup. The process-wide global environment is created once by
// the caller and shared read-mostly by all evaluations; every evaluation
// builds its own child scope with [NewScope].
//
// A [Frame] is the per-evaluation execution context. It carries the global
// environment handle explicitly: there is no ambient or thread-local lookup,
// and a frame without a global handle is rejected with a
// [ConfigurationError] before any evaluation proceeds.
package scope
