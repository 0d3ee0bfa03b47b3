//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the weft module embedded at build time.
// It is printed by the CLI when users invoke the version subcommand.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "weft"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Embedded document templating engine"
)

// NamespaceIdentifier is the reserved name under which the standard library
// table is reachable in the global environment.
const NamespaceIdentifier = Name

// AugmentIdentifier is the reserved name under which a caller-supplied
// augmentation is reachable, as a whole, in an evaluation scope.
const AugmentIdentifier = "_"
