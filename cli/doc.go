// Package cli implements the weft command-line interface.
//
// The interface is declared as a [CLI] struct parsed with
// [github.com/alecthomas/kong]. Flag defaults may be overridden by a YAML
// configuration file in the user's config directory; command-line flags
// override configuration file values.
package cli
