package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - The top-level mapping becomes a flat configuration map
//   - Flag names with hyphens (e.g., "log-level") may use either hyphens
//     or underscores in the config file (e.g., "log_level")
//   - Numbers are converted to strings for Kong's flag parser
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	raw := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		// Parse error or empty file - return empty config
		return config{}, nil
	}

	result := make(config, len(raw))
	for key, value := range raw {
		result[key] = flagValue(value)
	}

	return result, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys
	// may use underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value to a representation Kong's flag
// parser accepts. Kong requires numbers as strings.
func flagValue(value any) any {
	switch num := value.(type) {
	case int64:
		return strconv.FormatInt(num, 10)
	case uint64:
		return strconv.FormatUint(num, 10)
	case float64:
		return strconv.FormatFloat(num, 'f', -1, 64)
	default:
		return value
	}
}
