package lang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HostValue converts an evaluated scripting value to its host
// representation. Numeric types are normalized to int64 or float64, and
// composite values are converted recursively. Values with no entry in the
// conversion table pass through unchanged.
func HostValue(v any) any {
	switch val := v.(type) {
	case nil, bool, string, int64, float64:
		return val

	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return int64(val)

	case float32:
		return float64(val)

	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = HostValue(elem)
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(val))
		for key, elem := range val {
			out[key] = HostValue(elem)
		}

		return out

	default:
		return val
	}
}

// FormatValue converts a host value to its display string. The result is
// what gets re-parsed as a document fragment and spliced into the rendered
// output: scalar strings appear verbatim, while strings nested inside
// composite values are quoted.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return formatNested(v)
}

// formatNested recursively formats a host value in expression syntax.
func formatNested(v any) string {
	switch val := v.(type) {
	case nil:
		return ""

	case bool:
		return strconv.FormatBool(val)

	case int64:
		return strconv.FormatInt(val, 10)

	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)

	case string:
		return strconv.Quote(val)

	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = formatNested(elem)
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case map[string]any:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + ": " + formatNested(val[key])
		}

		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return fmt.Sprintf("%v", val)
	}
}
