// Package meta extracts document metadata from template sources.
//
// Two forms are recognized: a YAML front matter block delimited by "---"
// lines at the top of the source, and "key:: value" attribute lines found
// in the text of the parsed document tree. Values are decoded with the YAML
// grammar, so quoted strings, numbers, booleans, and inline collections all
// parse to native values.
//
// Extraction is best-effort: malformed entries are logged and skipped, and
// never fail the call. This is deliberately simpler than template
// substitution: one collection pass, no evaluation, no scoping.
package meta

import (
	"context"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/weft/doc"
	"github.com/ardnew/weft/log"
)

// frontMatterDelim delimits a YAML front matter block.
const frontMatterDelim = "---"

// attrSeparator separates the key and value of an attribute line.
const attrSeparator = "::"

// Fields is the collected metadata of one document.
type Fields map[string]any

// ExtractString collects metadata from a template source. Front matter
// fields are merged first, then attribute lines in document order; a later
// field wins on duplicate keys.
func ExtractString(ctx context.Context, source string) Fields {
	fields := make(Fields)

	body := extractFrontMatter(ctx, source, fields)

	root, err := doc.ParseString(body)
	if err != nil {
		// Best-effort: an unparsable body still yields front matter fields.
		log.WarnContext(ctx, "metadata body does not parse",
			slog.Any("error", err),
		)

		return fields
	}

	collectAttributes(ctx, root, fields)

	return fields
}

// extractFrontMatter decodes a leading YAML front matter block into fields
// and returns the remaining body. Sources without front matter are returned
// unchanged.
func extractFrontMatter(
	ctx context.Context,
	source string,
	fields Fields,
) string {
	rest, found := strings.CutPrefix(source, frontMatterDelim+"\n")
	if !found {
		return source
	}

	block, body, found := strings.Cut(rest, "\n"+frontMatterDelim)
	if !found {
		return source
	}

	var decoded map[string]any

	err := yaml.Unmarshal([]byte(block), &decoded)
	if err != nil {
		log.WarnContext(ctx, "malformed front matter",
			slog.Any("error", err),
		)

		return strings.TrimPrefix(body, "\n")
	}

	for key, value := range decoded {
		fields[key] = value
	}

	return strings.TrimPrefix(body, "\n")
}

// collectAttributes walks the document tree collecting "key:: value" lines
// from text nodes. Directive, escape, and reference nodes are not descended
// into: attributes live in literal text only.
func collectAttributes(ctx context.Context, root *doc.Node, fields Fields) {
	_ = doc.Visit(root, func(n *doc.Node) (doc.Action, doc.Fragment, error) {
		switch n.Kind {
		case doc.KindText:
			for line := range strings.Lines(n.Text) {
				name, value, ok := splitAttribute(line)
				if !ok {
					continue
				}

				fields[name] = decodeValue(ctx, name, value)
			}

			return doc.StopDescent, nil, nil

		case doc.KindDirective, doc.KindEscape, doc.KindReference:
			return doc.StopDescent, nil, nil

		case doc.KindDocument:
		}

		return doc.Continue, nil, nil
	})
}

// splitAttribute splits one "key:: value" line. The key must be a single
// word; anything else is ordinary text.
func splitAttribute(line string) (name, value string, ok bool) {
	name, value, found := strings.Cut(line, attrSeparator)
	if !found {
		return "", "", false
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}

	return name, strings.TrimSpace(value), true
}

// decodeValue decodes an attribute value with the YAML grammar, falling
// back to the raw string when decoding fails.
func decodeValue(ctx context.Context, name, value string) any {
	if value == "" {
		return ""
	}

	var decoded any

	err := yaml.Unmarshal([]byte(value), &decoded)
	if err != nil {
		log.DebugContext(ctx, "attribute value kept as string",
			slog.String("name", name),
			slog.Any("error", err),
		)

		return value
	}

	return decoded
}
