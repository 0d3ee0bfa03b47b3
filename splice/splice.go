package splice

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/weft/doc"
	"github.com/ardnew/weft/lang"
	"github.com/ardnew/weft/log"
	"github.com/ardnew/weft/scope"
)

// marker is the directive marker character, produced literally by its
// two-character escape form.
const marker = "$"

// match is one substitution site found while scanning the template.
type match struct {
	node *doc.Node
	expr string // expression text to evaluate; "" for escape matches
}

// Interpolate parses templateText with the document grammar, substitutes
// every matched directive, escape, and embedded-directive reference, and
// renders the fully substituted tree back to text.
//
// Substitution is all-or-nothing: a single failing expression fails the
// whole call, and no partially substituted output is returned.
func Interpolate(
	ctx context.Context,
	frame *scope.Frame,
	templateText string,
	aug scope.Augmentation,
	opts ...Option,
) (string, error) {
	// Reject misconfigured frames before any work, including templates
	// that contain nothing to substitute.
	err := frame.Validate()
	if err != nil {
		return "", err
	}

	root, err := doc.ParseString(templateText)
	if err != nil {
		return "", err
	}

	matches, err := collect(ctx, root)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return doc.Render(root), nil
	}

	cfg := makeConfig(opts...)

	log.TraceContext(ctx, "substituting template",
		slog.Int("matches", len(matches)),
		slog.Int("concurrency", cfg.limit),
	)

	// Evaluate matches, possibly concurrently. Results land in a slice
	// indexed by document order so reassembly is independent of scheduling.
	frags := make([]doc.Fragment, len(matches))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.limit)

	for i, m := range matches {
		group.Go(func() error {
			if m.expr == "" {
				frags[i] = doc.NewText(marker)

				return nil
			}

			frag, err := lang.Evaluate(groupCtx, frame, m.expr, aug)
			if err != nil {
				return err
			}

			frags[i] = frag

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return "", err
	}

	// Splice in document order. Replacement content takes the place of the
	// matched node and its subtree; siblings keep their original order, and
	// spliced fragments are not revisited.
	for i, m := range matches {
		doc.Splice(root, m.node, frags[i])
	}

	return doc.Render(root), nil
}

// collect scans the tree depth-first, pre-order, recording every
// substitution site. Matched nodes are not descended into; all other nodes
// recurse into their children.
func collect(ctx context.Context, root *doc.Node) ([]match, error) {
	var matches []match

	err := doc.Visit(root, func(n *doc.Node) (doc.Action, doc.Fragment, error) {
		switch n.Kind {
		case doc.KindDirective:
			// The raw expression is the directive's inner text child; a
			// directive without one is left as-is.
			expr := n.InnerText()
			if strings.TrimSpace(expr) == "" {
				return doc.StopDescent, nil, nil
			}

			matches = append(matches, match{node: n, expr: expr})

			return doc.StopDescent, nil, nil

		case doc.KindEscape:
			// The two-character escape form renders as the literal marker.
			if n.Text != `\`+marker {
				return doc.StopDescent, nil, nil
			}

			matches = append(matches, match{node: n})

			return doc.StopDescent, nil, nil

		case doc.KindReference:
			expr, ok := embeddedDirective(ctx, n)
			if !ok {
				return doc.StopDescent, nil, nil
			}

			matches = append(matches, match{node: n, expr: expr})

			return doc.StopDescent, nil, nil

		case doc.KindDocument, doc.KindText:
		}

		return doc.Continue, nil, nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// embeddedDirective re-parses a reference node's rendered text standalone
// and searches the result for an expression directive. References whose
// text does not re-parse, or that hold no directive, are not substituted.
func embeddedDirective(ctx context.Context, n *doc.Node) (string, bool) {
	inner, err := doc.ParseString(n.InnerText())
	if err != nil {
		log.TraceContext(ctx, "reference text does not re-parse",
			slog.Any("error", err),
			slog.Int("line", n.Line),
			slog.Int("col", n.Col),
		)

		return "", false
	}

	directive := doc.Find(inner, func(c *doc.Node) bool {
		return c.Kind == doc.KindDirective
	})
	if directive == nil {
		return "", false
	}

	expr := directive.InnerText()
	if strings.TrimSpace(expr) == "" {
		return "", false
	}

	return expr, true
}
