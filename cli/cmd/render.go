package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/weft/log"
	"github.com/ardnew/weft/splice"
)

// Render substitutes every directive in a template document and writes the
// reassembled result.
type Render struct {
	Source string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"source"`

	Output string `help:"Write rendered output to a file instead of stdout." short:"o" type:"path"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := readSource(r.Source)
	if err != nil {
		return err
	}

	opt := optionsFrom(ctx)

	result, err := splice.Interpolate(ctx, makeFrame(ctx), text, nil,
		splice.WithConcurrency(opt.Jobs),
	)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "rendered template",
		slog.String("source", r.Source),
		slog.Int("input_length", len(text)),
		slog.Int("output_length", len(result)),
	)

	return writeOutput(r.Output, result)
}
