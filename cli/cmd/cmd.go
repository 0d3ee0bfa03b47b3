package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/klauspost/readahead"

	"github.com/ardnew/weft/scope"
	"github.com/ardnew/weft/stdlib"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Options carries global flag values shared by every subcommand.
type Options struct {
	// BaseURL identifies the document origin reported to scripts.
	// Empty means headless.
	BaseURL string
	// Jobs is the maximum number of directives evaluated concurrently.
	Jobs int
}

type optionsKey struct{}

// WithOptions returns a new context.Context containing the given Options.
func WithOptions(ctx context.Context, opt Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opt)
}

func optionsFrom(ctx context.Context) Options {
	opt, _ := ctx.Value(optionsKey{}).(Options)

	return opt
}

// makeFrame constructs an evaluation frame whose global environment holds
// the ambient bindings and the standard library table. The frame origin is
// taken from the --base-url flag when set.
func makeFrame(ctx context.Context) *scope.Frame {
	var opts []scope.FrameOption

	if opt := optionsFrom(ctx); opt.BaseURL != "" {
		opts = append(opts, scope.WithOrigin(opt.BaseURL))
	}

	return scope.NewFrame(stdlib.NewGlobal(), opts...)
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource reads the entire contents of the named file, or of stdin when
// source is "-". Reads are wrapped with async read-ahead so data is
// pre-fetched while previous chunks are processed.
func readSource(source string) (string, error) {
	var file *os.File

	if source == stdinSource {
		file = os.Stdin
	} else {
		var err error

		file, err = os.Open(source)
		if err != nil {
			return "", ErrReadInput.
				With(slog.String("source", source)).
				Wrap(err)
		}
		defer file.Close()
	}

	ra := readahead.NewReader(file)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.
			With(slog.String("source", source)).
			Wrap(err)
	}

	return string(data), nil
}

// writeOutput writes text to the named file, or to stdout when output is
// empty.
func writeOutput(output, text string) error {
	if output == "" {
		_, err := io.WriteString(os.Stdout, text)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	err := os.WriteFile(output, []byte(text), 0o600)
	if err != nil {
		return ErrWriteOutput.
			With(slog.String("output", output)).
			Wrap(err)
	}

	return nil
}
