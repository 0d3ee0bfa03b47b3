package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/weft/lang"
)

// Eval evaluates a single expression against the ambient environment and
// prints the resulting value.
type Eval struct {
	Expr string `arg:"" help:"Expression to evaluate." name:"expr"`

	Format string `default:"native" enum:"native,json,yaml" help:"Output format." short:"F"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := lang.Parse(e.Expr)
	if err != nil {
		return err
	}

	value, err := lang.EvaluateValue(ctx, makeFrame(ctx), ast, nil)
	if err != nil {
		return err
	}

	switch e.Format {
	case "json":
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		fmt.Fprintln(os.Stdout, string(data))

	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		fmt.Fprint(os.Stdout, string(data))

	default:
		fmt.Fprintln(os.Stdout, lang.FormatValue(value))
	}

	return nil
}
