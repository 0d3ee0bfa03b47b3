package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/weft/meta"
)

// Meta extracts document metadata (front matter and attribute lines) and
// prints it as a structured document.
type Meta struct {
	Source string `arg:"" default:"-" help:"Document file or '-' for stdin." name:"source"`

	Format string `default:"yaml" enum:"json,yaml" help:"Output format." short:"F"`
}

// Run executes the meta command.
func (m *Meta) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := readSource(m.Source)
	if err != nil {
		return err
	}

	fields := meta.ExtractString(ctx, text)

	switch m.Format {
	case "json":
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		fmt.Fprintln(os.Stdout, string(data))

	default:
		data, err := yaml.Marshal(fields)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		fmt.Fprint(os.Stdout, string(data))
	}

	return nil
}
