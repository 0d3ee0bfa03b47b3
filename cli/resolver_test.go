package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolveConfig(t *testing.T) {
	input := strings.NewReader(
		"log_level: debug\njobs: 4\nbase-url: wiki://local\nratio: 0.5\n",
	)

	resolver, err := resolve(input)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	tests := []struct {
		name string
		flag string
		want any
	}{
		{name: "underscore key for hyphen flag", flag: "log-level", want: "debug"},
		{name: "integer converted to string", flag: "jobs", want: "4"},
		{name: "hyphen key", flag: "base-url", want: "wiki://local"},
		{name: "float converted to string", flag: "ratio", want: "0.5"},
		{name: "unknown flag", flag: "missing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := resolver.Resolve(nil, nil, flag)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.flag, err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveMalformedConfig(t *testing.T) {
	resolver, err := resolve(strings.NewReader("broken: [unclosed"))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	flag := &kong.Flag{Value: &kong.Value{Name: "broken"}}

	got, err := resolver.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got != nil {
		t.Errorf("Resolve() = %v, want nil for malformed config", got)
	}
}
