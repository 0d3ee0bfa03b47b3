package meta

import (
	"reflect"
	"testing"
)

func TestExtractString(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   Fields
	}{
		{
			name:   "no metadata",
			source: "plain text with ${1+1} directives",
			want:   Fields{},
		},
		{
			name: "front matter only",
			source: "---\n" +
				"title: Home\n" +
				"count: 3\n" +
				"---\n" +
				"body text",
			want: Fields{"title": "Home", "count": uint64(3)},
		},
		{
			name:   "attribute lines",
			source: "tags:: [a, b]\ndraft:: true\nplain line\n",
			want: Fields{
				"tags":  []any{"a", "b"},
				"draft": true,
			},
		},
		{
			name: "later attribute wins",
			source: "---\n" +
				"title: One\n" +
				"---\n" +
				"title:: Two\n",
			want: Fields{"title": "Two"},
		},
		{
			name:   "multiword key is plain text",
			source: "not a key:: value\n",
			want:   Fields{},
		},
		{
			name:   "attributes skip directive text",
			source: "${\"k:: v\"}\nreal:: 1\n",
			want:   Fields{"real": uint64(1)},
		},
		{
			name: "malformed front matter is skipped",
			source: "---\n" +
				"broken: [unclosed\n" +
				"---\n" +
				"key:: ok\n",
			want: Fields{"key": "ok"},
		},
		{
			name:   "empty value",
			source: "blank::\n",
			want:   Fields{"blank": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractString(t.Context(), tt.source)

			if len(got) != len(tt.want) {
				t.Fatalf("ExtractString() = %v, want %v", got, tt.want)
			}

			for key, want := range tt.want {
				if !reflect.DeepEqual(got[key], want) {
					t.Errorf("field %q = %v (%T), want %v (%T)",
						key, got[key], got[key], want, want)
				}
			}
		})
	}
}
