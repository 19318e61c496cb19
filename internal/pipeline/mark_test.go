package pipeline

// Notes:
// - Marks are checked on the rendered fragment; the codehilite markup around
//   fenced blocks is Chroma's and only the absence of <mark> is asserted.

import (
	"strings"
	"testing"
)

func TestMarkExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    []string
		without []string
	}{
		{
			name: "single",
			body: "a ==hot== b\n",
			want: []string{"a <mark>hot</mark> b"},
		},
		{
			name: "two on one line",
			body: "==x== and ==y==\n",
			want: []string{"<mark>x</mark> and <mark>y</mark>"},
		},
		{
			name: "nested emphasis",
			body: "==**bold**==\n",
			want: []string{"<mark><strong>bold</strong></mark>"},
		},
		{
			name:    "comparison operator left alone",
			body:    "if a == b {\n",
			want:    []string{"if a == b {"},
			without: []string{"<mark>"},
		},
		{
			name:    "four equals not a mark",
			body:    "a ====b==== c\n",
			without: []string{"<mark>"},
		},
		{
			name:    "inline code untouched",
			body:    "`x==y==z`\n",
			want:    []string{"<code>x==y==z</code>"},
			without: []string{"<mark>"},
		},
		{
			name:    "fenced code untouched",
			body:    "```\na==b==c\n```\n",
			without: []string{"<mark>"},
		},
		{
			name:    "indented code untouched",
			body:    "    ==kept==\n",
			want:    []string{"==kept=="},
			without: []string{"<mark>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convert(t, NewEngine(WithExtensions("mark")), tt.body).HTML
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("HTML = %q, want containing %q", got, want)
				}
			}
			for _, without := range tt.without {
				if strings.Contains(got, without) {
					t.Errorf("HTML = %q, should not contain %q", got, without)
				}
			}
		})
	}
}

func TestMarkExtension_Disabled(t *testing.T) {
	t.Parallel()

	got := convert(t, NewEngine(), "a ==hot== b\n").HTML
	if strings.Contains(got, "<mark>") {
		t.Errorf("HTML = %q, want no mark without the extension", got)
	}
}
