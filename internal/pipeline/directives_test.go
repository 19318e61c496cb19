package pipeline

// Notes:
// - StripDirectives is exercised through strings.Reader; read errors from
//   the underlying reader are covered by a failing reader stub.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestStripDirectives - Directive extraction and body preservation
// ---------------------------------------------------------------------------

func TestStripDirectives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Document
	}{
		{
			name:  "title and date with body",
			input: "%title My Page\n%date 2024-01-01\nBody text.\n",
			want: Document{
				Body:  "Body text.\n",
				Title: "My Page", HasTitle: true,
				Date: "2024-01-01", HasDate: true,
			},
		},
		{
			name:  "template directive",
			input: "%template blog\n# Post\n",
			want:  Document{Body: "# Post\n", Template: "blog", HasTemplate: true},
		},
		{
			name:  "last occurrence wins",
			input: "%title First\ntext\n%title Second\n",
			want:  Document{Body: "text\n", Title: "Second", HasTitle: true},
		},
		{
			name:  "blank lines and order preserved",
			input: "a\n\n%date d\n\nb\n",
			want:  Document{Body: "a\n\n\nb\n", Date: "d", HasDate: true},
		},
		{
			name:  "CRLF terminator removed from value, kept in body",
			input: "%title Windows\r\nline\r\n",
			want:  Document{Body: "line\r\n", Title: "Windows", HasTitle: true},
		},
		{
			name:  "last line without terminator keeps full value",
			input: "body\n%title Tail",
			want:  Document{Body: "body\n", Title: "Tail", HasTitle: true},
		},
		{
			name:  "only one leading space removed",
			input: "%title   indented\n",
			want:  Document{Title: "  indented", HasTitle: true},
		},
		{
			name:  "bare directive yields empty value",
			input: "%date\n",
			want:  Document{Date: "", HasDate: true},
		},
		{
			name:  "prefix match without space",
			input: "%titleCase\n",
			want:  Document{Title: "Case", HasTitle: true},
		},
		{
			name:  "directive must start the line",
			input: " %title not a directive\n",
			want:  Document{Body: " %title not a directive\n"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Document{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := StripDirectives(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("StripDirectives() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("StripDirectives() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStripDirectives_NoHTML - Early termination
// ---------------------------------------------------------------------------

func TestStripDirectives_NoHTML(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"%nohtml\n# Page\n",
		"# Page\ntext\n%nohtml\n",
		"%title T\n%nohtml",
	} {
		got, err := StripDirectives(strings.NewReader(input))
		if err != nil {
			t.Fatalf("StripDirectives(%q) error = %v", input, err)
		}
		if !got.NoHTML {
			t.Errorf("StripDirectives(%q).NoHTML = false, want true", input)
		}
	}
}

// failingReader returns data then an error.
type failingReader struct{ done bool }

var errBoom = errors.New("boom")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errBoom
	}
	r.done = true
	return copy(p, "partial line"), nil
}

func TestStripDirectives_ReadError(t *testing.T) {
	t.Parallel()

	_, err := StripDirectives(&failingReader{})
	if !errors.Is(err, ErrReadSource) {
		t.Errorf("StripDirectives() error = %v, want ErrReadSource", err)
	}
}
