package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("with default path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound("VIMWIKI2HTML_CONFIG", "/home/u/.config/vimwiki2html/config.yaml")
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint should start with hint prefix, got %q", hint)
		}
		if !strings.Contains(hint, "VIMWIKI2HTML_CONFIG") {
			t.Error("expected environment variable name in hint")
		}
		if !strings.Contains(hint, "vimwiki2html/config.yaml") {
			t.Error("expected default path in hint")
		}
		if strings.Count(hint, "hint:") != 1 {
			t.Error("multiple hints should be joined into a single hint line")
		}
	})

	t.Run("without default path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound("VIMWIKI2HTML_CONFIG", "")
		if strings.Contains(hint, "unset") {
			t.Errorf("unexpected unset suggestion: %q", hint)
		}
	})
}

func TestSingleHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "options JSON", got: ForOptionsJSON(), want: "JSON object"},
		{name: "unsupported syntax", got: ForUnsupportedSyntax(), want: "markdown"},
		{name: "missing image", got: ForMissingImage(), want: "copy_images"},
		{name: "missing CSS", got: ForMissingCSS(), want: "css_files"},
		{name: "output directory", got: ForOutputDirectory(), want: "writable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint should start with hint prefix, got %q", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint %q should contain %q", tt.got, tt.want)
			}
		})
	}
}

func TestForUnknownExtension(t *testing.T) {
	t.Parallel()

	if got := ForUnknownExtension(nil); got != "" {
		t.Errorf("ForUnknownExtension(nil) = %q, want empty", got)
	}

	got := ForUnknownExtension([]string{"footnotes", "toc"})
	if !strings.Contains(got, "available: footnotes, toc") {
		t.Errorf("ForUnknownExtension() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
