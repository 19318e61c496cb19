package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	tpl := DefaultTemplate()
	for _, token := range []string{"%title%", "%date%", "%root_path%", "%content%"} {
		if !strings.Contains(tpl, token) {
			t.Errorf("DefaultTemplate() missing %s", token)
		}
	}
	if !strings.Contains(tpl, "%root_path%"+DefaultStylesheetPath) {
		t.Errorf("DefaultTemplate() should link %s", DefaultStylesheetPath)
	}
}

func TestDefaultStylesheet(t *testing.T) {
	t.Parallel()

	css := DefaultStylesheet()
	if !strings.Contains(css, ".codehilite") {
		t.Error("DefaultStylesheet() should style .codehilite blocks")
	}
	if !strings.Contains(css, "font-family") {
		t.Error("DefaultStylesheet() should contain font rules")
	}
}

func TestWriteDefaultStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("creates css directory and file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path, written, err := WriteDefaultStylesheet(root)
		if err != nil {
			t.Fatalf("WriteDefaultStylesheet() error = %v", err)
		}
		if !written {
			t.Error("written = false, want true on first write")
		}

		want := filepath.Join(root, "css", "default_style.css")
		if path != want {
			t.Errorf("path = %q, want %q", path, want)
		}

		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("failed to read stylesheet: %v", err)
		}
		if string(data) != DefaultStylesheet() {
			t.Error("stylesheet content differs from DefaultStylesheet()")
		}
	})

	t.Run("second write is skipped", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		if _, _, err := WriteDefaultStylesheet(root); err != nil {
			t.Fatalf("first WriteDefaultStylesheet() error = %v", err)
		}
		_, written, err := WriteDefaultStylesheet(root)
		if err != nil {
			t.Fatalf("second WriteDefaultStylesheet() error = %v", err)
		}
		if written {
			t.Error("written = true, want false for unchanged content")
		}
	})

	t.Run("modified stylesheet is restored", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path, _, err := WriteDefaultStylesheet(root)
		if err != nil {
			t.Fatalf("WriteDefaultStylesheet() error = %v", err)
		}
		if err := os.WriteFile(path, []byte("body{}"), 0644); err != nil {
			t.Fatalf("failed to modify stylesheet: %v", err)
		}

		_, written, err := WriteDefaultStylesheet(root)
		if err != nil {
			t.Fatalf("WriteDefaultStylesheet() error = %v", err)
		}
		if !written {
			t.Error("written = false, want true after modification")
		}
	})
}
