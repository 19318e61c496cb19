package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTemplateResolver(t *testing.T) {
	t.Parallel()

	t.Run("existing directory enables custom lookup", func(t *testing.T) {
		t.Parallel()

		if !NewTemplateResolver(t.TempDir(), ".html").HasCustomDir() {
			t.Error("expected custom directory for existing path")
		}
	})

	t.Run("missing directory falls back silently", func(t *testing.T) {
		t.Parallel()

		r := NewTemplateResolver(filepath.Join(t.TempDir(), "missing"), ".html")
		if r.HasCustomDir() {
			t.Error("expected no custom directory for missing path")
		}
	})
}

func TestTemplateResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("custom template found", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTemplate(t, dir, "wiki.html", "<main>%content%</main>")

		tpl, err := NewTemplateResolver(dir, ".html").Resolve("wiki")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if tpl.Builtin {
			t.Error("Builtin = true, want false")
		}
		if tpl.Content != "<main>%content%</main>" {
			t.Errorf("Content = %q", tpl.Content)
		}
		if filepath.Base(tpl.Path) != "wiki.html" {
			t.Errorf("Path = %q, want .../wiki.html", tpl.Path)
		}
	})

	t.Run("missing file falls back to built-in", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		tpl, err := NewTemplateResolver(dir, ".html").Resolve("absent")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !tpl.Builtin {
			t.Error("Builtin = false, want true")
		}
		if tpl.Content != DefaultTemplate() {
			t.Error("Content should be the built-in template")
		}
		if !strings.HasSuffix(tpl.MissingPath, "absent.html") {
			t.Errorf("MissingPath = %q, want suffix absent.html", tpl.MissingPath)
		}
	})

	t.Run("missing directory falls back to built-in", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "templates")
		tpl, err := NewTemplateResolver(dir, ".html").Resolve("default")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !tpl.Builtin {
			t.Error("Builtin = false, want true")
		}
		if tpl.MissingPath != filepath.Join(dir, "default.html") {
			t.Errorf("MissingPath = %q", tpl.MissingPath)
		}
	})

	t.Run("empty name falls back to built-in", func(t *testing.T) {
		t.Parallel()

		tpl, err := NewTemplateResolver(t.TempDir(), ".html").Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !tpl.Builtin {
			t.Error("Builtin = false, want true")
		}
	})

	t.Run("invalid name is an error", func(t *testing.T) {
		t.Parallel()

		_, err := NewTemplateResolver(t.TempDir(), ".html").Resolve("../x")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("Resolve() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid name without directory is an error", func(t *testing.T) {
		t.Parallel()

		r := NewTemplateResolver(filepath.Join(t.TempDir(), "missing"), ".html")
		_, err := r.Resolve("a/b")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("Resolve() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("custom template shadows built-in name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "default.html"), []byte("mine"), 0644); err != nil {
			t.Fatalf("failed to write template: %v", err)
		}

		tpl, err := NewTemplateResolver(dir, ".html").Resolve("default")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if tpl.Builtin || tpl.Content != "mine" {
			t.Errorf("got Builtin=%v Content=%q, want custom template", tpl.Builtin, tpl.Content)
		}
	})
}
