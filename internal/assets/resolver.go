package assets

import (
	"errors"
	"path/filepath"
)

// Template is a resolved page template.
type Template struct {
	Name    string // requested name
	Content string
	Path    string // file read, empty for the built-in template
	Builtin bool   // true when the built-in template was substituted

	// MissingPath is the file that was looked up and not found when
	// Builtin is true.
	MissingPath string
}

// TemplateResolver looks templates up in the wiki template directory and
// falls back to the built-in template when the file is absent.
type TemplateResolver struct {
	dir      string
	ext      string
	custom   *FilesystemLoader // nil if the directory does not exist
	embedded *EmbeddedLoader
}

// NewTemplateResolver creates a TemplateResolver for {dir}/{name}{ext}.
// A missing or unusable directory is not an error: every lookup then falls
// back to the built-in template.
func NewTemplateResolver(dir, ext string) *TemplateResolver {
	r := &TemplateResolver{
		dir:      dir,
		ext:      ext,
		embedded: NewEmbeddedLoader(),
	}
	if dir != "" {
		if loader, err := NewFilesystemLoader(dir, ext); err == nil {
			r.custom = loader
		}
	}
	return r
}

// Resolve returns the template called name. Not-found conditions (missing
// directory, missing file, empty name) yield the built-in template with
// Builtin set. Invalid names and read errors are returned as errors.
func (r *TemplateResolver) Resolve(name string) (*Template, error) {
	lookedUp := filepath.Join(r.dir, name+r.ext)

	if r.custom != nil && name != "" {
		lookedUp = r.custom.Path(name)

		content, err := r.custom.LoadTemplate(name)
		if err == nil {
			return &Template{Name: name, Content: content, Path: lookedUp}, nil
		}
		if !isNotFoundError(err) {
			return nil, err
		}
	} else if name != "" {
		if err := ValidateAssetName(name); err != nil {
			return nil, err
		}
	}

	content, err := r.embedded.LoadTemplate(DefaultTemplateName)
	if err != nil {
		return nil, err
	}
	return &Template{
		Name:        name,
		Content:     content,
		Builtin:     true,
		MissingPath: lookedUp,
	}, nil
}

// isNotFoundError checks if the error indicates the template was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}

// HasCustomDir returns true if the template directory exists.
func (r *TemplateResolver) HasCustomDir() bool {
	return r.custom != nil
}
