package assets

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-vimwiki2html/internal/fileutil"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() string {
	content, err := defaultLoader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		panic(fmt.Sprintf("assets: built-in template missing: %v", err))
	}
	return content
}

// DefaultStylesheet returns the built-in stylesheet referenced by the
// default template.
func DefaultStylesheet() string {
	content, err := defaultLoader.LoadStyle(DefaultStyleName)
	if err != nil {
		panic(fmt.Sprintf("assets: built-in stylesheet missing: %v", err))
	}
	return content
}

// WriteDefaultStylesheet materializes the built-in stylesheet at
// {rootDir}/css/default_style.css, creating directories as needed.
// The file is left untouched when it already holds the same content.
// Returns the stylesheet path and whether it was written.
func WriteDefaultStylesheet(rootDir string) (string, bool, error) {
	path := filepath.Join(rootDir, filepath.FromSlash(DefaultStylesheetPath))

	written, err := fileutil.WriteFileIfChanged(path, []byte(DefaultStylesheet()))
	if err != nil {
		return path, false, fmt.Errorf("%w: %v", ErrStylesheetWrite, err)
	}
	return path, written, nil
}
