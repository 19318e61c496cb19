package vimwiki2html

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-vimwiki2html/internal/dateutil"
	"github.com/alnah/go-vimwiki2html/internal/pipeline"
)

// Options are the conversion options of one invocation.
type Options struct {
	// MarkdownExtensions are enabled on top of fenced code, tables and
	// code highlighting. Python-Markdown names are accepted.
	MarkdownExtensions []string

	// AutoIndex appends index.html to links ending with "/".
	AutoIndex bool

	// CSSFiles are copied to the output root after the page is written.
	CSSFiles []CSSFile

	// CopyImages copies referenced images next to the generated page.
	CopyImages bool

	// DateFormat formats the default %date% value. Tokens: YYYY, YY,
	// MMMM, MMM, MM, M, DD, D. Presets: iso, european, us, long.
	DateFormat string

	// SanitizeHTML filters the generated HTML through a user content policy.
	SanitizeHTML bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		CopyImages: true,
		DateFormat: dateutil.DefaultDateFormat,
	}
}

// Validate checks the date format and stylesheet destinations.
func (o Options) Validate() error {
	if err := dateutil.ValidateFormat(o.DateFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	for _, css := range o.CSSFiles {
		if err := css.validate(); err != nil {
			return err
		}
	}
	return nil
}

// CSSFile is a stylesheet copied to the output root.
type CSSFile struct {
	Source string
	Dest   string // relative to the output root; empty keeps the source file name
}

// DestPath returns where the stylesheet lands under root.
func (c CSSFile) DestPath(root string) string {
	if c.Dest == "" {
		return filepath.Join(root, filepath.Base(c.Source))
	}
	return filepath.Join(root, filepath.FromSlash(c.Dest))
}

func (c CSSFile) validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: empty source", ErrInvalidCSSFile)
	}
	if filepath.IsAbs(c.Dest) || strings.HasPrefix(c.Dest, "/") {
		return fmt.Errorf("%w: destination %q must be relative to the output root", ErrInvalidCSSFile, c.Dest)
	}
	return nil
}

// ParseCSSFiles parses a comma-separated list of source[:dest] pairs.
// Empty entries are skipped. A Windows drive prefix (C:\ or C:/)
// belongs to the source and is not taken as the separator.
func ParseCSSFiles(list string) ([]CSSFile, error) {
	var files []CSSFile
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		css := splitCSSEntry(entry)
		if err := css.validate(); err != nil {
			return nil, fmt.Errorf("%w (in %q)", err, entry)
		}
		files = append(files, css)
	}
	return files, nil
}

// splitCSSEntry splits source[:dest] on the first colon after any drive prefix.
func splitCSSEntry(entry string) CSSFile {
	start := 0
	if hasDrivePrefix(entry) {
		start = 2
	}

	i := strings.IndexByte(entry[start:], ':')
	if i < 0 {
		return CSSFile{Source: entry}
	}
	i += start
	return CSSFile{
		Source: strings.TrimSpace(entry[:i]),
		Dest:   strings.TrimSpace(entry[i+1:]),
	}
}

func hasDrivePrefix(s string) bool {
	if len(s) < 3 || s[1] != ':' || (s[2] != '\\' && s[2] != '/') {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// extensions returns the extension names, empty entries removed.
func (o Options) extensions() []string {
	var names []string
	for _, name := range o.MarkdownExtensions {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SplitExtensions splits a comma-separated markdown_extensions value.
func SplitExtensions(list string) []string {
	return pipeline.SplitExtensions(list)
}
