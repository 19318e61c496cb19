package pipeline

import (
	"sort"
	"strings"
)

// Template placeholder tokens.
const (
	PlaceholderRootPath = "%root_path%"
	PlaceholderTitle    = "%title%"
	PlaceholderDate     = "%date%"
	PlaceholderContent  = "%content%"
)

// Placeholders maps template tokens to their values.
type Placeholders map[string]string

// NewPlaceholders returns the defaults for a page: root path, the title
// derived from the file name and the formatted current date. Content is
// set once the page is rendered.
func NewPlaceholders(rootPath, title, date string) Placeholders {
	return Placeholders{
		PlaceholderRootPath: rootPath,
		PlaceholderTitle:    title,
		PlaceholderDate:     date,
	}
}

// Apply overwrites title and date with the values a page sets itself.
// Directives take precedence over front matter.
func (p Placeholders) Apply(doc *Document, meta Metadata) {
	switch {
	case doc != nil && doc.HasTitle:
		p[PlaceholderTitle] = doc.Title
	case meta.HasTitle:
		p[PlaceholderTitle] = meta.Title
	}

	switch {
	case doc != nil && doc.HasDate:
		p[PlaceholderDate] = doc.Date
	case meta.HasDate:
		p[PlaceholderDate] = meta.Date
	}
}

// RenderTemplate replaces every occurrence of every placeholder token in
// tpl. Replacement is a single pass, so values containing tokens are not
// expanded again and key order does not matter. Unknown tokens are kept.
func RenderTemplate(tpl string, p Placeholders) string {
	if len(p) == 0 {
		return tpl
	}

	tokens := make([]string, 0, len(p))
	for token := range p {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)

	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, token, p[token])
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
