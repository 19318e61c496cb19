package pipeline

import (
	"sort"
	"strings"

	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/anchor"
	"go.abhg.dev/goldmark/frontmatter"

	"github.com/alnah/go-vimwiki2html/internal/yamlutil"
)

// BaseExtensions are always enabled: fenced code is part of CommonMark,
// tables and highlighting are configured by the engine itself.
var BaseExtensions = []string{"fenced_code", "tables", "codehilite"}

// extenderFunc adapts a function to goldmark.Extender for extensions that
// are only parser or renderer options.
type extenderFunc func(goldmark.Markdown)

// Extend implements goldmark.Extender.
func (f extenderFunc) Extend(m goldmark.Markdown) { f(m) }

// markdownExtension is what enabling one extension name turns on.
type markdownExtension struct {
	extenders []goldmark.Extender
}

var (
	withAttributes = extenderFunc(func(m goldmark.Markdown) {
		m.Parser().AddOptions(parser.WithAttribute())
	})
	withHeadingIDs = extenderFunc(func(m goldmark.Markdown) {
		m.Parser().AddOptions(parser.WithAutoHeadingID())
	})
	withHardWraps = extenderFunc(func(m goldmark.Markdown) {
		m.Renderer().AddOptions(html.WithHardWraps())
	})
	noop = extenderFunc(func(goldmark.Markdown) {})

	// Front matter in YAML goes through the same decoder as the config
	// file; TOML keeps the library default.
	frontMatter = &frontmatter.Extender{
		Formats: []frontmatter.Format{
			{Name: "YAML", Delim: '-', Unmarshal: yamlutil.Unmarshal},
			frontmatter.TOML,
		},
	}
)

// registry maps python-markdown extension names, as written in vimwiki
// configurations, to their Goldmark counterparts.
var registry = map[string]markdownExtension{
	"fenced_code": {extenders: []goldmark.Extender{noop}},
	"tables":      {extenders: []goldmark.Extender{noop}},
	"codehilite":  {extenders: []goldmark.Extender{noop}},

	"extra":     {extenders: []goldmark.Extender{extension.Footnote, extension.DefinitionList, withAttributes}},
	"footnotes": {extenders: []goldmark.Extender{extension.Footnote}},
	"def_list":  {extenders: []goldmark.Extender{extension.DefinitionList}},
	"attr_list": {extenders: []goldmark.Extender{withAttributes}},
	"toc":       {extenders: []goldmark.Extender{withHeadingIDs, tocExtension{}}},
	"anchor":    {extenders: []goldmark.Extender{withHeadingIDs, &anchor.Extender{Texter: anchor.Text("#")}}},
	"permalink": {extenders: []goldmark.Extender{withHeadingIDs, &anchor.Extender{Texter: anchor.Text("¶")}}},
	"smarty":    {extenders: []goldmark.Extender{extension.Typographer}},
	"nl2br":     {extenders: []goldmark.Extender{withHardWraps}},
	"tilde":     {extenders: []goldmark.Extender{extension.Strikethrough}},
	"tasklist":  {extenders: []goldmark.Extender{extension.TaskList}},
	"magiclink": {extenders: []goldmark.Extender{extension.Linkify}},
	"gfm":       {extenders: []goldmark.Extender{extension.GFM}},
	"cjk":       {extenders: []goldmark.Extender{extension.CJK}},
	"emoji":     {extenders: []goldmark.Extender{emoji.Emoji}},
	"meta":      {extenders: []goldmark.Extender{frontMatter}},
	"mark":      {extenders: []goldmark.Extender{markExtension{}}},
}

// aliases maps alternative names to registry keys.
var aliases = map[string]string{
	"typographer":   "smarty",
	"strikethrough": "tilde",
	"linkify":       "magiclink",
	"frontmatter":   "meta",
}

// namePrefixes are stripped from fully qualified extension names.
var namePrefixes = []string{"markdown.extensions.", "pymdownx."}

// normalizeExtensionName lowercases, trims and unqualifies name, and
// resolves aliases.
func normalizeExtensionName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, prefix := range namePrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// resolveExtensions normalizes and deduplicates names, keeping the first
// occurrence order. Empty names are dropped. Unknown names are returned
// separately.
func resolveExtensions(names []string) (known []string, unknown []string) {
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := normalizeExtensionName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if _, ok := registry[name]; ok {
			known = append(known, name)
		} else {
			unknown = append(unknown, strings.TrimSpace(raw))
		}
	}
	return known, unknown
}

// SplitExtensions splits a comma-separated extension list.
func SplitExtensions(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return strings.Split(list, ",")
}

// ExtensionNames returns the supported extension names, sorted.
func ExtensionNames() []string {
	names := make([]string, 0, len(registry)+len(aliases))
	for name := range registry {
		names = append(names, name)
	}
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
