package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/frontmatter"

	"github.com/alnah/go-vimwiki2html/internal/hints"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Metadata holds page values found in front matter.
type Metadata struct {
	Title    string
	HasTitle bool
	Date     string
	HasDate  bool
}

// Rendered is the output of one conversion.
type Rendered struct {
	HTML string
	Meta Metadata
}

// Engine converts markdown bodies to HTML fragments. Build one per page:
// resolvers such as ImageCopier carry per-page state.
type Engine struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	warnings  io.Writer
}

// engineConfig collects EngineOption values.
type engineConfig struct {
	links      LinkResolver
	images     ImageResolver
	extensions []string
	sanitize   bool
	warnings   io.Writer
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

// WithLinkResolver installs the policy applied to every inline link.
func WithLinkResolver(r LinkResolver) EngineOption {
	return func(c *engineConfig) { c.links = r }
}

// WithImageResolver installs the policy applied to every image. Without
// one, image destinations are rendered as written.
func WithImageResolver(r ImageResolver) EngineOption {
	return func(c *engineConfig) { c.images = r }
}

// WithExtensions enables extensions by name on top of BaseExtensions.
func WithExtensions(names ...string) EngineOption {
	return func(c *engineConfig) { c.extensions = append(c.extensions, names...) }
}

// WithSanitize passes the generated HTML through a bluemonday policy.
func WithSanitize(enabled bool) EngineOption {
	return func(c *engineConfig) { c.sanitize = enabled }
}

// WithWarnings sets where unknown extension names and undecodable front
// matter are reported.
func WithWarnings(w io.Writer) EngineOption {
	return func(c *engineConfig) { c.warnings = w }
}

// NewEngine creates an Engine with the base extension set, the requested
// extensions and the injected resolvers.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := engineConfig{warnings: io.Discard}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.warnings == nil {
		cfg.warnings = io.Discard
	}

	known, unknown := resolveExtensions(append(append([]string(nil), BaseExtensions...), cfg.extensions...))
	for _, name := range unknown {
		_, _ = fmt.Fprintf(cfg.warnings, "warning: unknown markdown extension %q ignored%s\n",
			name, hints.ForUnknownExtension(ExtensionNames()))
	}

	extenders := []goldmark.Extender{
		extension.Table,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // styled by the .codehilite rules of the stylesheet
			),
			highlighting.WithGuessLanguage(true),
			highlighting.WithWrapperRenderer(codehiliteWrapper),
		),
	}
	e := &Engine{warnings: cfg.warnings}
	for _, name := range known {
		ext := registry[name]
		extenders = append(extenders, ext.extenders...)
	}

	e.md = goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&resolveTransformer{links: cfg.links, images: cfg.images}, resolverPriority),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // wiki pages may embed raw HTML
		),
	)

	if cfg.sanitize {
		e.sanitizer = newSanitizer()
	}
	return e
}

// Convert renders a markdown body to an HTML fragment. Resolver errors abort
// the conversion. The context is checked before and after rendering;
// Goldmark itself cannot be interrupted.
func (e *Engine) Convert(ctx context.Context, body string) (*Rendered, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(body), &buf, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if err := resolveError(pc); err != nil {
		return nil, err
	}

	out := buf.String()
	if e.sanitizer != nil {
		out = e.sanitizer.Sanitize(out)
	}

	meta, err := frontMatterMetadata(pc)
	if err != nil {
		_, _ = fmt.Fprintf(e.warnings, "warning: %v\n", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Rendered{HTML: out, Meta: meta}, nil
}

// pageMatter is the subset of front matter used for placeholders.
type pageMatter struct {
	Title *string `yaml:"title" toml:"title"`
	Date  *string `yaml:"date" toml:"date"`
}

// frontMatterMetadata decodes title and date from front matter, if the
// meta extension found any. Undecodable front matter yields empty
// Metadata and an error.
func frontMatterMetadata(pc parser.Context) (Metadata, error) {
	var meta Metadata

	data := frontmatter.Get(pc)
	if data == nil {
		return meta, nil
	}

	var fm pageMatter
	if err := data.Decode(&fm); err != nil {
		return meta, fmt.Errorf("front matter ignored: %w", err)
	}
	if fm.Title != nil {
		meta.Title, meta.HasTitle = *fm.Title, true
	}
	if fm.Date != nil {
		meta.Date, meta.HasDate = *fm.Date, true
	}
	return meta, nil
}

// codehiliteWrapper wraps highlighted blocks in the container the default
// stylesheet targets. Blocks that could not be highlighted still need
// their own pre and code elements.
func codehiliteWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="codehilite">`)
		if !c.Highlighted() {
			_, _ = w.WriteString("<pre><code>")
		}
		return
	}
	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}
