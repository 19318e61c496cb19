package vimwiki2html

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-vimwiki2html/internal/assets"
	"github.com/alnah/go-vimwiki2html/internal/dateutil"
	"github.com/alnah/go-vimwiki2html/internal/fileutil"
	"github.com/alnah/go-vimwiki2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.LinkResolver  = pipeline.WikiLinkResolver{}
	_ pipeline.ImageResolver = (*pipeline.ImageCopier)(nil)
)

// Converter drives the page conversion pipeline.
// A Converter holds no per-page state and may be reused.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter. By default the clock is time.Now and
// warnings are discarded.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			now:      time.Now,
			warnings: io.Discard,
			verbose:  io.Discard,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.warnings == nil {
		c.cfg.warnings = io.Discard
	}
	if c.cfg.verbose == nil {
		c.cfg.verbose = io.Discard
	}
	return c
}

// Convert converts one wiki page and writes {OutputDir}/{stem}.html.
// The page is written only once fully rendered. The context is checked
// between stages; a cancelled conversion writes nothing further.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, in Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(in); err != nil {
		return nil, err
	}

	// Engine first: unknown extension warnings come out even for %nohtml pages.
	copier := c.newImageCopier(in)
	engine := c.newEngine(in.Options, copier)

	stage := c.startStage("directives")
	doc, err := readPage(in.InputFile)
	if err != nil {
		return nil, err
	}
	stage.done()
	if doc.NoHTML {
		return &Result{Skipped: true}, nil
	}

	stage = c.startStage("markdown")
	rendered, err := engine.Convert(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", in.InputFile, err)
	}
	stage.done()

	res := &Result{}
	if copier != nil {
		res.CopiedImages = copier.Copied()
	}

	stage = c.startStage("template")
	placeholders, err := c.placeholders(in, doc, rendered)
	if err != nil {
		return nil, err
	}
	tpl, err := c.resolveTemplate(in, doc, res)
	if err != nil {
		return nil, err
	}
	page := pipeline.RenderTemplate(tpl.Content, placeholders)
	stage.done()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = c.startStage("write")
	res.OutputPath, err = writePage(in, page)
	if err != nil {
		return nil, err
	}
	stage.done()

	stage = c.startStage("css")
	res.CopiedCSS, err = copyStylesheets(ctx, rootDir(in), in.Options.CSSFiles)
	if err != nil {
		return res, err
	}
	stage.done()

	return res, nil
}

// validateInput checks the fields Convert cannot work without.
func (c *Converter) validateInput(in Input) error {
	if err := ValidateSyntax(in.Syntax); err != nil {
		return err
	}
	if in.InputFile == "" || in.OutputDir == "" {
		return ErrMissingInput
	}
	return in.Options.Validate()
}

// newImageCopier returns nil when images are not copied.
func (c *Converter) newImageCopier(in Input) *pipeline.ImageCopier {
	if !in.Options.CopyImages {
		return nil
	}
	return pipeline.NewImageCopier(filepath.Dir(in.InputFile), in.OutputDir)
}

// newEngine builds the markdown engine for one page.
func (c *Converter) newEngine(opts Options, copier *pipeline.ImageCopier) *pipeline.Engine {
	engineOpts := []pipeline.EngineOption{
		pipeline.WithLinkResolver(pipeline.WikiLinkResolver{AutoIndex: opts.AutoIndex}),
		pipeline.WithExtensions(opts.extensions()...),
		pipeline.WithSanitize(opts.SanitizeHTML),
		pipeline.WithWarnings(c.cfg.warnings),
	}
	// A nil *ImageCopier must not become a non-nil interface.
	if copier != nil {
		engineOpts = append(engineOpts, pipeline.WithImageResolver(copier))
	}
	return pipeline.NewEngine(engineOpts...)
}

// placeholders computes the defaults, applies page overrides and sets the
// rendered content.
func (c *Converter) placeholders(in Input, doc *pipeline.Document, rendered *pipeline.Rendered) (pipeline.Placeholders, error) {
	date, err := dateutil.FormatDate(c.cfg.now(), in.Options.DateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	p := pipeline.NewPlaceholders(in.RootPath, pageStem(in.InputFile), date)
	p.Apply(doc, rendered.Meta)
	p[pipeline.PlaceholderContent] = rendered.HTML
	return p, nil
}

// resolveTemplate finds the page template. When the file is missing the
// built-in template is used and the default stylesheet is written to the
// output root.
func (c *Converter) resolveTemplate(in Input, doc *pipeline.Document, res *Result) (*assets.Template, error) {
	name := in.TemplateName
	if doc.HasTemplate && doc.Template != "" {
		name = doc.Template
	}

	tpl, err := assets.NewTemplateResolver(in.TemplateDir, in.TemplateExt).Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	if !tpl.Builtin {
		res.Template = tpl.Path
		return tpl, nil
	}

	_, _ = fmt.Fprintf(c.cfg.warnings, "warning: template %s not found, using the built-in template\n", tpl.MissingPath)
	res.UsedDefaultTemplate = true

	res.StylesheetPath, res.StylesheetWritten, err = assets.WriteDefaultStylesheet(rootDir(in))
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

// readPage opens the wiki page and strips its directives.
func readPage(path string) (*pipeline.Document, error) {
	f, err := os.Open(path) // #nosec G304 -- page path comes from vimwiki
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := pipeline.StripDirectives(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	return doc, nil
}

// writePage writes the rendered page to {OutputDir}/{stem}.html.
func writePage(in Input, page string) (string, error) {
	if err := os.MkdirAll(in.OutputDir, fileutil.DirPermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	path := filepath.Join(in.OutputDir, pageStem(in.InputFile)+".html")
	if err := fileutil.WriteFileAtomic(path, []byte(page)); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return path, nil
}

// copyStylesheets copies each stylesheet under root when stale.
// Returns the destinations actually written.
func copyStylesheets(ctx context.Context, root string, files []CSSFile) ([]string, error) {
	var copied []string
	for _, css := range files {
		if err := ctx.Err(); err != nil {
			return copied, err
		}

		dst := css.DestPath(root)
		ok, err := fileutil.CopyIfNewer(css.Source, dst)
		if err != nil {
			return copied, fmt.Errorf("%w: %s: %w", ErrCSSCopy, css.Source, err)
		}
		if ok {
			copied = append(copied, dst)
		}
	}
	return copied, nil
}

// rootDir returns the output root: OutputDir joined with RootPath.
func rootDir(in Input) string {
	return filepath.Join(in.OutputDir, filepath.FromSlash(in.RootPath))
}

// pageStem returns the page file name without its extension.
func pageStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// stageTimer reports a pipeline stage duration on the verbose writer.
type stageTimer struct {
	w     io.Writer
	name  string
	start time.Time
}

func (c *Converter) startStage(name string) stageTimer {
	return stageTimer{w: c.cfg.verbose, name: name, start: time.Now()}
}

func (s stageTimer) done() {
	_, _ = fmt.Fprintf(s.w, "%-10s %s\n", s.name, time.Since(s.start).Round(time.Microsecond))
}
