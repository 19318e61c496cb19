package vimwiki2html

import (
	"fmt"
	"io"
	"time"
)

// SyntaxMarkdown is the only wiki syntax that can be converted.
const SyntaxMarkdown = "markdown"

// ValidateSyntax returns ErrUnsupportedSyntax unless syntax is SyntaxMarkdown.
func ValidateSyntax(syntax string) error {
	if syntax != SyntaxMarkdown {
		return fmt.Errorf("%w: %q (only %q is supported)", ErrUnsupportedSyntax, syntax, SyntaxMarkdown)
	}
	return nil
}

// Input describes one page conversion, as passed by vimwiki.
type Input struct {
	Syntax    string // wiki syntax; must be SyntaxMarkdown
	InputFile string // wiki page
	OutputDir string // directory receiving {stem}.html

	// Template lookup: {TemplateDir}/{name}{TemplateExt}, where name is the
	// %template directive value or TemplateName.
	TemplateDir  string
	TemplateName string
	TemplateExt  string

	// RootPath is the relative path from OutputDir to the output root,
	// e.g. "../". Empty when the page lives in the root.
	RootPath string

	Options Options
}

// Result reports what a conversion did.
type Result struct {
	// OutputPath is the written page. Empty when Skipped.
	OutputPath string

	// Skipped is set for pages carrying a %nohtml directive.
	Skipped bool

	// Template is the template file used, empty for the built-in one.
	Template            string
	UsedDefaultTemplate bool

	// StylesheetPath is the default stylesheet location when the built-in
	// template was used. StylesheetWritten is false if it was current.
	StylesheetPath    string
	StylesheetWritten bool

	// CopiedImages and CopiedCSS list destination files actually written.
	CopiedImages []string
	CopiedCSS    []string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	now      func() time.Time
	warnings io.Writer
	verbose  io.Writer
}

// WithNow sets the clock used for the default %date% value.
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("vimwiki2html: WithNow requires a non-nil clock")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithWarningWriter sets where non-fatal problems are reported: missing
// templates, unknown markdown extensions and unreadable front matter.
func WithWarningWriter(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.warnings = w
	}
}

// WithVerboseWriter enables a per-stage timing report on w.
func WithVerboseWriter(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.verbose = w
	}
}
