package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	vimwiki2html "github.com/alnah/go-vimwiki2html"
	"github.com/alnah/go-vimwiki2html/internal/config"
	"github.com/alnah/go-vimwiki2html/internal/hints"
	"github.com/alnah/go-vimwiki2html/internal/pipeline"
)

// Converter is the interface for the page conversion.
type Converter interface {
	Convert(ctx context.Context, in vimwiki2html.Input) (*vimwiki2html.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*vimwiki2html.Converter)(nil)

// run converts the page described by cli.
func run(ctx context.Context, cli *cliArgs, env *Environment) error {
	opts, err := loadOptions(cli, env)
	if err != nil {
		return err
	}

	convOpts := []vimwiki2html.Option{
		vimwiki2html.WithNow(env.Now),
		vimwiki2html.WithWarningWriter(env.Stderr),
	}
	if cli.verbose {
		convOpts = append(convOpts, vimwiki2html.WithVerboseWriter(env.Stderr))
	}

	return convert(ctx, vimwiki2html.NewConverter(convOpts...), cli, opts, env)
}

// convert runs one conversion and reports it when verbose.
func convert(ctx context.Context, conv Converter, cli *cliArgs, opts vimwiki2html.Options, env *Environment) error {
	res, err := conv.Convert(ctx, vimwiki2html.Input{
		Syntax:       cli.syntax,
		InputFile:    cli.inputFile,
		OutputDir:    cli.outputDir,
		TemplateDir:  cli.templatePath,
		TemplateName: cli.templateDefault,
		TemplateExt:  cli.templateExt,
		RootPath:     cli.rootPath,
		Options:      opts,
	})
	if err != nil {
		return err
	}

	if cli.verbose {
		printReport(env.Stderr, res)
	}
	return nil
}

// printReport lists what a conversion wrote.
func printReport(w io.Writer, res *vimwiki2html.Result) {
	if res.Skipped {
		_, _ = fmt.Fprintf(w, "skipped: %s\n", pipeline.DirectiveNoHTML)
		return
	}
	_, _ = fmt.Fprintf(w, "wrote %s\n", res.OutputPath)
	if res.StylesheetWritten {
		_, _ = fmt.Fprintf(w, "wrote %s\n", res.StylesheetPath)
	}
	for _, path := range res.CopiedImages {
		_, _ = fmt.Fprintf(w, "copied %s\n", path)
	}
	for _, path := range res.CopiedCSS {
		_, _ = fmt.Fprintf(w, "copied %s\n", path)
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(envConfigName, config.DefaultPath(env.UserConfigDir))
	case errors.Is(err, config.ErrOptionsParse):
		return hints.ForOptionsJSON()
	case errors.Is(err, vimwiki2html.ErrUnsupportedSyntax):
		return hints.ForUnsupportedSyntax()
	case errors.Is(err, pipeline.ErrImageCopy):
		return hints.ForMissingImage()
	case errors.Is(err, vimwiki2html.ErrCSSCopy):
		return hints.ForMissingCSS()
	case errors.Is(err, vimwiki2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
