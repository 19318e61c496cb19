// Package vimwiki2html converts a single vimwiki markdown page to HTML.
//
// It is meant to be driven by vimwiki's custom_wiki2html hook, once per
// page, but the conversion is available as a library too.
//
// # Quick Start
//
//	conv := vimwiki2html.NewConverter()
//	result, err := conv.Convert(ctx, vimwiki2html.Input{
//	    Syntax:       "markdown",
//	    InputFile:    "/home/me/wiki/Tasks.md",
//	    OutputDir:    "/home/me/wiki_html",
//	    TemplateDir:  "/home/me/wiki/templates",
//	    TemplateName: "default",
//	    TemplateExt:  ".tpl",
//	    Options:      vimwiki2html.DefaultOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath) // /home/me/wiki_html/Tasks.html
//
// # Conversion Pipeline
//
// Convert runs these stages in order:
//
//  1. Directive stripping (%nohtml, %title, %date, %template)
//  2. Markdown to HTML via Goldmark; links are rewritten to .html targets
//     and referenced images are copied to the output tree
//  3. Template lookup, falling back to the built-in template and stylesheet
//  4. Placeholder substitution (%root_path%, %title%, %date%, %content%)
//  5. Atomic write of {output_dir}/{page}.html
//  6. Copy of the css_files stylesheets to the output root
//
// A page with a %nohtml line produces no output: Result.Skipped is set.
//
// Image and stylesheet copies only happen when the destination is missing
// or older than the source, so repeated runs over an unchanged wiki do not
// write anything but the page itself.
package vimwiki2html
