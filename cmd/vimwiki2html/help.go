package main

import "io"

// usageText holds literal % directives; keep it out of printf-style calls.
const usageText = `Usage: vimwiki2html [flags] force syntax extension output_dir input_file css_file
                    template_path template_default template_ext root_path options

Convert one vimwiki markdown page to HTML. Meant to be set as the wiki's
custom_wiki2html converter; vimwiki passes the arguments in this order.

Arguments:
  force             Ignored, conversion always happens
  syntax            Wiki syntax, must be "markdown"
  extension         Wiki file extension, ignored
  output_dir        Directory receiving the HTML page
  input_file        Wiki page to convert
  css_file          Wiki stylesheet, ignored (see css_files)
  template_path     Directory holding page templates
  template_default  Template name used without %template
  template_ext      Template file extension, e.g. .tpl
  root_path         Relative path from output_dir to the output root ("-" = none)
  options           JSON object, may be empty

Options (JSON keys):
  markdown_extensions  Comma-separated extensions, e.g. "toc,footnotes"
  auto_index           Links ending with / get index.html (default false)
  css_files            Comma-separated src[:dest] copied to the output root
  copy_images          Copy referenced images (default true)
  date_format          Default %date% format (default YYYY-MM-DD)
                       Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
                       Presets (case-insensitive): iso, european, us, long
  sanitize_html        Filter the generated HTML (default false)

Flags:
  -c, --config <path>  Config file (default $VIMWIKI2HTML_CONFIG, then
                       {user config dir}/vimwiki2html/config.yaml)
  -v, --verbose        Report stage timing and copied files
  -h, --help           Show this help
      --version        Show version

Page directives: %nohtml, %title <text>, %date <text>, %template <name>
`

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	_, _ = io.WriteString(w, usageText)
}
