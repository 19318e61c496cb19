package main

import (
	"fmt"

	vimwiki2html "github.com/alnah/go-vimwiki2html"
	"github.com/alnah/go-vimwiki2html/internal/config"
)

// envConfigName is the variable holding an explicit config file path.
const envConfigName = config.EnvConfigPath

// loadOptions resolves the conversion options. Precedence: options JSON,
// then the config file, then defaults. The config file is the --config
// flag, else $VIMWIKI2HTML_CONFIG, else the user config dir when present.
// The syntax is checked after the options JSON and before the config file.
func loadOptions(cli *cliArgs, env *Environment) (vimwiki2html.Options, error) {
	fromJSON, err := config.ParseOptions(cli.options)
	if err != nil {
		return vimwiki2html.Options{}, err
	}
	if err := vimwiki2html.ValidateSyntax(cli.syntax); err != nil {
		return vimwiki2html.Options{}, err
	}

	explicit := cli.config
	if explicit == "" {
		explicit = env.Getenv(envConfigName)
	}
	path, err := config.FindConfig(explicit, env.UserConfigDir)
	if err != nil {
		return vimwiki2html.Options{}, err
	}

	var fromFile *config.Options
	if path != "" {
		if fromFile, err = config.LoadConfig(path); err != nil {
			return vimwiki2html.Options{}, err
		}
	}

	return resolveOptions(fromFile.Merge(fromJSON))
}

// resolveOptions applies defaults to the merged option sources.
func resolveOptions(o *config.Options) (vimwiki2html.Options, error) {
	opts := vimwiki2html.DefaultOptions()
	if o == nil {
		return opts, nil
	}

	opts.MarkdownExtensions = vimwiki2html.SplitExtensions(config.String(o.MarkdownExtensions, ""))
	opts.AutoIndex = config.Bool(o.AutoIndex, opts.AutoIndex)
	opts.CopyImages = config.Bool(o.CopyImages, opts.CopyImages)
	opts.DateFormat = config.String(o.DateFormat, opts.DateFormat)
	opts.SanitizeHTML = config.Bool(o.SanitizeHTML, opts.SanitizeHTML)

	css, err := vimwiki2html.ParseCSSFiles(config.String(o.CSSFiles, ""))
	if err != nil {
		return vimwiki2html.Options{}, fmt.Errorf("%w: css_files: %w", config.ErrInvalidOption, err)
	}
	opts.CSSFiles = css

	return opts, nil
}
