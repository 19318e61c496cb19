package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates wrong command-line arguments.
var ErrUsage = errors.New("invalid arguments")

// positionalNames are the arguments passed by vimwiki's custom_wiki2html
// hook, in order.
var positionalNames = []string{
	"force",
	"syntax",
	"extension",
	"output_dir",
	"input_file",
	"css_file",
	"template_path",
	"template_default",
	"template_ext",
	"root_path",
	"options",
}

// cliArgs holds parsed flags and positional arguments.
type cliArgs struct {
	help    bool
	version bool
	verbose bool
	config  string

	force           string // accepted for compatibility, always forced
	syntax          string
	extension       string // wiki file extension, unused
	outputDir       string
	inputFile       string
	cssFile         string // wiki css_name, unused
	templatePath    string
	templateDefault string
	templateExt     string
	rootPath        string // "-" on the command line means empty
	options         string
}

// parseArgs parses flags followed by the eleven positional arguments.
// Flags must come first: positionals such as "-" are taken verbatim.
func parseArgs(args []string, errOut io.Writer) (*cliArgs, error) {
	cli := &cliArgs{}

	fs := flag.NewFlagSet("vimwiki2html", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.SetInterspersed(false)
	fs.Usage = func() {}
	fs.BoolVarP(&cli.help, "help", "h", false, "show help")
	fs.BoolVar(&cli.version, "version", false, "show version")
	fs.BoolVarP(&cli.verbose, "verbose", "v", false, "report stage timing and copied files")
	fs.StringVarP(&cli.config, "config", "c", "", "config file path")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.help = true
			return cli, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if cli.help || cli.version {
		return cli, nil
	}

	pos := fs.Args()
	if len(pos) != len(positionalNames) {
		return nil, fmt.Errorf("%w: expected %d positional arguments, got %d", ErrUsage, len(positionalNames), len(pos))
	}

	cli.force = pos[0]
	cli.syntax = pos[1]
	cli.extension = pos[2]
	cli.outputDir = pos[3]
	cli.inputFile = pos[4]
	cli.cssFile = pos[5]
	cli.templatePath = pos[6]
	cli.templateDefault = pos[7]
	cli.templateExt = pos[8]
	cli.rootPath = pos[9]
	cli.options = pos[10]

	if cli.rootPath == "-" {
		cli.rootPath = ""
	}
	return cli, nil
}
