package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses arguments, runs the conversion and returns the exit code.
func runMain(args []string, env *Environment) int {
	cli, err := parseArgs(args, env.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	switch {
	case cli.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case cli.version:
		_, _ = fmt.Fprintf(env.Stdout, "vimwiki2html %s\n", Version)
		return ExitSuccess
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(verboseLogger(cli.verbose, env.Stderr)))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, cli, env); err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "vimwiki2html: %v%s\n", err, hintFor(err, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// verboseLogger returns a printf-style logger writing to w, or a no-op.
func verboseLogger(verbose bool, w io.Writer) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}
}
