package main

import (
	"errors"
	"os"

	vimwiki2html "github.com/alnah/go-vimwiki2html"
	"github.com/alnah/go-vimwiki2html/internal/assets"
	"github.com/alnah/go-vimwiki2html/internal/config"
	"github.com/alnah/go-vimwiki2html/internal/pipeline"
)

// Exit codes for the vimwiki2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion, or a %nohtml page
	ExitGeneral = 1 // Unsupported syntax and unexpected errors
	ExitUsage   = 2 // Invalid arguments, options or config
	ExitIO      = 3 // Missing input, image or stylesheet; unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, vimwiki2html.ErrUnsupportedSyntax) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrOptionsParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidOption) ||
		errors.Is(err, vimwiki2html.ErrMissingInput) ||
		errors.Is(err, vimwiki2html.ErrInvalidCSSFile) ||
		errors.Is(err, vimwiki2html.ErrInvalidDateFormat) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, vimwiki2html.ErrReadInput) ||
		errors.Is(err, vimwiki2html.ErrWriteOutput) ||
		errors.Is(err, vimwiki2html.ErrCSSCopy) ||
		errors.Is(err, pipeline.ErrImageCopy) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, assets.ErrStylesheetWrite) {
		return ExitIO
	}

	return ExitGeneral
}
