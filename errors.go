package vimwiki2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnsupportedSyntax = errors.New("unsupported syntax")
	ErrMissingInput      = errors.New("input file and output directory are required")
	ErrReadInput         = errors.New("failed to read input file")
	ErrWriteOutput       = errors.New("failed to write output file")
	ErrCSSCopy           = errors.New("failed to copy stylesheet")
	ErrTemplate          = errors.New("template lookup failed")

	// Options validation errors.
	ErrInvalidCSSFile    = errors.New("invalid css_files entry")
	ErrInvalidDateFormat = errors.New("invalid date format")
)
