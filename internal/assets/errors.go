package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrStyleNotFound indicates the requested built-in style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the template name contains path
	// separators or is otherwise unusable as a file name.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the template directory is not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading a template.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the
	// template directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrStylesheetWrite indicates the default stylesheet could not be written.
	ErrStylesheetWrite = errors.New("failed to write default stylesheet")
)
