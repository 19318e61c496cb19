package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-vimwiki2html/internal/fileutil"
)

// ErrImageCopy indicates a referenced image could not be copied.
var ErrImageCopy = errors.New("failed to copy image")

// ImageResolver rewrites the destination of an image and may perform side
// effects for it. An error aborts the conversion.
type ImageResolver interface {
	ResolveImage(href string) (string, error)
}

// ImageCopier copies images referenced by a wiki page into the output tree,
// keeping their path relative to the page. The href itself is returned
// unchanged. Copies are skipped when the destination is up to date.
type ImageCopier struct {
	SourceDir string // directory of the wiki page
	OutputDir string // directory of the generated HTML page

	copied []string
}

// NewImageCopier creates an ImageCopier for a page in sourceDir rendered
// into outputDir.
func NewImageCopier(sourceDir, outputDir string) *ImageCopier {
	return &ImageCopier{SourceDir: sourceDir, OutputDir: outputDir}
}

// ResolveImage copies SourceDir/href to OutputDir/href when the copy is
// stale. Remote references (URLs, data URIs) and absolute paths name no
// file under the wiki and are returned untouched.
func (c *ImageCopier) ResolveImage(href string) (string, error) {
	rel, ok := localImagePath(href)
	if !ok {
		return href, nil
	}

	src := filepath.Join(c.SourceDir, rel)
	dst := filepath.Join(c.OutputDir, rel)

	copied, err := fileutil.CopyIfNewer(src, dst)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrImageCopy, src, err)
	}
	if copied {
		c.copied = append(c.copied, dst)
	}
	return href, nil
}

// Copied returns the destinations written so far.
func (c *ImageCopier) Copied() []string {
	return append([]string(nil), c.copied...)
}

// localImagePath converts an image href into a relative filesystem path.
// Percent-encoded hrefs are decoded; an undecodable href is used as is.
func localImagePath(href string) (string, bool) {
	if href == "" || fileutil.IsRemote(href) || strings.HasPrefix(href, "#") {
		return "", false
	}

	p := href
	if decoded, err := url.PathUnescape(href); err == nil {
		p = decoded
	}

	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) || strings.HasPrefix(p, string(filepath.Separator)) {
		return "", false
	}
	return p, true
}

// Compile-time interface check.
var _ ImageResolver = (*ImageCopier)(nil)
