package pipeline

import "strings"

// LinkResolver rewrites the destination of an inline link.
type LinkResolver interface {
	ResolveLink(href string) string
}

// WikiLinkResolver maps wiki page links to the HTML files vimwiki writes.
//
// Rules, first match wins:
//  1. href starting with "http" is external and kept.
//  2. href ending with ".html" is kept.
//  3. With AutoIndex, href ending with "/" gets "index.html".
//  4. href not ending with "/" gets ".html".
//  5. Anything else (a "/" suffix without AutoIndex) is kept.
type WikiLinkResolver struct {
	AutoIndex bool
}

// ResolveLink applies the wiki link rules. It never touches the filesystem.
func (r WikiLinkResolver) ResolveLink(href string) string {
	switch {
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasSuffix(href, ".html"):
		return href
	case strings.HasSuffix(href, "/"):
		if r.AutoIndex {
			return href + "index.html"
		}
		return href
	default:
		return href + ".html"
	}
}

// Compile-time interface check.
var _ LinkResolver = WikiLinkResolver{}
