package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrReadSource indicates the wiki page could not be read.
var ErrReadSource = errors.New("failed to read source")

// Directive tokens recognized at the start of a line.
const (
	DirectiveNoHTML   = "%nohtml"
	DirectiveTitle    = "%title"
	DirectiveDate     = "%date"
	DirectiveTemplate = "%template"
)

// Document is a wiki page with its directive lines removed.
type Document struct {
	Body string // markdown with original line order and terminators

	Title       string
	HasTitle    bool
	Date        string
	HasDate     bool
	Template    string
	HasTemplate bool

	// NoHTML is set when a %nohtml line was found. Reading stops there and
	// Body is incomplete.
	NoHTML bool
}

// StripDirectives reads a wiki page and separates directive lines from the
// markdown body. Directives are matched by prefix, in line order; a
// repeated directive overwrites the earlier value. Every other line,
// including blank ones, is kept verbatim.
func StripDirectives(r io.Reader) (*Document, error) {
	doc := &Document{}
	var body strings.Builder

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if stop := doc.apply(line, &body); stop {
				doc.Body = body.String()
				return doc, nil
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
		}
	}

	doc.Body = body.String()
	return doc, nil
}

// apply records line as a directive or appends it to body.
// Returns true when processing must stop.
func (d *Document) apply(line string, body *strings.Builder) bool {
	switch {
	case strings.HasPrefix(line, DirectiveNoHTML):
		d.NoHTML = true
		return true
	case strings.HasPrefix(line, DirectiveTitle):
		d.Title, d.HasTitle = directiveValue(line, DirectiveTitle), true
	case strings.HasPrefix(line, DirectiveDate):
		d.Date, d.HasDate = directiveValue(line, DirectiveDate), true
	case strings.HasPrefix(line, DirectiveTemplate):
		d.Template, d.HasTemplate = directiveValue(line, DirectiveTemplate), true
	default:
		body.WriteString(line)
	}
	return false
}

// directiveValue returns the rest of line after token, without one leading
// space and without one trailing line terminator. A last line with no
// terminator keeps its full remainder.
func directiveValue(line, token string) string {
	v := strings.TrimPrefix(line[len(token):], " ")
	if strings.HasSuffix(v, "\r\n") {
		return v[:len(v)-2]
	}
	return strings.TrimSuffix(v, "\n")
}
