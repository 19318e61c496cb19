package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/toc"
)

// TOCMarker is the paragraph replaced by the table of contents.
const TOCMarker = "[TOC]"

// tocPriority runs the transformer after the resolvers, so the generated
// #fragment links are not rewritten as wiki links.
const tocPriority = 5

// tocTransformer replaces every [TOC] paragraph with a list of the
// document headings. Without headings the marker is removed.
type tocTransformer struct{}

// Transform implements parser.ASTTransformer.
func (tocTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()

	var markers []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindParagraph {
			return ast.WalkContinue, nil
		}
		if isTOCMarker(n, src) {
			markers = append(markers, n)
		}
		return ast.WalkSkipChildren, nil
	})
	if len(markers) == 0 {
		return
	}

	tree, err := toc.Inspect(doc, src)
	for _, marker := range markers {
		parent := marker.Parent()
		var list ast.Node
		if err == nil {
			list = toc.RenderList(tree)
		}
		if list == nil {
			parent.RemoveChild(parent, marker)
			continue
		}
		list.SetAttributeString("class", []byte("toc"))
		parent.ReplaceChild(parent, marker, list)
	}
}

// isTOCMarker reports whether paragraph p holds only the marker text.
func isTOCMarker(p ast.Node, src []byte) bool {
	var buf bytes.Buffer
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			return false
		}
		buf.Write(t.Segment.Value(src))
	}
	return string(bytes.TrimSpace(buf.Bytes())) == TOCMarker
}

// tocExtension enables [TOC] replacement.
type tocExtension struct{}

// Extend implements goldmark.Extender.
func (tocExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(tocTransformer{}, tocPriority),
	))
}

// Compile-time interface check.
var _ parser.ASTTransformer = tocTransformer{}
