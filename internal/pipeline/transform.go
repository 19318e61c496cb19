package pipeline

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// resolveErrKey holds the first resolver error raised while transforming.
var resolveErrKey = parser.NewContextKey()

// resolverPriority orders the transformer after extension transformers.
// Lower priorities run later.
const resolverPriority = 10

// resolveTransformer rewrites link and image destinations in the parsed
// document. Autolinks and raw HTML are left alone.
type resolveTransformer struct {
	links  LinkResolver
	images ImageResolver
}

// Transform implements parser.ASTTransformer.
func (t *resolveTransformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Link:
			if t.links != nil {
				node.Destination = []byte(t.links.ResolveLink(string(node.Destination)))
			}
		case *ast.Image:
			if t.images != nil {
				dest, err := t.images.ResolveImage(string(node.Destination))
				if err != nil {
					pc.Set(resolveErrKey, err)
					return ast.WalkStop, nil
				}
				node.Destination = []byte(dest)
			}
		}
		return ast.WalkContinue, nil
	})
}

// resolveError returns the error recorded during Transform, if any.
func resolveError(pc parser.Context) error {
	err, _ := pc.Get(resolveErrKey).(error)
	return err
}

// Compile-time interface check.
var _ parser.ASTTransformer = (*resolveTransformer)(nil)
