package pipeline

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attrValues parses an HTML fragment and returns the value of attr on every
// element named tag, in document order.
func attrValues(t *testing.T, fragment, tag, attr string) []string {
	t.Helper()

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		t.Fatalf("failed to parse HTML fragment: %v", err)
	}

	var values []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			for _, a := range n.Attr {
				if a.Key == attr {
					values = append(values, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return values
}

// hrefs returns the href of every anchor element in fragment.
func hrefs(t *testing.T, fragment string) []string {
	t.Helper()
	return attrValues(t, fragment, "a", "href")
}
