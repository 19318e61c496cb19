package pipeline

import "github.com/microcosm-cc/bluemonday"

// newSanitizer returns the policy used with sanitize_html: user generated
// content rules, keeping class and id so highlighted code and heading
// anchors still match the stylesheet.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "id").Globally()
	return p
}
