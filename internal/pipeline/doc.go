// Package pipeline implements the wiki page conversion pipeline.
//
// Stages, in the order the orchestrator runs them:
//   - Directive stripping (%nohtml, %title, %date, %template lines)
//   - Markdown to HTML conversion via Goldmark, with injected link and
//     image resolvers applied to the parsed AST
//   - Optional HTML sanitizing via bluemonday
//   - Placeholder substitution into the page template
//
// Link and image policies are plain interfaces (LinkResolver,
// ImageResolver) so the Markdown engine does not depend on wiki
// conventions or on the filesystem. They apply to every link and image
// node, inline and reference forms alike; autolinks and raw HTML are
// left as written.
package pipeline
