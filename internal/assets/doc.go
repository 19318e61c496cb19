// Package assets provides the page templates and the built-in stylesheet.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in default template and stylesheet (go:embed)
//	    ├── FilesystemLoader  - {dir}/{name}{ext} from the wiki template directory
//	    └── TemplateResolver  - custom-first, falls back to the built-in template
//
// The built-in template and stylesheet are immutable constants compiled into
// the binary. The stylesheet is only written to disk when the built-in
// template is used, see WriteDefaultStylesheet.
//
// # Security
//
// Template names are validated to reject path separators.
// FilesystemLoader resolves symlinks and verifies paths stay within its
// directory.
package assets
