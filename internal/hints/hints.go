// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// defaultPath is the user config location used when envVar is unset.
func ForConfigNotFound(envVar, defaultPath string) string {
	hints := []string{"check " + envVar + " points to an existing YAML file"}
	if defaultPath != "" {
		hints = append(hints, "unset it to use "+defaultPath)
	}
	return formatHints(hints)
}

// ForOptionsJSON returns a hint for malformed options JSON.
func ForOptionsJSON() string {
	return format(`options must be a JSON object, e.g. {"auto_index": true}`)
}

// ForUnsupportedSyntax returns a hint for non-markdown wikis.
func ForUnsupportedSyntax() string {
	return format("set 'syntax': 'markdown' for this wiki in g:vimwiki_list")
}

// ForMissingImage returns hints for image sources that cannot be copied.
func ForMissingImage() string {
	return formatHints([]string{
		"image paths are resolved relative to the wiki page",
		`set "copy_images": false to skip copying`,
	})
}

// ForMissingCSS returns a hint for css_files sources that cannot be copied.
func ForMissingCSS() string {
	return format("use absolute paths in css_files")
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownExtension lists the markdown extension names that are understood.
func ForUnknownExtension(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
