// Package config parses conversion options from the command-line JSON
// string and from an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-vimwiki2html/internal/dateutil"
	"github.com/alnah/go-vimwiki2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrOptionsParse   = errors.New("failed to parse options")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidOption  = errors.New("invalid option value")
)

// Field length limits.
const (
	MaxExtensionsLength = 1000 // comma-separated extension names
	MaxCSSFilesLength   = 4096 // comma-separated src[:dest] pairs
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "VIMWIKI2HTML_CONFIG"

// configDirName is the directory under the user config dir searched for config.yaml.
const configDirName = "vimwiki2html"

// Options holds conversion options as read from one source.
// Nil fields were not set by that source.
type Options struct {
	MarkdownExtensions *string `yaml:"markdown_extensions"`
	AutoIndex          *bool   `yaml:"auto_index"`
	CSSFiles           *string `yaml:"css_files"`
	CopyImages         *bool   `yaml:"copy_images"`
	DateFormat         *string `yaml:"date_format"`
	SanitizeHTML       *bool   `yaml:"sanitize_html"`
}

// ParseOptions decodes the JSON options string passed on the command line.
// An empty or blank string yields empty Options. Unknown keys are ignored.
func ParseOptions(raw string) (*Options, error) {
	var opts Options
	if strings.TrimSpace(raw) == "" {
		return &opts, nil
	}

	if err := yamlutil.UnmarshalJSONObject([]byte(raw), &opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionsParse, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// LoadConfig reads a YAML config file. Unknown keys are rejected so typos
// surface instead of being silently ignored.
func LoadConfig(path string) (*Options, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var opts Options
	if len(strings.TrimSpace(string(data))) == 0 {
		return &opts, nil
	}
	if err := yamlutil.UnmarshalStrict(data, &opts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// UserDirFunc returns the user config directory, as os.UserConfigDir does.
type UserDirFunc func() (string, error)

// FindConfig returns the config file to load. An explicit path must exist.
// Without one, {userDir}/vimwiki2html/config.yaml (or .yml) is used when
// present. Returns "" when no config file applies.
func FindConfig(explicit string, userDir UserDirFunc) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		return explicit, nil
	}

	if userDir == nil {
		return "", nil
	}
	userConfigDir, err := userDir()
	if err != nil || userConfigDir == "" {
		return "", nil
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(userConfigDir, configDirName, "config"+ext)
		if fileExists(path) {
			return path, nil
		}
	}
	return "", nil
}

// DefaultPath returns {userDir}/vimwiki2html/config.yaml, or "" when the
// user config directory is unknown.
func DefaultPath(userDir UserDirFunc) string {
	if userDir == nil {
		return ""
	}
	userConfigDir, err := userDir()
	if err != nil || userConfigDir == "" {
		return ""
	}
	return filepath.Join(userConfigDir, configDirName, "config.yaml")
}

// Merge returns a copy of o with every field set in over taking precedence.
func (o *Options) Merge(over *Options) *Options {
	merged := Options{}
	if o != nil {
		merged = *o
	}
	if over == nil {
		return &merged
	}

	if over.MarkdownExtensions != nil {
		merged.MarkdownExtensions = over.MarkdownExtensions
	}
	if over.AutoIndex != nil {
		merged.AutoIndex = over.AutoIndex
	}
	if over.CSSFiles != nil {
		merged.CSSFiles = over.CSSFiles
	}
	if over.CopyImages != nil {
		merged.CopyImages = over.CopyImages
	}
	if over.DateFormat != nil {
		merged.DateFormat = over.DateFormat
	}
	if over.SanitizeHTML != nil {
		merged.SanitizeHTML = over.SanitizeHTML
	}
	return &merged
}

// Validate checks field lengths and the date format.
func (o *Options) Validate() error {
	if err := validateLength("markdown_extensions", o.MarkdownExtensions, MaxExtensionsLength); err != nil {
		return err
	}
	if err := validateLength("css_files", o.CSSFiles, MaxCSSFilesLength); err != nil {
		return err
	}
	if err := validateLength("date_format", o.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}
	if o.DateFormat != nil {
		if err := dateutil.ValidateFormat(*o.DateFormat); err != nil {
			return fmt.Errorf("%w: date_format: %v", ErrInvalidOption, err)
		}
	}
	return nil
}

// String returns the value or def when unset.
func String(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// Bool returns the value or def when unset.
func Bool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func validateLength(field string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	if len(*value) > maxLen {
		return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, field, len(*value), maxLen)
	}
	return nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
