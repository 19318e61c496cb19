// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON documents are valid YAML, so the same decoder serves the options
// string passed on the command line, the config file and page front matter.
package yamlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotJSONObject  = errors.New("yamlutil: input is not a JSON object")
	ErrInvalidJSON    = errors.New("yamlutil: invalid JSON")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalJSONObject decodes a JSON object. Unknown fields are ignored.
// The input must be strict JSON: unquoted keys, single quotes and trailing
// commas are rejected even though YAML would accept them. Fields are then
// mapped through the yaml tags shared with the config file.
func UnmarshalJSONObject(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotJSONObject
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := yaml.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
