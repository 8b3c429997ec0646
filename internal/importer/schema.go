package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a plan document file. The plan
// fields sit at the top level next to short_id.
type ImportSchema struct {
	ShortID     string `json:"short_id" yaml:"short_id"`
	domain.Plan `yaml:",inline"`
}

// Format is a plan document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported plan file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
}

// LoadImportSchema reads and parses a plan document file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, format)
}

// ParseImportSchema decodes a plan document. Unknown fields are rejected.
func ParseImportSchema(data []byte, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, errors.New("parsing import file: unexpected data after the plan document")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&schema); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown plan format %q", format)
	}
	return &schema, nil
}

// FromPlan builds the import schema for an existing plan.
func FromPlan(shortID string, p *domain.Plan) *ImportSchema {
	return &ImportSchema{ShortID: shortID, Plan: *p}
}

// Encode writes schema to w in the given format. JSON output is indented.
func Encode(w io.Writer, schema *ImportSchema, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding plan json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding plan yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding plan yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown plan format %q", format)
	}
	return nil
}
