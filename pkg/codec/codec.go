// Package codec serializes mindmap documents for export, import and
// persistence.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-mindmap/pkg/frontmatter"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// ErrInvalidDocument indicates decoded data that is not a valid document.
var ErrInvalidDocument = errors.New("invalid document")

// Format is a text encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatMarkdown is an export-only outline.
	FormatMarkdown Format = "markdown"
)

// ErrExportOnly is returned when decoding a format that cannot be read back.
var ErrExportOnly = errors.New("format can only be exported")

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// FormatFromPath picks the format matching a file extension, defaulting
// to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	}
	return FormatJSON
}

// Encode writes doc in the given format. JSON output is indented.
// Markdown output is stamped with the current time.
func Encode(doc *models.Node, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatMarkdown:
		return []byte(frontmatter.Render(doc, time.Now())), nil
	case FormatJSON, "":
		return json.MarshalIndent(doc, "", "  ")
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (*models.Node, error) {
	var doc models.Node
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON, "":
		err = json.Unmarshal(data, &doc)
	case FormatMarkdown:
		if fm, _, perr := frontmatter.Parse(string(data)); perr == nil && fm != nil {
			return nil, fmt.Errorf("%w: %s outline of %q (%d nodes); import the JSON or YAML export instead",
				ErrExportOnly, format, fm.Title, fm.Nodes)
		}
		return nil, fmt.Errorf("%w: %s", ErrExportOnly, format)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := Normalize(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Normalize validates the tree structure of a freshly decoded document
// and coerces custom field values into their canonical types. It works in
// place and must only be used before the document is shared.
func Normalize(doc *models.Node) error {
	if err := tree.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var err error
	tree.Walk(doc, func(n *models.Node, _ int) bool {
		if err != nil || n.Metadata == nil {
			return err == nil
		}
		if n.Metadata.Status != "" && !n.Metadata.Status.Valid() {
			err = fmt.Errorf("%w: node %s has unknown status %q", ErrInvalidDocument, n.ID, n.Metadata.Status)
			return false
		}
		for k, v := range n.Metadata.CustomFields {
			nv, nerr := models.NormalizeFieldValue(v)
			if nerr != nil {
				err = fmt.Errorf("%w: node %s field %q: %v", ErrInvalidDocument, n.ID, k, nerr)
				return false
			}
			n.Metadata.CustomFields[k] = nv
		}
		return true
	})
	return err
}
