package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

func richDoc() *models.Node {
	return &models.Node{
		ID:          models.RootID,
		Title:       "Root",
		Summary:     "summary",
		Description: "long text\nwith lines",
		Children: []*models.Node{
			{
				ID:    "a",
				Title: "A",
				Metadata: &models.Metadata{
					Status: models.StatusImportant,
					Tags:   []string{"x", "y"},
					CustomFields: map[string]any{
						"priority": float64(2),
						"ratio":    0.5,
						"done":     true,
						"owner":    "sam",
					},
					CreatedAt: "2024-01-01T10:00:00.000Z",
					UpdatedAt: "2024-01-02T10:00:00.000Z",
				},
			},
			{ID: "b", Title: "B", Children: []*models.Node{{ID: "c", Title: "C"}}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(richDoc(), format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err)

			if diff := cmp.Diff(richDoc(), decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	data, err := Encode(richDoc(), FormatJSON)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"customFields"`)
	assert.Contains(t, s, `"createdAt"`)
	assert.Contains(t, s, `"children"`)
}

func TestDecodeYAMLIntegers(t *testing.T) {
	data := []byte(`
id: root
title: Root
summary: ""
description: ""
metadata:
  customFields:
    count: 3
`)
	doc, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, float64(3), doc.Metadata.CustomFields["count"])
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"id":`},
		{"duplicate ids", `{"id":"root","title":"r","children":[{"id":"a"},{"id":"a"}]}`},
		{"missing root id", `{"title":"r"}`},
		{"nested field value", `{"id":"root","metadata":{"customFields":{"k":{"x":1}}}}`},
		{"unknown status", `{"id":"root","metadata":{"status":"done"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), FormatJSON)
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("map.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("map.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("map"))

	assert.Equal(t, FormatMarkdown, FormatFromPath("notes/map.md"))

	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestMarkdownIsExportOnly(t *testing.T) {
	data, err := Encode(richDoc(), FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Root\n")
	assert.Contains(t, string(data), "- A [important] #x #y\n")
	assert.Contains(t, string(data), "  - C\n")

	_, err = Decode(data, FormatMarkdown)
	assert.ErrorIs(t, err, ErrExportOnly)
	assert.Contains(t, err.Error(), `outline of "Root" (4 nodes)`)

	_, err = Decode([]byte("# Just notes\n"), FormatMarkdown)
	assert.ErrorIs(t, err, ErrExportOnly)
	assert.NotContains(t, err.Error(), "outline of")
}
