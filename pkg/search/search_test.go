package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

func searchDoc() *models.Node {
	return &models.Node{
		ID:    models.RootID,
		Title: "Project",
		Children: []*models.Node{
			{ID: "a", Title: "Backend", Description: "uses the project database"},
			{
				ID:    "b",
				Title: "Frontend",
				Children: []*models.Node{
					{ID: "c", Title: "PROJECT board", Summary: "weekly"},
					{ID: "d", Title: "Straße", Metadata: &models.Metadata{Tags: []string{"i18n"}}},
				},
			},
		},
	}
}

func resultIDs(results []Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Node.ID
	}
	return ids
}

func TestSearchRanksAndAnnotates(t *testing.T) {
	results := Search(searchDoc(), "project", nil)

	// Exact title first, then title match, then description match.
	require.Equal(t, []string{models.RootID, "c", "a"}, resultIDs(results))

	c := results[1]
	assert.Equal(t, []string{"Project", "Frontend", "PROJECT board"}, c.Path)
	assert.Equal(t, []string{models.RootID, "b", "c"}, c.IDPath)
	assert.Equal(t, []Field{FieldTitle}, c.Matched)

	assert.Equal(t, []Field{FieldDescription}, results[2].Matched)
}

func TestSearchCaseFolding(t *testing.T) {
	results := Search(searchDoc(), "STRASSE", nil)
	assert.Equal(t, []string{"d"}, resultIDs(results))
}

func TestSearchTags(t *testing.T) {
	results := Search(searchDoc(), "i18n", nil)
	require.Len(t, results, 1)
	assert.Equal(t, []Field{FieldTags}, results[0].Matched)
}

func TestSearchBlankQuery(t *testing.T) {
	assert.Nil(t, Search(searchDoc(), "   ", nil))
	assert.Nil(t, Search(nil, "x", nil))
}

func TestSearchLimit(t *testing.T) {
	results := Search(searchDoc(), "project", &Options{Limit: 1})
	assert.Equal(t, []string{models.RootID}, resultIDs(results))
}

func TestSearchPathsDoNotAlias(t *testing.T) {
	results := Search(searchDoc(), "e", nil)
	for _, r := range results {
		assert.Equal(t, r.Node.Title, r.Path[len(r.Path)-1])
		assert.Equal(t, r.Node.ID, r.IDPath[len(r.IDPath)-1])
	}
}
