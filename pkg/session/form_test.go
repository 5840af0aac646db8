package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

func TestEditPrefillsForm(t *testing.T) {
	s := newTestSession(t)

	f, err := s.Edit("a")
	require.NoError(t, err)
	assert.Equal(t, Form{Title: "A", Status: models.StatusDraft}, f)

	_, err = s.Edit("missing")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestSaveEditNormalizes(t *testing.T) {
	s := newTestSession(t)

	updated, err := s.SaveEdit("b", Form{
		Title:       "  Plan  ",
		Summary:     "short",
		Description: "long",
		Tags:        []string{" go ", "", "go", "cli"},
		CustomFields: map[string]string{
			"priority": "3",
			"done":     "false",
			"owner":    "kim",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Plan", updated.Title)
	assert.Equal(t, models.StatusDraft, updated.Metadata.Status)
	assert.Equal(t, []string{"go", "cli"}, updated.Metadata.Tags)
	assert.Equal(t, map[string]any{"priority": float64(3), "done": false, "owner": "kim"}, updated.Metadata.CustomFields)
	stamp := fixedNow.Format(time.RFC3339Nano)
	assert.Equal(t, stamp, updated.Metadata.CreatedAt)
	assert.Equal(t, stamp, updated.Metadata.UpdatedAt)

	b := tree.Find(s.Document(), "b")
	assert.Equal(t, "Plan", b.Title)
	assert.Len(t, b.Children, 1, "editing keeps the subtree")

	form, err := s.Edit("b")
	require.NoError(t, err)
	assert.Equal(t, "3", form.CustomFields["priority"])
	assert.Equal(t, "false", form.CustomFields["done"])
}

func TestSaveEditKeepsCreatedAt(t *testing.T) {
	now := fixedNow
	s := newTestSession(t, WithClock(func() time.Time { return now }))

	_, err := s.SaveEdit("a", Form{Title: "A"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	updated, err := s.SaveEdit("a", Form{Title: "A2", Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Format(time.RFC3339Nano), updated.Metadata.CreatedAt)
	assert.Equal(t, now.Format(time.RFC3339Nano), updated.Metadata.UpdatedAt)
	assert.Equal(t, models.StatusCompleted, updated.Metadata.Status)

	require.True(t, s.Undo())
	a := tree.Find(s.Document(), "a")
	assert.Equal(t, "A", a.Title)
	assert.Equal(t, models.StatusDraft, a.Metadata.Status)
}

func TestSaveEditRejects(t *testing.T) {
	tests := []struct {
		name string
		id   string
		form Form
		want error
	}{
		{"blank title", "a", Form{Title: "  "}, ErrValidation},
		{"unknown status", "a", Form{Title: "A", Status: "done"}, ErrValidation},
		{"blank field name", "a", Form{Title: "A", CustomFields: map[string]string{" ": "x"}}, ErrValidation},
		{"missing node", "zz", Form{Title: "A"}, tree.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			_, err := s.SaveEdit(tt.id, tt.form)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, s.CanUndo())
		})
	}
}

func TestSaveEditErrorMessage(t *testing.T) {
	s := newTestSession(t)
	_, err := s.SaveEdit("a", Form{Title: "", Status: "done"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "status must be one of draft completed important archived")
}
