package tree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// sampleDoc builds {root: [a, b: [c]]}.
func sampleDoc() *models.Node {
	return &models.Node{
		ID:    models.RootID,
		Title: "Root",
		Children: []*models.Node{
			{ID: "a", Title: "A"},
			{
				ID:    "b",
				Title: "B",
				Children: []*models.Node{
					{ID: "c", Title: "C", Metadata: &models.Metadata{Tags: []string{"t"}}},
				},
			},
		},
	}
}

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func assertSameTree(t *testing.T, want, got *models.Node) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	doc := sampleDoc()

	for _, id := range IDs(doc) {
		t.Run(id, func(t *testing.T) {
			found := Find(doc, id)
			require.NotNil(t, found)
			assert.Equal(t, id, found.ID)
		})
	}

	assert.Nil(t, Find(doc, "missing"))
	assert.Nil(t, Find(nil, "a"))
}

func TestUpdate(t *testing.T) {
	doc := sampleDoc()

	t.Run("replaces fields and keeps children", func(t *testing.T) {
		updated := Update(doc, "b", &models.Node{ID: "ignored", Title: "B2", Summary: "s"})

		b := Find(updated, "b")
		require.NotNil(t, b)
		assert.Equal(t, "B2", b.Title)
		assert.Equal(t, "s", b.Summary)
		require.Len(t, b.Children, 1)
		assert.Equal(t, "c", b.Children[0].ID)

		// The input document is untouched.
		assert.Equal(t, "B", Find(doc, "b").Title)
	})

	t.Run("explicit children replace the subtree", func(t *testing.T) {
		updated := Update(doc, "b", &models.Node{Title: "B", Children: []*models.Node{{ID: "z"}}})
		assert.Nil(t, Find(updated, "c"))
		assert.NotNil(t, Find(updated, "z"))
	})

	t.Run("absent id is a structural no-op", func(t *testing.T) {
		updated := Update(doc, "missing", &models.Node{Title: "x"})
		assertSameTree(t, doc, updated)
	})

	t.Run("untouched subtrees are shared", func(t *testing.T) {
		updated := Update(doc, "c", &models.Node{Title: "C2"})
		assert.Same(t, doc.Children[0], updated.Children[0])
		assert.NotSame(t, doc.Children[1], updated.Children[1])
	})
}

func TestPatch(t *testing.T) {
	doc := sampleDoc()
	title := "New A"

	updated := Patch(doc, "a", NodePatch{Title: &title})

	a := Find(updated, "a")
	assert.Equal(t, "New A", a.Title)
	assert.Equal(t, "A", Find(doc, "a").Title)
}

func TestInsertChild(t *testing.T) {
	doc := sampleDoc()

	t.Run("appends", func(t *testing.T) {
		updated := InsertChild(doc, models.RootID, &models.Node{ID: "d"})
		assert.Equal(t, []string{"a", "b", "d"}, childIDs(updated))
		assert.Equal(t, []string{"a", "b"}, childIDs(doc))
	})

	t.Run("inserts at index", func(t *testing.T) {
		updated := InsertChildAt(doc, models.RootID, &models.Node{ID: "d"}, 1)
		assert.Equal(t, []string{"a", "d", "b"}, childIDs(updated))
	})

	t.Run("out of range index appends", func(t *testing.T) {
		updated := InsertChildAt(doc, models.RootID, &models.Node{ID: "d"}, 99)
		assert.Equal(t, []string{"a", "b", "d"}, childIDs(updated))
	})

	t.Run("unknown parent returns original", func(t *testing.T) {
		updated := InsertChild(doc, "missing", &models.Node{ID: "d"})
		assert.Same(t, doc, updated)
	})
}

func TestRemove(t *testing.T) {
	doc := sampleDoc()

	updated, removed := Remove(doc, "b")
	require.NotNil(t, removed)
	assert.Equal(t, models.RootID, removed.ParentID)
	assert.Equal(t, 1, removed.Index)
	assert.Equal(t, "c", removed.Node.Children[0].ID)
	assert.Nil(t, Find(updated, "b"))
	assert.Nil(t, Find(updated, "c"))

	_, removed = Remove(doc, "missing")
	assert.Nil(t, removed)

	// The root has no parent and is never matched.
	same, removed := Remove(doc, models.RootID)
	assert.Nil(t, removed)
	assert.Same(t, doc, same)
}

func TestRemoveThenReinsertRoundTrip(t *testing.T) {
	doc := sampleDoc()

	for _, id := range []string{"a", "b", "c"} {
		t.Run(id, func(t *testing.T) {
			removedDoc, removed := Remove(doc, id)
			require.NotNil(t, removed)

			restored := InsertChildAt(removedDoc, removed.ParentID, removed.Node, removed.Index)
			assertSameTree(t, doc, restored)
		})
	}
}

func TestInsertThenRemoveRoundTrip(t *testing.T) {
	doc := sampleDoc()

	inserted := InsertChild(doc, "b", &models.Node{ID: "d"})
	removedDoc, removed := Remove(inserted, "d")
	require.NotNil(t, removed)
	assertSameTree(t, doc, removedDoc)
}

func TestMove(t *testing.T) {
	doc := sampleDoc()

	t.Run("reparents as last child", func(t *testing.T) {
		updated := Move(doc, "a", "b")
		assert.Equal(t, []string{"b"}, childIDs(updated))
		assert.Equal(t, []string{"c", "a"}, childIDs(Find(updated, "b")))
	})

	t.Run("move at index", func(t *testing.T) {
		updated := MoveTo(doc, "a", "b", 0)
		assert.Equal(t, []string{"a", "c"}, childIDs(Find(updated, "b")))
	})

	t.Run("moving under own descendant keeps the document", func(t *testing.T) {
		updated := Move(doc, "b", "c")
		assertSameTree(t, doc, updated)
	})

	t.Run("unknown target keeps the document", func(t *testing.T) {
		updated := Move(doc, "a", "missing")
		assertSameTree(t, doc, updated)
	})
}

func TestDuplicate(t *testing.T) {
	doc := sampleDoc()

	updated, clone := Duplicate(doc, "b", sequentialIDs("dup"))
	require.NotNil(t, clone)

	assert.Equal(t, "B (Copy)", clone.Title)
	assert.Equal(t, "dup-1", clone.ID)
	require.Len(t, clone.Children, 1)
	assert.Equal(t, "dup-2", clone.Children[0].ID)
	assert.Equal(t, "C", clone.Children[0].Title)
	assert.Equal(t, []string{"t"}, clone.Children[0].Metadata.Tags)

	assert.Equal(t, []string{"a", "b", "dup-1"}, childIDs(updated))
	require.NoError(t, Validate(updated))

	// Clone metadata is independent from the original.
	clone.Children[0].Metadata.Tags[0] = "changed"
	assert.Equal(t, "t", Find(doc, "c").Metadata.Tags[0])

	same, none := Duplicate(doc, models.RootID, sequentialIDs("dup"))
	assert.Nil(t, none)
	assert.Same(t, doc, same)
}

func TestPaths(t *testing.T) {
	doc := sampleDoc()

	assert.Equal(t, []string{models.RootID, "b", "c"}, PathTo(doc, "c"))
	assert.Nil(t, PathTo(doc, "missing"))

	crumbs := Breadcrumb(doc, "c")
	require.Len(t, crumbs, 3)
	assert.Equal(t, "B", crumbs[1].Title)

	parent, index := ParentOf(doc, "c")
	require.NotNil(t, parent)
	assert.Equal(t, "b", parent.ID)
	assert.Equal(t, 0, index)

	assert.True(t, IsDescendant(doc, "b", "c"))
	assert.False(t, IsDescendant(doc, "a", "c"))
	assert.False(t, IsDescendant(doc, "b", "b"))
	assert.Equal(t, 4, Count(doc))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleDoc()))
	assert.ErrorIs(t, Validate(nil), ErrEmptyDocument)

	dup := sampleDoc()
	dup.Children = append(dup.Children, &models.Node{ID: "c"})
	assert.ErrorIs(t, Validate(dup), ErrDuplicateID)

	empty := &models.Node{ID: "root", Children: []*models.Node{{Title: "no id"}}}
	assert.ErrorIs(t, Validate(empty), ErrInvariantViolation)
}

func TestGuards(t *testing.T) {
	doc := sampleDoc()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"remove root", CheckRemove(doc, models.RootID), ErrRootImmutable},
		{"remove missing", CheckRemove(doc, "missing"), ErrNotFound},
		{"remove leaf", CheckRemove(doc, "c"), nil},
		{"move root", CheckMove(doc, models.RootID, "a"), ErrRootImmutable},
		{"move under self", CheckMove(doc, "b", "b"), ErrCyclicMove},
		{"move under descendant", CheckMove(doc, "b", "c"), ErrCyclicMove},
		{"move to missing parent", CheckMove(doc, "a", "missing"), ErrNotFound},
		{"move ok", CheckMove(doc, "a", "c"), nil},
		{"insert duplicate id", CheckInsert(doc, "a", &models.Node{ID: "c"}), ErrDuplicateID},
		{"insert under missing", CheckInsert(doc, "missing", &models.Node{ID: "d"}), ErrNotFound},
		{"insert ok", CheckInsert(doc, "a", &models.Node{ID: "d"}), nil},
		{"duplicate root", CheckDuplicate(doc, models.RootID), ErrNoParent},
		{"update missing", CheckUpdate(doc, "missing"), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil {
				assert.NoError(t, tt.err)
				return
			}
			assert.True(t, errors.Is(tt.err, tt.want), "got %v, want %v", tt.err, tt.want)
		})
	}

	assert.ErrorIs(t, ErrCyclicMove, ErrInvariantViolation)
	assert.ErrorIs(t, ErrRootImmutable, ErrInvariantViolation)
}

func childIDs(n *models.Node) []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}
