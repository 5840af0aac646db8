package layout

import (
	"sort"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// ExpansionSet holds the ids of nodes whose children are visible. It is
// view state and never part of the persisted document.
type ExpansionSet map[string]struct{}

// NewExpansionSet returns a set containing ids.
func NewExpansionSet(ids ...string) ExpansionSet {
	s := make(ExpansionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is expanded.
func (s ExpansionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle returns a copy of s with id flipped.
func (s ExpansionSet) Toggle(id string) ExpansionSet {
	c := s.Clone()
	if c.Has(id) {
		delete(c, id)
	} else {
		c[id] = struct{}{}
	}
	return c
}

// With returns a copy of s that also contains ids.
func (s ExpansionSet) With(ids ...string) ExpansionSet {
	c := s.Clone()
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

// Without returns a copy of s that does not contain ids.
func (s ExpansionSet) Without(ids ...string) ExpansionSet {
	c := s.Clone()
	for _, id := range ids {
		delete(c, id)
	}
	return c
}

// Clone returns a copy of s.
func (s ExpansionSet) Clone() ExpansionSet {
	c := make(ExpansionSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// IDs returns the expanded ids in sorted order.
func (s ExpansionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExpandAll returns a set expanding every node of doc that has children.
func ExpandAll(doc *models.Node) ExpansionSet {
	s := make(ExpansionSet)
	var visit func(n *models.Node)
	visit = func(n *models.Node) {
		if !n.HasChildren() {
			return
		}
		s[n.ID] = struct{}{}
		for _, child := range n.Children {
			visit(child)
		}
	}
	if doc != nil {
		visit(doc)
	}
	return s
}
