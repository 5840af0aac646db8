package session

import (
	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/navigation"
	"github.com/mattsolo1/grove-mindmap/pkg/search"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// Expanded returns a copy of the expansion set.
func (s *Session) Expanded() layout.ExpansionSet {
	return s.expanded.Clone()
}

// IsExpanded reports whether id's children are visible.
func (s *Session) IsExpanded(id string) bool {
	return s.expanded.Has(id)
}

// ToggleExpand flips the expansion of id and returns the new state.
func (s *Session) ToggleExpand(id string) bool {
	s.expanded = s.expanded.Toggle(id)
	return s.expanded.Has(id)
}

func (s *Session) Expand(ids ...string) {
	s.expanded = s.expanded.With(ids...)
}

func (s *Session) Collapse(ids ...string) {
	s.expanded = s.expanded.Without(ids...)
}

// ExpandAll makes every node visible.
func (s *Session) ExpandAll() {
	s.expanded = layout.ExpandAll(s.Document())
}

// Reveal expands every ancestor of id so the node shows up in the layout.
func (s *Session) Reveal(id string) bool {
	path := tree.PathTo(s.Document(), id)
	if path == nil {
		return false
	}
	s.expanded = s.expanded.With(path[:len(path)-1]...)
	return true
}

// Selected returns the selected node id, empty when nothing is selected.
func (s *Session) Selected() string {
	return s.selected
}

// Select sets the selection. An empty id clears it.
func (s *Session) Select(id string) error {
	if id != "" {
		if _, err := s.find(id); err != nil {
			return err
		}
	}
	s.selected = id
	return nil
}

// Layout positions the visible part of the document.
func (s *Session) Layout() layout.Result {
	return layout.Compute(s.Document(), s.expanded, s.layoutCfg)
}

// Navigate moves the selection to the nearest visible node in dir and
// reveals it. It returns false when no node lies in that direction.
func (s *Session) Navigate(dir navigation.Direction) bool {
	next, ok := navigation.FindNext(s.selected, s.Layout().Nodes, dir)
	if !ok {
		return false
	}
	s.selected = next
	s.Reveal(next)
	return true
}

// Query returns the current search text.
func (s *Session) Query() string {
	return s.query
}

// Search stores query and returns the matching nodes.
func (s *Session) Search(query string, opts *search.Options) []search.Result {
	s.query = query
	return search.Search(s.Document(), query, opts)
}

// Focus selects a node, typically a search result, and reveals it.
func (s *Session) Focus(id string) error {
	if err := s.Select(id); err != nil {
		return err
	}
	s.Reveal(id)
	return nil
}
