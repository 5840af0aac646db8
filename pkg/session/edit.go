package session

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-mindmap/pkg/history"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

func (s *Session) find(id string) (*models.Node, error) {
	n := tree.Find(s.Document(), id)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", tree.ErrNotFound, id)
	}
	return n, nil
}

// UpdateTitle renames a node. The title is trimmed and must not be empty.
func (s *Session) UpdateTitle(id, title string) error {
	n, err := s.find(id)
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if title == n.Title {
		return nil
	}
	updated := n.Fields()
	updated.Title = title
	return s.apply(history.UpdateNode{NodeID: id, Old: n.Fields(), New: updated})
}

func (s *Session) newNode(title string) *models.Node {
	return &models.Node{ID: s.newID(), Title: title}
}

// AddChild appends a new node under parentID, expands the parent and
// selects the new node.
func (s *Session) AddChild(parentID string) (*models.Node, error) {
	child := s.newNode(NewChildTitle)
	err := s.apply(history.AddNode{NodeID: child.ID, ParentID: parentID, Index: -1, Node: child})
	if err != nil {
		return nil, err
	}
	s.expanded = s.expanded.With(parentID)
	s.selected = child.ID
	return child, nil
}

// AddSibling inserts a new node right after id and selects it. The root
// has no siblings.
func (s *Session) AddSibling(id string) (*models.Node, error) {
	if _, err := s.find(id); err != nil {
		return nil, err
	}
	parent, index := tree.ParentOf(s.Document(), id)
	if parent == nil {
		return nil, tree.ErrNoParent
	}
	sibling := s.newNode(NewSiblingTitle)
	err := s.apply(history.AddNode{NodeID: sibling.ID, ParentID: parent.ID, Index: index + 1, Node: sibling})
	if err != nil {
		return nil, err
	}
	s.selected = sibling.ID
	return sibling, nil
}

// Delete removes the subtree rooted at id. Confirmation is the caller's
// job. The selection is cleared when it was inside the removed subtree.
func (s *Session) Delete(id string) error {
	if err := tree.CheckRemove(s.Document(), id); err != nil {
		return err
	}
	n := tree.Find(s.Document(), id)
	parent, index := tree.ParentOf(s.Document(), id)
	return s.apply(history.DeleteNode{NodeID: id, ParentID: parent.ID, Index: index, Node: n})
}

// Duplicate copies the subtree rooted at id next to it, under the same
// parent, and selects the copy.
func (s *Session) Duplicate(id string) (*models.Node, error) {
	if err := tree.CheckDuplicate(s.Document(), id); err != nil {
		return nil, err
	}
	parent, _ := tree.ParentOf(s.Document(), id)
	_, clone := tree.Duplicate(s.Document(), id, s.newID)
	if err := s.apply(history.AddNode{NodeID: clone.ID, ParentID: parent.ID, Index: -1, Node: clone}); err != nil {
		return nil, err
	}
	s.selected = clone.ID
	return clone, nil
}

// Move reparents the subtree rooted at id as the last child of
// newParentID.
func (s *Session) Move(id, newParentID string) error {
	if err := tree.CheckMove(s.Document(), id, newParentID); err != nil {
		return err
	}
	parent, index := tree.ParentOf(s.Document(), id)
	if err := s.apply(history.MoveNode{
		NodeID:      id,
		OldParentID: parent.ID,
		NewParentID: newParentID,
		OldIndex:    index,
	}); err != nil {
		return err
	}
	s.expanded = s.expanded.With(newParentID)
	return nil
}
