// Package history records reversible edits of a mindmap document and
// replays them backwards (undo) and forwards (redo).
package history

import (
	"fmt"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// Kind identifies an action variant.
type Kind string

const (
	KindUpdateNode Kind = "UPDATE_NODE"
	KindAddNode    Kind = "ADD_NODE"
	KindDeleteNode Kind = "DELETE_NODE"
	KindMoveNode   Kind = "MOVE_NODE"
)

// Action is one reversible edit.
type Action interface {
	Kind() Kind
	// Target is the id of the node the action edits.
	Target() string
	// Validate reports why the action cannot be applied to doc.
	Validate(doc *models.Node) error
	// Apply returns doc with the action performed.
	Apply(doc *models.Node) *models.Node
	// Revert returns doc with the action undone.
	Revert(doc *models.Node) *models.Node
}

// Batch is a group of actions applied and undone as one user edit.
type Batch []Action

// UpdateNode replaces a node's fields. Old and New are field snapshots;
// children are left alone unless a snapshot carries them.
type UpdateNode struct {
	NodeID string
	Old    *models.Node
	New    *models.Node
}

func (a UpdateNode) Kind() Kind     { return KindUpdateNode }
func (a UpdateNode) Target() string { return a.NodeID }

func (a UpdateNode) Validate(doc *models.Node) error {
	if a.New == nil || a.Old == nil {
		return fmt.Errorf("%w: update of %s without snapshots", tree.ErrInvariantViolation, a.NodeID)
	}
	return tree.CheckUpdate(doc, a.NodeID)
}

func (a UpdateNode) Apply(doc *models.Node) *models.Node {
	return tree.Update(doc, a.NodeID, a.New)
}

func (a UpdateNode) Revert(doc *models.Node) *models.Node {
	return tree.Update(doc, a.NodeID, a.Old)
}

// AddNode inserts Node under ParentID. Index -1 appends.
type AddNode struct {
	NodeID   string
	ParentID string
	Index    int
	Node     *models.Node
}

func (a AddNode) Kind() Kind     { return KindAddNode }
func (a AddNode) Target() string { return a.NodeID }

func (a AddNode) Validate(doc *models.Node) error {
	return tree.CheckInsert(doc, a.ParentID, a.Node)
}

func (a AddNode) Apply(doc *models.Node) *models.Node {
	return tree.InsertChildAt(doc, a.ParentID, a.Node, a.Index)
}

func (a AddNode) Revert(doc *models.Node) *models.Node {
	updated, _ := tree.Remove(doc, a.NodeID)
	return updated
}

// DeleteNode removes the subtree Node from ParentID. Index is where the
// subtree sat among its siblings; -1 restores it as the last child.
type DeleteNode struct {
	NodeID   string
	ParentID string
	Index    int
	Node     *models.Node
}

func (a DeleteNode) Kind() Kind     { return KindDeleteNode }
func (a DeleteNode) Target() string { return a.NodeID }

func (a DeleteNode) Validate(doc *models.Node) error {
	return tree.CheckRemove(doc, a.NodeID)
}

func (a DeleteNode) Apply(doc *models.Node) *models.Node {
	updated, _ := tree.Remove(doc, a.NodeID)
	return updated
}

func (a DeleteNode) Revert(doc *models.Node) *models.Node {
	return tree.InsertChildAt(doc, a.ParentID, a.Node, a.Index)
}

// MoveNode reparents a subtree. OldIndex restores the sibling position on
// undo; -1 appends.
type MoveNode struct {
	NodeID      string
	OldParentID string
	NewParentID string
	OldIndex    int
}

func (a MoveNode) Kind() Kind     { return KindMoveNode }
func (a MoveNode) Target() string { return a.NodeID }

func (a MoveNode) Validate(doc *models.Node) error {
	return tree.CheckMove(doc, a.NodeID, a.NewParentID)
}

func (a MoveNode) Apply(doc *models.Node) *models.Node {
	return tree.Move(doc, a.NodeID, a.NewParentID)
}

func (a MoveNode) Revert(doc *models.Node) *models.Node {
	return tree.MoveTo(doc, a.NodeID, a.OldParentID, a.OldIndex)
}
