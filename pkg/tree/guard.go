package tree

import (
	"fmt"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// The Check functions validate an edit before it is applied. The raw
// operations above degrade to no-ops on bad input; callers that need to
// know why an edit was refused run the matching Check first.

// CheckUpdate verifies that id exists.
func CheckUpdate(root *models.Node, id string) error {
	if !Contains(root, id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// CheckInsert verifies that parentID exists and that no id of the child
// subtree is already used, either in the document or within the subtree.
func CheckInsert(root *models.Node, parentID string, child *models.Node) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrInvariantViolation)
	}
	if !Contains(root, parentID) {
		return fmt.Errorf("%w: parent %s", ErrNotFound, parentID)
	}
	if err := Validate(child); err != nil {
		return err
	}
	var err error
	Walk(child, func(n *models.Node, _ int) bool {
		if err == nil && Contains(root, n.ID) {
			err = fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		return err == nil
	})
	return err
}

// CheckRemove verifies that id exists and is not the root.
func CheckRemove(root *models.Node, id string) error {
	if root != nil && root.ID == id {
		return ErrRootImmutable
	}
	if !Contains(root, id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// CheckMove verifies that id can be reparented under newParentID: both
// exist, id is not the root and newParentID is outside id's subtree.
func CheckMove(root *models.Node, id, newParentID string) error {
	if err := CheckRemove(root, id); err != nil {
		return err
	}
	if !Contains(root, newParentID) {
		return fmt.Errorf("%w: parent %s", ErrNotFound, newParentID)
	}
	if id == newParentID || IsDescendant(root, id, newParentID) {
		return fmt.Errorf("%w: %s under %s", ErrCyclicMove, id, newParentID)
	}
	return nil
}

// CheckDuplicate verifies that id exists and has a parent to receive the copy.
func CheckDuplicate(root *models.Node, id string) error {
	if root != nil && root.ID == id {
		return ErrNoParent
	}
	if !Contains(root, id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
