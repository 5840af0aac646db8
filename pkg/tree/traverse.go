package tree

import (
	"fmt"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// Find returns the node matching id using a depth-first search, or nil.
func Find(root *models.Node, id string) *models.Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether id is present in the document.
func Contains(root *models.Node, id string) bool {
	return Find(root, id) != nil
}

// Walk visits the document in pre-order. Returning false from visit skips
// the children of the visited node.
func Walk(root *models.Node, visit func(n *models.Node, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, visit)
}

func walk(n *models.Node, depth int, visit func(*models.Node, int) bool) {
	if !visit(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, visit)
	}
}

// Count returns the number of nodes in the document.
func Count(root *models.Node) int {
	count := 0
	Walk(root, func(*models.Node, int) bool {
		count++
		return true
	})
	return count
}

// ParentOf returns the parent of id and the node's index among its
// siblings. The parent is nil for the root and for unknown ids.
func ParentOf(root *models.Node, id string) (*models.Node, int) {
	if root == nil {
		return nil, -1
	}
	for i, child := range root.Children {
		if child.ID == id {
			return root, i
		}
		if parent, index := ParentOf(child, id); parent != nil {
			return parent, index
		}
	}
	return nil, -1
}

// PathTo returns the ids from the root down to and including id, or nil
// when id is absent.
func PathTo(root *models.Node, id string) []string {
	crumbs := Breadcrumb(root, id)
	if crumbs == nil {
		return nil
	}
	ids := make([]string, len(crumbs))
	for i, n := range crumbs {
		ids[i] = n.ID
	}
	return ids
}

// Breadcrumb returns the nodes from the root down to and including id.
func Breadcrumb(root *models.Node, id string) []*models.Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []*models.Node{root}
	}
	for _, child := range root.Children {
		if path := Breadcrumb(child, id); path != nil {
			return append([]*models.Node{root}, path...)
		}
	}
	return nil
}

// IsDescendant reports whether id lies strictly inside the subtree rooted
// at ancestorID.
func IsDescendant(root *models.Node, ancestorID, id string) bool {
	ancestor := Find(root, ancestorID)
	if ancestor == nil {
		return false
	}
	for _, child := range ancestor.Children {
		if Contains(child, id) {
			return true
		}
	}
	return false
}

// IDs returns every id of the document in pre-order.
func IDs(root *models.Node) []string {
	var ids []string
	Walk(root, func(n *models.Node, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Validate checks the structural invariants of a whole document: a root
// exists, every node has a non-empty id and no id appears twice.
func Validate(root *models.Node) error {
	if root == nil {
		return ErrEmptyDocument
	}
	seen := make(map[string]bool)
	var err error
	Walk(root, func(n *models.Node, _ int) bool {
		if err != nil {
			return false
		}
		switch {
		case n == nil:
			err = fmt.Errorf("%w: nil child node", ErrInvariantViolation)
		case n.ID == "":
			err = fmt.Errorf("%w: node %q has an empty id", ErrInvariantViolation, n.Title)
		case seen[n.ID]:
			err = fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		default:
			seen[n.ID] = true
		}
		return err == nil
	})
	return err
}
