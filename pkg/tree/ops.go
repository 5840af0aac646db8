package tree

import (
	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// CopySuffix is appended to the title of a duplicated subtree's root.
const CopySuffix = " (Copy)"

// IDFunc produces fresh, never reused node ids.
type IDFunc func() string

// Removed describes a subtree taken out of a document by Remove. It holds
// everything needed to put the subtree back where it was.
type Removed struct {
	Node     *models.Node
	ParentID string
	Index    int
}

// NodePatch is a partial record merge. Nil fields are left unchanged.
type NodePatch struct {
	Title       *string
	Summary     *string
	Description *string
	Metadata    *models.Metadata
}

// rebuild returns root with the node matching id replaced by fn(node).
// Only the ancestors of the target are copied. When id is absent the
// original root is returned together with false.
func rebuild(n *models.Node, id string, fn func(*models.Node) *models.Node) (*models.Node, bool) {
	if n.ID == id {
		return fn(n), true
	}
	for i, child := range n.Children {
		if updated, ok := rebuild(child, id, fn); ok {
			c := n.ShallowCopy()
			c.Children = make([]*models.Node, len(n.Children))
			copy(c.Children, n.Children)
			c.Children[i] = updated
			return c, true
		}
	}
	return n, false
}

// Update replaces the fields of the node matching id with those of
// replacement. The node keeps its id. Its children are kept unless
// replacement carries children of its own. Unknown ids are a no-op.
func Update(root *models.Node, id string, replacement *models.Node) *models.Node {
	if root == nil || replacement == nil {
		return root
	}
	updated, _ := rebuild(root, id, func(old *models.Node) *models.Node {
		r := replacement.Fields()
		r.ID = old.ID
		if replacement.Children != nil {
			r.Children = replacement.Children
		} else {
			r.Children = old.Children
		}
		return r
	})
	return updated
}

// Patch merges the set fields of p into the node matching id.
func Patch(root *models.Node, id string, p NodePatch) *models.Node {
	if root == nil {
		return root
	}
	updated, _ := rebuild(root, id, func(old *models.Node) *models.Node {
		c := old.ShallowCopy()
		if p.Title != nil {
			c.Title = *p.Title
		}
		if p.Summary != nil {
			c.Summary = *p.Summary
		}
		if p.Description != nil {
			c.Description = *p.Description
		}
		if p.Metadata != nil {
			c.Metadata = p.Metadata.Clone()
		}
		return c
	})
	return updated
}

// InsertChild appends child to the children of parentID.
func InsertChild(root *models.Node, parentID string, child *models.Node) *models.Node {
	return InsertChildAt(root, parentID, child, -1)
}

// InsertChildAt inserts child at index among the children of parentID.
// A negative or out of range index appends. An unknown parent returns the
// original document.
func InsertChildAt(root *models.Node, parentID string, child *models.Node, index int) *models.Node {
	if root == nil || child == nil {
		return root
	}
	updated, _ := rebuild(root, parentID, func(parent *models.Node) *models.Node {
		c := parent.ShallowCopy()
		n := len(parent.Children)
		if index < 0 || index > n {
			index = n
		}
		c.Children = make([]*models.Node, 0, n+1)
		c.Children = append(c.Children, parent.Children[:index]...)
		c.Children = append(c.Children, child)
		c.Children = append(c.Children, parent.Children[index:]...)
		return c
	})
	return updated
}

// Remove deletes the node matching id together with its subtree. The
// returned Removed is nil when nothing was removed. The root is never
// matched because it has no parent to be removed from.
func Remove(root *models.Node, id string) (*models.Node, *Removed) {
	parent, index := ParentOf(root, id)
	if parent == nil {
		return root, nil
	}
	target := parent.Children[index]
	updated, _ := rebuild(root, parent.ID, func(p *models.Node) *models.Node {
		c := p.ShallowCopy()
		c.Children = without(p.Children, index)
		return c
	})
	return updated, &Removed{Node: target, ParentID: parent.ID, Index: index}
}

func without(children []*models.Node, index int) []*models.Node {
	if len(children) == 1 {
		return nil
	}
	out := make([]*models.Node, 0, len(children)-1)
	out = append(out, children[:index]...)
	return append(out, children[index+1:]...)
}

// Move reparents the subtree rooted at id as the last child of newParentID.
func Move(root *models.Node, id, newParentID string) *models.Node {
	return MoveTo(root, id, newParentID, -1)
}

// MoveTo reparents the subtree rooted at id at index among the children
// of newParentID. If the new parent is missing once the subtree is
// detached (including when it lives inside the moved subtree) the
// original document is returned.
func MoveTo(root *models.Node, id, newParentID string, index int) *models.Node {
	detached, removed := Remove(root, id)
	if removed == nil {
		return root
	}
	if Find(detached, newParentID) == nil {
		return root
	}
	return InsertChildAt(detached, newParentID, removed.Node, index)
}

// Duplicate deep-clones the subtree rooted at id, giving every cloned node
// a fresh id from newID, and appends the clone to the original's parent.
// The clone's root title gets CopySuffix. The document root cannot be
// duplicated; nil is returned for the clone in that case.
func Duplicate(root *models.Node, id string, newID IDFunc) (*models.Node, *models.Node) {
	parent, index := ParentOf(root, id)
	if parent == nil {
		return root, nil
	}
	clone := CloneWithIDs(parent.Children[index], newID)
	clone.Title += CopySuffix
	return InsertChild(root, parent.ID, clone), clone
}

// CloneWithIDs returns a deep copy of n where every node has a new id.
func CloneWithIDs(n *models.Node, newID IDFunc) *models.Node {
	c := n.Fields()
	c.ID = newID()
	if len(n.Children) > 0 {
		c.Children = make([]*models.Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = CloneWithIDs(child, newID)
		}
	}
	return c
}
