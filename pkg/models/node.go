package models

// RootID is the reserved id of the document root.
const RootID = "root"

// Status represents the lifecycle state of a node
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
	StatusImportant Status = "important"
	StatusArchived  Status = "archived"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusDraft, StatusCompleted, StatusImportant, StatusArchived}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Metadata holds optional per-node attributes.
// CustomFields values are string, float64 or bool.
type Metadata struct {
	Status       Status         `json:"status,omitempty" yaml:"status,omitempty"`
	Tags         []string       `json:"tags,omitempty" yaml:"tags,omitempty,flow"`
	CustomFields map[string]any `json:"customFields,omitempty" yaml:"customFields,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Node is a single entry of the mindmap document. A document is the tree
// reachable from its root node.
//
// Nodes are values: once a node is part of a document it is never mutated.
// Every edit builds a new node along the path from the root to the edited
// node and shares the untouched subtrees.
type Node struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Summary     string    `json:"summary" yaml:"summary"`
	Description string    `json:"description" yaml:"description"`
	Children    []*Node   `json:"children,omitempty" yaml:"children,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// ShallowCopy returns a copy of n sharing its children and metadata.
func (n *Node) ShallowCopy() *Node {
	c := *n
	return &c
}

// Fields returns a copy of n without children. History snapshots and edit
// forms only carry the node's own fields.
func (n *Node) Fields() *Node {
	c := *n
	c.Children = nil
	c.Metadata = n.Metadata.Clone()
	return &c
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := *m
	if m.Tags != nil {
		c.Tags = append([]string(nil), m.Tags...)
	}
	if m.CustomFields != nil {
		c.CustomFields = make(map[string]any, len(m.CustomFields))
		for k, v := range m.CustomFields {
			c.CustomFields[k] = v
		}
	}
	return &c
}

// NewDocument returns the starter document used when nothing is saved yet.
func NewDocument() *Node {
	return &Node{
		ID:          RootID,
		Title:       "Mindmap",
		Summary:     "Start here",
		Description: "Add children to grow your map.",
	}
}
