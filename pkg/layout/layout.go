// Package layout positions a mindmap document as a left-to-right tree.
package layout

import (
	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// Config holds the spacing used to place nodes. Width and height describe
// the box a renderer draws for each node.
type Config struct {
	RootX             float64 `mapstructure:"root_x"`
	HorizontalSpacing float64 `mapstructure:"horizontal_spacing"`
	VerticalSpacing   float64 `mapstructure:"vertical_spacing"`
	NodeWidth         float64 `mapstructure:"node_width"`
	NodeHeight        float64 `mapstructure:"node_height"`
}

// DefaultConfig returns the standard spacing.
func DefaultConfig() Config {
	return Config{
		RootX:             100,
		HorizontalSpacing: 300,
		VerticalSpacing:   180,
		NodeWidth:         200,
		NodeHeight:        100,
	}
}

// Position is a point on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a document node placed on the canvas.
type Node struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Position    Position `json:"position"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Level       int      `json:"level"`
	ParentID    string   `json:"parentId,omitempty"`
	Expanded    bool     `json:"isExpanded"`
	HasChildren bool     `json:"hasChildren"`
}

// Edge links a parent to one of its visible children.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Result is the positioned node and edge list handed to a renderer.
type Result struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Find returns the positioned node with the given id.
func (r Result) Find(id string) (Node, bool) {
	for _, n := range r.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// EdgeID returns the stable id of the edge between parent and child.
func EdgeID(parentID, childID string) string {
	return parentID + "-" + childID
}

// Compute lays out the nodes of doc reachable through expanded ancestors.
// x depends on depth only; y is derived bottom-up from subtree heights so
// that each parent is vertically centered on the block of its children.
// The output only depends on doc, expanded and cfg.
func Compute(doc *models.Node, expanded ExpansionSet, cfg Config) Result {
	var r Result
	if doc == nil {
		return r
	}

	e := engine{expanded: expanded, cfg: cfg, heights: make(map[*models.Node]int)}

	rootHeight := e.subtreeHeight(doc)
	rootY := 0.0
	if rootHeight > 1 {
		rootY = float64(rootHeight) * cfg.VerticalSpacing / 2
	}
	e.place(&r, doc, cfg.RootX, rootY, 0, "")
	return r
}

type engine struct {
	expanded ExpansionSet
	cfg      Config
	heights  map[*models.Node]int
}

func (e *engine) open(n *models.Node) bool {
	return e.expanded.Has(n.ID) && n.HasChildren()
}

// subtreeHeight is the number of vertical slots the visible subtree of n
// occupies: 1 when collapsed or childless, otherwise the sum over its
// children and never less than the number of children.
func (e *engine) subtreeHeight(n *models.Node) int {
	if h, ok := e.heights[n]; ok {
		return h
	}
	h := 1
	if e.open(n) {
		total := 0
		for _, child := range n.Children {
			total += e.subtreeHeight(child)
		}
		h = max(len(n.Children), total)
	}
	e.heights[n] = h
	return h
}

func (e *engine) place(r *Result, n *models.Node, x, y float64, level int, parentID string) {
	r.Nodes = append(r.Nodes, Node{
		ID:          n.ID,
		Title:       n.Title,
		Summary:     n.Summary,
		Description: n.Description,
		Position:    Position{X: x, Y: y},
		Width:       e.cfg.NodeWidth,
		Height:      e.cfg.NodeHeight,
		Level:       level,
		ParentID:    parentID,
		Expanded:    e.expanded.Has(n.ID),
		HasChildren: n.HasChildren(),
	})

	if !e.open(n) {
		return
	}

	vs := e.cfg.VerticalSpacing
	total := 0
	for _, child := range n.Children {
		total += e.subtreeHeight(child)
	}

	// Slots are stacked top to bottom, the whole block centered on y.
	cursor := y - float64(total)*vs/2 + vs/2
	childX := x + e.cfg.HorizontalSpacing
	for _, child := range n.Children {
		h := e.subtreeHeight(child)
		childY := cursor + float64(h)*vs/2 - vs/2
		r.Edges = append(r.Edges, Edge{
			ID:     EdgeID(n.ID, child.ID),
			Source: n.ID,
			Target: child.ID,
		})
		e.place(r, child, childX, childY, level+1, n.ID)
		cursor += float64(h) * vs
	}
}
