// Package navigation moves a selection between laid out nodes with
// directional keys.
package navigation

import (
	"fmt"
	"math"

	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// Direction is a screen direction.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection converts user input into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// alignmentBias is subtracted from the distance of candidates that overlap
// the current node on the cross axis.
const alignmentBias = 1000

// Box sizes used when a positioned node has no size.
const (
	defaultWidth  = 200
	defaultHeight = 100
)

type box struct {
	x, y, w, h float64
}

func boxOf(n layout.Node) box {
	b := box{x: n.Position.X, y: n.Position.Y, w: n.Width, h: n.Height}
	if b.w <= 0 {
		b.w = defaultWidth
	}
	if b.h <= 0 {
		b.h = defaultHeight
	}
	return b
}

func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	return math.Max(0, math.Min(aEnd, bEnd)-math.Max(aStart, bStart))
}

// distance returns the biased gap from cur to cand along dir, and false
// when cand does not lie strictly in that direction.
func distance(cur, cand box, dir Direction) (float64, bool) {
	var gap, cross float64
	switch dir {
	case Up:
		if cand.y+cand.h >= cur.y {
			return 0, false
		}
		gap = cur.y - (cand.y + cand.h)
		cross = overlap(cur.x, cur.x+cur.w, cand.x, cand.x+cand.w)
	case Down:
		if cand.y <= cur.y+cur.h {
			return 0, false
		}
		gap = cand.y - (cur.y + cur.h)
		cross = overlap(cur.x, cur.x+cur.w, cand.x, cand.x+cand.w)
	case Left:
		if cand.x+cand.w >= cur.x {
			return 0, false
		}
		gap = cur.x - (cand.x + cand.w)
		cross = overlap(cur.y, cur.y+cur.h, cand.y, cand.y+cand.h)
	case Right:
		if cand.x <= cur.x+cur.w {
			return 0, false
		}
		gap = cand.x - (cur.x + cur.w)
		cross = overlap(cur.y, cur.y+cur.h, cand.y, cand.y+cand.h)
	default:
		return 0, false
	}
	if cross > 0 {
		gap -= alignmentBias
	}
	return gap, true
}

// FindNext returns the id of the nearest node from currentID in direction
// dir. Nodes overlapping the current one on the cross axis are strongly
// preferred. When currentID is empty or not among nodes the first node is
// returned; false means no node qualifies.
func FindNext(currentID string, nodes []layout.Node, dir Direction) (string, bool) {
	if len(nodes) == 0 {
		return "", false
	}
	if currentID == "" {
		return nodes[0].ID, true
	}

	var current *layout.Node
	for i := range nodes {
		if nodes[i].ID == currentID {
			current = &nodes[i]
			break
		}
	}
	if current == nil {
		return nodes[0].ID, true
	}

	cur := boxOf(*current)
	best := ""
	bestDistance := math.Inf(1)
	for _, n := range nodes {
		if n.ID == currentID {
			continue
		}
		d, ok := distance(cur, boxOf(n), dir)
		if ok && d < bestDistance {
			bestDistance = d
			best = n.ID
		}
	}
	return best, best != ""
}

// Siblings returns the ids of id's parent's children, id included, or nil
// for the root and unknown ids.
func Siblings(doc *models.Node, id string) []string {
	parent, _ := tree.ParentOf(doc, id)
	if parent == nil {
		return nil
	}
	return childIDs(parent)
}

// Children returns the ids of id's children.
func Children(doc *models.Node, id string) []string {
	n := tree.Find(doc, id)
	if n == nil {
		return nil
	}
	return childIDs(n)
}

func childIDs(n *models.Node) []string {
	if len(n.Children) == 0 {
		return nil
	}
	ids := make([]string, len(n.Children))
	for i, c := range n.Children {
		ids[i] = c.ID
	}
	return ids
}
