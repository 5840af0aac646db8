// Package search finds document nodes matching a text query.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// Field names a node field that can match a query.
type Field string

const (
	FieldTitle       Field = "title"
	FieldSummary     Field = "summary"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
)

// Weights used to rank matches. An exact title match outranks everything.
var fieldWeights = map[Field]int{
	FieldTitle:       8,
	FieldSummary:     4,
	FieldDescription: 2,
	FieldTags:        1,
}

const exactTitleBonus = 16

// Result is a matching node annotated with where it lives in the document.
type Result struct {
	Node *models.Node
	// Path holds the titles from the root down to the node.
	Path []string
	// IDPath holds the ids from the root down to the node.
	IDPath  []string
	Matched []Field
	Score   int
}

// Options for searching
type Options struct {
	Limit int
}

// Search scans doc for nodes whose title, summary, description or tags
// contain query, ignoring case. Results are ranked by score; ties keep
// document order. A blank query matches nothing.
func Search(doc *models.Node, query string, opts *Options) []Result {
	if doc == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	if opts == nil {
		opts = &Options{}
	}

	s := scanner{fold: cases.Fold()}
	s.needle = s.normalize(query)
	s.scan(doc, nil, nil)

	sort.SliceStable(s.results, func(i, j int) bool {
		return s.results[i].Score > s.results[j].Score
	})
	if opts.Limit > 0 && len(s.results) > opts.Limit {
		s.results = s.results[:opts.Limit]
	}
	return s.results
}

type scanner struct {
	fold    cases.Caser
	needle  string
	results []Result
}

func (s *scanner) normalize(text string) string {
	return s.fold.String(text)
}

func (s *scanner) scan(n *models.Node, titles, ids []string) {
	titles = append(titles[:len(titles):len(titles)], n.Title)
	ids = append(ids[:len(ids):len(ids)], n.ID)

	if r, ok := s.match(n); ok {
		r.Path = titles
		r.IDPath = ids
		s.results = append(s.results, r)
	}
	for _, child := range n.Children {
		s.scan(child, titles, ids)
	}
}

func (s *scanner) match(n *models.Node) (Result, bool) {
	r := Result{Node: n}
	add := func(f Field) {
		r.Matched = append(r.Matched, f)
		r.Score += fieldWeights[f]
	}

	title := s.normalize(n.Title)
	if strings.Contains(title, s.needle) {
		add(FieldTitle)
		if title == s.needle {
			r.Score += exactTitleBonus
		}
	}
	if strings.Contains(s.normalize(n.Summary), s.needle) {
		add(FieldSummary)
	}
	if strings.Contains(s.normalize(n.Description), s.needle) {
		add(FieldDescription)
	}
	if n.Metadata != nil {
		for _, tag := range n.Metadata.Tags {
			if strings.Contains(s.normalize(tag), s.needle) {
				add(FieldTags)
				break
			}
		}
	}
	return r, len(r.Matched) > 0
}
