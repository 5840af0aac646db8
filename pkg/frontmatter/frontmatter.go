// Package frontmatter renders a mindmap as a Markdown outline headed by a
// YAML frontmatter block.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)

// Frontmatter is the metadata block at the top of an exported outline
type Frontmatter struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags,flow"`
	Nodes    int      `yaml:"nodes"`
	Exported string   `yaml:"exported"`
}

// Parse extracts frontmatter from content and returns the parsed data and body
func Parse(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		// No frontmatter found
		return nil, content, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	return &fm, matches[2], nil
}

// Build creates the YAML frontmatter string from a Frontmatter struct
func Build(fm *Frontmatter) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("id: %s\n", quote(fm.ID)))
	sb.WriteString(fmt.Sprintf("title: %s\n", quote(fm.Title)))
	sb.WriteString(fmt.Sprintf("tags: %s\n", formatYAMLArray(fm.Tags)))
	sb.WriteString(fmt.Sprintf("nodes: %d\n", fm.Nodes))
	sb.WriteString(fmt.Sprintf("exported: %s\n", fm.Exported))
	sb.WriteString("---")

	return sb.String()
}

// BuildContent combines frontmatter and body content into a complete document
func BuildContent(fm *Frontmatter, bodyContent string) string {
	frontmatterStr := Build(fm)

	if !strings.HasPrefix(bodyContent, "\n") {
		return frontmatterStr + "\n\n" + bodyContent
	}
	return frontmatterStr + "\n" + bodyContent
}

// Render writes doc as a Markdown outline. The root becomes the heading,
// every other node a nested bullet with its summary, status and tags.
func Render(doc *models.Node, exported time.Time) string {
	fm := &Frontmatter{
		ID:       doc.ID,
		Title:    doc.Title,
		Tags:     collectTags(doc),
		Exported: FormatTimestamp(exported),
	}

	var body strings.Builder
	body.WriteString("# " + doc.Title + "\n")
	if doc.Summary != "" {
		body.WriteString("\n" + doc.Summary + "\n")
	}
	if doc.Description != "" {
		body.WriteString("\n" + doc.Description + "\n")
	}
	if doc.HasChildren() {
		body.WriteString("\n")
	}
	fm.Nodes = 1
	for _, child := range doc.Children {
		fm.Nodes += writeBullet(&body, child, 0)
	}

	return BuildContent(fm, body.String())
}

func writeBullet(sb *strings.Builder, n *models.Node, depth int) int {
	indent := strings.Repeat("  ", depth)
	line := indent + "- " + n.Title
	if n.Summary != "" {
		line += ": " + n.Summary
	}
	if m := n.Metadata; m != nil {
		if m.Status != "" && m.Status != models.StatusDraft {
			line += fmt.Sprintf(" [%s]", m.Status)
		}
		for _, tag := range m.Tags {
			line += " #" + tag
		}
	}
	sb.WriteString(line + "\n")

	count := 1
	for _, child := range n.Children {
		count += writeBullet(sb, child, depth+1)
	}
	return count
}

func collectTags(doc *models.Node) []string {
	var sources [][]string
	var walk func(n *models.Node)
	walk = func(n *models.Node) {
		if n.Metadata != nil {
			sources = append(sources, n.Metadata.Tags)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(doc)
	return MergeTags(sources...)
}

// FormatTimestamp formats a time.Time into the standard frontmatter timestamp format
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// formatYAMLArray formats a string slice as a YAML flow-style array
func formatYAMLArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	quotedItems := make([]string, len(items))
	for i, item := range items {
		quotedItems[i] = quote(item)
	}

	return fmt.Sprintf("[%s]", strings.Join(quotedItems, ", "))
}

func quote(s string) string {
	if needsQuoting(s) {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// needsQuoting checks if a string needs to be quoted in YAML
func needsQuoting(s string) bool {
	return s == "" || strings.ContainsAny(s, ",:[]{}#&*!|>%@`\"'") || strings.TrimSpace(s) != s
}

// MergeTags combines multiple tag sources and removes duplicates
func MergeTags(sources ...[]string) []string {
	seen := make(map[string]bool)
	result := []string{}

	for _, tags := range sources {
		for _, tag := range tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				result = append(result, tag)
			}
		}
	}

	return result
}
