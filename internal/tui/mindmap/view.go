package mindmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"

	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// statusStyle colours a node title by its status. Drafts stay plain.
func statusStyle(status models.Status) (lipgloss.Style, bool) {
	switch status {
	case models.StatusCompleted:
		return lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Green), true
	case models.StatusImportant:
		return lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Red), true
	case models.StatusArchived:
		return theme.DefaultTheme.Muted.Copy(), true
	}
	return lipgloss.Style{}, false
}

func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}
	if m.confirm.Active {
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(theme.DefaultTheme.Header.Render(m.sess.Document().Title))
	if m.unsaved {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Orange).Render("  ●"))
	}
	b.WriteString("\n")
	b.WriteString(theme.DefaultTheme.Info.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	switch m.mode {
	case searching:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.renderResults())
	default:
		b.WriteString(m.renderOutline(m.sess.Layout()))
		if m.mode == editingTitle {
			b.WriteString("\n")
			b.WriteString(m.input.View())
		}
	}

	b.WriteString("\n")
	if m.statusMessage != "" {
		b.WriteString(theme.DefaultTheme.Highlight.Render(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.historyLine())
	b.WriteString("\n")
	b.WriteString(m.help.View())
	return b.String()
}

func (m Model) breadcrumb() string {
	crumbs := tree.Breadcrumb(m.sess.Document(), m.sess.Selected())
	titles := make([]string, 0, len(crumbs))
	for _, n := range crumbs {
		titles = append(titles, n.Title)
	}
	return strings.Join(titles, " › ")
}

// renderOutline draws the visible nodes in layout order, indented by level.
func (m Model) renderOutline(result layout.Result) string {
	doc := m.sess.Document()
	var lines []string
	for _, n := range result.Nodes {
		marker := "  "
		if n.HasChildren {
			marker = "▸ "
			if n.Expanded {
				marker = "▾ "
			}
		}
		cursor := "  "
		title := n.Title
		if n.ID == m.sess.Selected() {
			cursor = theme.DefaultTheme.Highlight.Render("▶ ")
			title = theme.DefaultTheme.Selected.Render(title)
		} else if node := tree.Find(doc, n.ID); node != nil && node.Metadata != nil {
			if style, ok := statusStyle(node.Metadata.Status); ok {
				title = style.Render(title)
			}
		}
		line := cursor + strings.Repeat("  ", n.Level) + marker + title
		if n.Summary != "" {
			line += "  " + theme.DefaultTheme.Muted.Render(n.Summary)
		}
		lines = append(lines, line)
	}
	if m.height > 0 {
		lines = m.clip(lines)
	}
	return strings.Join(lines, "\n") + "\n"
}

// clip keeps the selected line on screen when the outline is taller than
// the terminal.
func (m Model) clip(lines []string) []string {
	room := m.height - 8
	if room < 3 || len(lines) <= room {
		return lines
	}
	sel := 0
	for i, n := range m.sess.Layout().Nodes {
		if n.ID == m.sess.Selected() {
			sel = i
			break
		}
	}
	start := sel - room/2
	if start < 0 {
		start = 0
	}
	if start+room > len(lines) {
		start = len(lines) - room
	}
	return lines[start : start+room]
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		if strings.TrimSpace(m.input.Value()) == "" {
			return theme.DefaultTheme.Muted.Render("Type to search titles, summaries, descriptions and tags") + "\n"
		}
		return theme.DefaultTheme.Muted.Render("No matches") + "\n"
	}
	var b strings.Builder
	for i, r := range m.results {
		line := strings.Join(r.Path, " › ")
		if i == m.resultCursor {
			line = theme.DefaultTheme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) historyLine() string {
	h := m.sess.History()
	return theme.DefaultTheme.Muted.Render(fmt.Sprintf("undo %d · redo %d · %d nodes",
		h.UndoDepth(), h.RedoDepth(), tree.Count(m.sess.Document())))
}
