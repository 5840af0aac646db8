package mindmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-mindmap/internal/tui/mindmap/components/confirm"
	"github.com/mattsolo1/grove-mindmap/pkg/navigation"
	"github.com/mattsolo1/grove-mindmap/pkg/search"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

const searchLimit = 20

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		if m.saver.Tick(m.sess, time.Time(msg)) {
			m.unsaved = m.saver.Unsaved(m.sess)
		}
		return m, tick()

	case confirm.ConfirmedMsg:
		m.report(m.sess.Delete(msg.Target), "Deleted")
		return m, nil

	case confirm.CancelledMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			m.help.Toggle()
			return m, nil
		}
		if m.confirm.Active {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		switch m.mode {
		case editingTitle:
			return m.updateEditing(msg)
		case searching:
			return m.updateSearching(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.sess.Selected()
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.saver.Save(m.sess); err != nil {
			m.statusMessage = fmt.Sprintf("Save failed: %v", err)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.navigate(navigation.Up)
	case key.Matches(msg, m.keys.Down):
		m.navigate(navigation.Down)
	case key.Matches(msg, m.keys.Left):
		m.navigate(navigation.Left)
	case key.Matches(msg, m.keys.Right):
		m.navigate(navigation.Right)
	case key.Matches(msg, m.keys.Toggle):
		if selected != "" {
			m.sess.ToggleExpand(selected)
		}
	case key.Matches(msg, m.keys.AddChild):
		if selected != "" {
			_, err := m.sess.AddChild(selected)
			m.report(err, "Added child")
		}
	case key.Matches(msg, m.keys.AddSibling):
		if selected != "" {
			_, err := m.sess.AddSibling(selected)
			m.report(err, "Added sibling")
		}
	case key.Matches(msg, m.keys.Duplicate):
		if selected != "" {
			_, err := m.sess.Duplicate(selected)
			m.report(err, "Duplicated")
		}
	case key.Matches(msg, m.keys.Delete):
		if selected == "" {
			break
		}
		if err := tree.CheckRemove(m.sess.Document(), selected); err != nil {
			m.report(err, "")
			break
		}
		n := tree.Find(m.sess.Document(), selected)
		m.confirm.Activate(fmt.Sprintf("Delete %q and all its children?", n.Title), selected)
	case key.Matches(msg, m.keys.Edit):
		if n := tree.Find(m.sess.Document(), selected); n != nil {
			m.mode = editingTitle
			m.input.Placeholder = "Node title..."
			m.input.SetValue(n.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Undo):
		if m.sess.Undo() {
			m.statusMessage = "Undone"
		} else {
			m.statusMessage = "Nothing to undo"
		}
	case key.Matches(msg, m.keys.Redo):
		if m.sess.Redo() {
			m.statusMessage = "Redone"
		} else {
			m.statusMessage = "Nothing to redo"
		}
	case key.Matches(msg, m.keys.Save):
		if err := m.saver.Save(m.sess); err != nil {
			m.statusMessage = fmt.Sprintf("Save failed: %v", err)
		} else {
			m.statusMessage = "Saved"
		}
		m.unsaved = m.saver.Unsaved(m.sess)
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.mode = searching
		m.input.Placeholder = "Search nodes..."
		m.input.SetValue(m.sess.Query())
		m.input.CursorEnd()
		m.input.Focus()
		m.runSearch()
		return m, textinput.Blink
	}

	m.unsaved = m.saver.Unsaved(m.sess)
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = browsing
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		err := m.sess.UpdateTitle(m.sess.Selected(), m.input.Value())
		if err != nil {
			m.report(err, "")
			return m, nil
		}
		m.mode = browsing
		m.input.Blur()
		m.statusMessage = "Renamed"
		m.unsaved = m.saver.Unsaved(m.sess)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = browsing
		m.input.Blur()
		m.results = nil
		return m, nil
	case tea.KeyEnter:
		if m.resultCursor < len(m.results) {
			id := m.results[m.resultCursor].Node.ID
			_ = m.sess.Focus(id)
		}
		m.mode = browsing
		m.input.Blur()
		m.results = nil
		return m, nil
	case tea.KeyUp:
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.resultCursor < len(m.results)-1 {
			m.resultCursor++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.runSearch()
	return m, cmd
}

func (m *Model) runSearch() {
	m.results = m.sess.Search(m.input.Value(), &search.Options{Limit: searchLimit})
	m.resultCursor = 0
}

func (m *Model) navigate(dir navigation.Direction) {
	m.statusMessage = ""
	m.sess.Navigate(dir)
}

// report shows err, or ok when the edit succeeded.
func (m *Model) report(err error, ok string) {
	switch {
	case err == nil:
		m.statusMessage = ok
	case errors.Is(err, tree.ErrRootImmutable):
		m.statusMessage = "The root node cannot be deleted or moved"
	case errors.Is(err, tree.ErrNoParent):
		m.statusMessage = "The root node has no siblings"
	default:
		m.statusMessage = fmt.Sprintf("Error: %v", err)
	}
	m.unsaved = m.saver.Unsaved(m.sess)
}
