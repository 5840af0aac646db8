// Package mindmap is the interactive terminal shell around a mindmap
// session.
package mindmap

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattsolo1/grove-core/tui/components/help"

	"github.com/mattsolo1/grove-mindmap/internal/tui/mindmap/components/confirm"
	"github.com/mattsolo1/grove-mindmap/pkg/search"
	"github.com/mattsolo1/grove-mindmap/pkg/session"
)

// tickInterval is how often the pending autosave is checked.
const tickInterval = 200 * time.Millisecond

// Saver persists the session. The service implements it.
type Saver interface {
	Save(sess *session.Session) error
	Tick(sess *session.Session, now time.Time) bool
	Unsaved(sess *session.Session) bool
}

type mode int

const (
	browsing mode = iota
	editingTitle
	searching
)

type tickMsg time.Time

// Model is the main model for the mindmap TUI
type Model struct {
	sess    *session.Session
	saver   Saver
	keys    KeyMap
	help    help.Model
	confirm confirm.Model
	input   textinput.Model
	mode    mode
	width   int
	height  int

	// Search state
	results      []search.Result
	resultCursor int

	statusMessage string
	unsaved       bool
}

// New creates a new TUI model.
func New(sess *session.Session, saver Saver) Model {
	helpModel := help.NewBuilder().
		WithKeys(keys).
		WithTitle("Mindmap - Help").
		Build()

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	m := Model{
		sess:    sess,
		saver:   saver,
		keys:    keys,
		help:    helpModel,
		confirm: confirm.New(),
		input:   ti,
	}
	if sess.Selected() == "" {
		_ = sess.Select(sess.Document().ID)
	}
	m.unsaved = saver.Unsaved(sess)
	return m
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.sess
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}
