package history

import (
	"fmt"

	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// DefaultMaxSize is the number of batches kept for undo.
const DefaultMaxSize = 50

// Manager holds a linear edit history: past batches, the present document
// and batches available for redo. Recording a new batch drops the redo
// batches. Once more than MaxSize batches are recorded the oldest one is
// evicted and can no longer be undone.
type Manager struct {
	past    []Batch
	present *models.Node
	future  []Batch
	maxSize int
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxSize sets the history capacity. Values below 1 keep the default.
func WithMaxSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxSize = n
		}
	}
}

// New creates a Manager whose present document is initial.
func New(initial *models.Node, opts ...Option) *Manager {
	m := &Manager{
		present: initial,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Present returns the current document.
func (m *Manager) Present() *models.Node {
	return m.present
}

// MaxSize returns the history capacity.
func (m *Manager) MaxSize() int {
	return m.maxSize
}

// CanUndo reports whether a batch is available for undo.
func (m *Manager) CanUndo() bool {
	return len(m.past) > 0
}

// CanRedo reports whether a batch is available for redo.
func (m *Manager) CanRedo() bool {
	return len(m.future) > 0
}

// UndoDepth returns the number of batches available for undo.
func (m *Manager) UndoDepth() int {
	return len(m.past)
}

// RedoDepth returns the number of batches available for redo.
func (m *Manager) RedoDepth() int {
	return len(m.future)
}

// Record appends batch to the past and clears the redo batches. It does
// not touch the present document; pair it with Commit, or use Apply.
func (m *Manager) Record(batch Batch) {
	m.future = nil
	m.past = append(m.past, batch)
	if len(m.past) > m.maxSize {
		m.past[0] = nil
		m.past = m.past[1:]
	}
}

// Commit sets the present document.
func (m *Manager) Commit(doc *models.Node) {
	m.present = doc
}

// Apply validates and performs batch against the present document, then
// records and commits it as one step. When an action is refused nothing
// changes and the refusal is returned.
func (m *Manager) Apply(batch ...Action) (*models.Node, error) {
	if len(batch) == 0 {
		return m.present, nil
	}
	doc := m.present
	for _, action := range batch {
		if err := action.Validate(doc); err != nil {
			return m.present, fmt.Errorf("%s %s: %w", action.Kind(), action.Target(), err)
		}
		doc = action.Apply(doc)
	}
	m.Record(append(Batch(nil), batch...))
	m.Commit(doc)
	return doc, nil
}

// Undo reverts the most recent batch, last action first. It returns false
// when there is nothing to undo.
func (m *Manager) Undo() (*models.Node, bool) {
	if !m.CanUndo() {
		return nil, false
	}
	batch := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append(m.future, batch)

	doc := m.present
	for i := len(batch) - 1; i >= 0; i-- {
		doc = batch[i].Revert(doc)
	}
	m.present = doc
	return doc, true
}

// Redo reapplies the most recently undone batch in its original order. It
// returns false when there is nothing to redo.
func (m *Manager) Redo() (*models.Node, bool) {
	if !m.CanRedo() {
		return nil, false
	}
	batch := m.future[len(m.future)-1]
	m.future = m.future[:len(m.future)-1]
	m.past = append(m.past, batch)

	doc := m.present
	for _, action := range batch {
		doc = action.Apply(doc)
	}
	m.present = doc
	return doc, true
}

// Reset replaces the present document and forgets all history.
func (m *Manager) Reset(doc *models.Node) {
	m.past = nil
	m.future = nil
	m.present = doc
}
