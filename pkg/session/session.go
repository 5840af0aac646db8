// Package session holds the state of one editing session: the document
// history, the view state around it (expanded nodes, selection, search
// query) and the document version stamp used for persistence.
//
// Every mutating method validates its input and either applies the edit
// through the history manager or returns a typed error leaving the session
// untouched.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-mindmap/pkg/history"
	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/tree"
)

// ErrValidation is returned when edit input fails validation.
var ErrValidation = errors.New("validation failed")

// Titles given to freshly created nodes.
const (
	NewChildTitle   = "New Child Node"
	NewSiblingTitle = "New Sibling Node"
)

// Session is a single-user editing session. It is not safe for concurrent
// use.
type Session struct {
	history  *history.Manager
	expanded layout.ExpansionSet
	selected string
	query    string
	version  int64

	historySize int
	layoutCfg   layout.Config
	newID       tree.IDFunc
	now         func() time.Time
	onChange    func(doc *models.Node, version int64)
	validate    *validator.Validate
	log         *logrus.Entry
}

// Option configures a Session.
type Option func(*Session)

// WithHistorySize limits the number of undoable edits.
func WithHistorySize(n int) Option {
	return func(s *Session) { s.historySize = n }
}

// WithLayout sets the spacing used by Layout and Navigate.
func WithLayout(cfg layout.Config) Option {
	return func(s *Session) { s.layoutCfg = cfg }
}

// WithIDFunc replaces the node id generator.
func WithIDFunc(fn tree.IDFunc) Option {
	return func(s *Session) { s.newID = fn }
}

// WithClock replaces the clock used for version and metadata stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithVersion seeds the version stamp, typically with the saved one.
func WithVersion(v int64) Option {
	return func(s *Session) { s.version = v }
}

// WithOnChange registers a hook called after every document change,
// including undo and redo.
func WithOnChange(fn func(doc *models.Node, version int64)) Option {
	return func(s *Session) { s.onChange = fn }
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) { s.log = log }
}

// NewID returns a fresh node id.
func NewID() string {
	return "node-" + uuid.NewString()
}

// New starts a session on doc. A nil doc starts from the starter document.
// Only the root is expanded initially.
func New(doc *models.Node, opts ...Option) *Session {
	if doc == nil {
		doc = models.NewDocument()
	}
	s := &Session{
		expanded:  layout.NewExpansionSet(doc.ID),
		layoutCfg: layout.DefaultConfig(),
		newID:     NewID,
		now:       time.Now,
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = logrus.NewEntry(l)
	}
	s.log = s.log.WithField("component", "session")
	s.history = history.New(doc, history.WithMaxSize(s.historySize))
	if s.version == 0 {
		s.version = s.now().UnixMilli()
	}
	return s
}

// Document returns the current document.
func (s *Session) Document() *models.Node {
	return s.history.Present()
}

// Version returns the version stamp of the current document. It grows
// with every change.
func (s *Session) Version() int64 {
	return s.version
}

// History exposes the undo stack depths.
func (s *Session) History() *history.Manager {
	return s.history
}

// apply runs batch through the history and publishes the new document.
func (s *Session) apply(batch ...history.Action) error {
	doc, err := s.history.Apply(batch...)
	if err != nil {
		s.log.WithError(err).Debug("Edit rejected")
		return err
	}
	s.changed(doc)
	return nil
}

func (s *Session) changed(doc *models.Node) {
	next := s.now().UnixMilli()
	if next <= s.version {
		next = s.version + 1
	}
	s.version = next
	if s.selected != "" && !tree.Contains(doc, s.selected) {
		s.selected = ""
	}
	if s.onChange != nil {
		s.onChange(doc, s.version)
	}
}

// Undo reverts the last edit. It returns false when there is nothing to
// undo.
func (s *Session) Undo() bool {
	doc, ok := s.history.Undo()
	if ok {
		s.changed(doc)
	}
	return ok
}

// Redo reapplies the last undone edit.
func (s *Session) Redo() bool {
	doc, ok := s.history.Redo()
	if ok {
		s.changed(doc)
	}
	return ok
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Replace swaps in a new document, as done by import. History is cleared
// and the view state reset.
func (s *Session) Replace(doc *models.Node) error {
	if err := tree.Validate(doc); err != nil {
		return err
	}
	s.history.Reset(doc)
	s.expanded = layout.NewExpansionSet(doc.ID)
	s.selected = ""
	s.query = ""
	s.changed(doc)
	return nil
}
